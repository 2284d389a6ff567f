package utils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`

func TestUtils_ShouldDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/svg+xml")
		io.WriteString(w, sampleSVG)
	}))
	defer srv.Close()

	f, err := DownloadFile(srv.URL + "/icon.svg")
	if err != nil {
		t.Fatalf("couldn't download test file: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("couldn't read the downloaded file: %v", err)
	}
	if string(data) != sampleSVG {
		t.Errorf("downloaded content mismatch, got %q", data)
	}
}

func TestUtils_DownloadShouldFailOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := DownloadFile(srv.URL + "/missing.svg"); err == nil {
		t.Errorf("a 404 response should have returned an error")
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if ok := IsValidUrl("https://kaleidorium.com/icons/kaleidorium-icon.svg"); !ok {
		t.Errorf("A valid URL should have been provided")
	}
	if ok := IsValidUrl("kaleidorium-icon.svg"); ok {
		t.Errorf("A relative file name should not be accepted as URL")
	}
}

func TestUtils_ShouldDetectContentType(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(fname, []byte(`<?xml version="1.0"?>`+sampleSVG), 0644); err != nil {
		t.Fatal(err)
	}

	ctype, err := DetectContentType(fname)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}
	if !strings.Contains(ctype, "xml") {
		t.Errorf("Content type expected to be of type xml, got: %v", ctype)
	}
}

func TestUtils_LocalSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleSVG)
	}))
	defer srv.Close()

	path, cleanup, err := LocalSource(srv.URL + "/icon.svg")
	if err != nil {
		t.Fatalf("couldn't fetch the remote source: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("downloaded source should be readable: %v", err)
	}
	if string(data) != sampleSVG {
		t.Errorf("unexpected downloaded content: %q", data)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temporary file %s should be removed by the cleanup", path)
	}
}

func TestUtils_LocalSourceKeepsLocalFiles(t *testing.T) {
	src := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(src, []byte(sampleSVG), 0644); err != nil {
		t.Fatal(err)
	}

	path, cleanup, err := LocalSource(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != src {
		t.Errorf("expected %s, got %s", src, path)
	}

	cleanup()
	if _, err := os.Stat(src); err != nil {
		t.Errorf("local source must not be removed: %v", err)
	}
}

func TestUtils_LocalSourceFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, cleanup, err := LocalSource(srv.URL + "/missing.svg")
	if err == nil {
		t.Fatalf("expected an error for a missing remote source")
	}
	if cleanup == nil {
		t.Errorf("cleanup should never be nil")
	}
}

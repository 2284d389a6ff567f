package utils

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
)

// DownloadFile downloads the resource found at the url and saves it into a temporary file.
// The caller is responsible for removing the file once it is no longer needed.
func DownloadFile(url string) (*os.File, error) {
	res, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download file from URI %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download file from URI %s, status %v", url, res.Status)
	}

	tmpfile, err := os.CreateTemp("", "pwaicon-*")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}

	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}

	// Reset the read pointer, the file is handed over opened.
	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}

	return tmpfile, nil
}

// LocalSource returns a local path for src. A URL is downloaded into a
// temporary file which is deleted by the returned cleanup function.
// The cleanup function is never nil.
func LocalSource(src string) (string, func(), error) {
	if !IsValidUrl(src) {
		return src, func() {}, nil
	}
	f, err := DownloadFile(src)
	if err != nil {
		return "", func() {}, err
	}
	name := f.Name()
	f.Close()

	return name, func() { os.Remove(name) }, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	_, err := url.ParseRequestURI(uri)
	if err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}

	return true
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.Printf("could not close the opened file: %v", err)
		}
	}()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}

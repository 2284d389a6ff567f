package pwaicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFont_FallbackWhenNoCandidate(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	l := &FontLocator{Candidates: []string{
		filepath.Join(dir, "Helvetica.ttc"),
		filepath.Join(dir, "arial.ttf"),
	}}
	f, name, err := l.Locate()
	assert.NoError(err)
	assert.NotNil(f)
	assert.Equal(BuiltinFontName, name)
}

func TestFont_FirstLoadableCandidateWins(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.ttf")
	first := filepath.Join(dir, "first.ttf")
	second := filepath.Join(dir, "second.ttf")

	assert.NoError(os.WriteFile(broken, []byte("not a font"), 0644))
	assert.NoError(os.WriteFile(first, goregular.TTF, 0644))
	assert.NoError(os.WriteFile(second, goregular.TTF, 0644))

	l := &FontLocator{Candidates: []string{
		filepath.Join(dir, "missing.ttf"),
		broken,
		first,
		second,
	}}
	f, name, err := l.Locate()
	assert.NoError(err)
	assert.NotNil(f)
	assert.Equal(first, name)
}

func TestFont_CustomFallback(t *testing.T) {
	l := &FontLocator{Fallback: goregular.TTF}
	f, name, err := l.Locate()
	assert.NoError(t, err)
	assert.NotNil(t, f)
	assert.Equal(t, BuiltinFontName, name)

	l = &FontLocator{Fallback: []byte("garbage")}
	_, _, err = l.Locate()
	assert.Error(t, err)
}

func TestFont_DefaultCandidates(t *testing.T) {
	l := NewFontLocator()
	assert.Equal(t, DefaultFontCandidates, l.Candidates)
	assert.Len(t, l.Candidates, 4)
}

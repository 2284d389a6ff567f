package pwaicon

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// BuiltinFontName is reported when none of the font candidates could be loaded.
const BuiltinFontName = "builtin:gobold"

// DefaultFontCandidates is the ranked list of system fonts tried for the
// text label. The first one found and parsed wins.
var DefaultFontCandidates = []string{
	"/System/Library/Fonts/Helvetica.ttc",                  // macOS
	"/Windows/Fonts/arial.ttf",                             // Windows
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", // Linux
	"/System/Library/Fonts/Times.ttc",                      // macOS fallback
}

// FontLocator resolves the font used for the text label.
type FontLocator struct {
	// Candidates are font file paths tried in order.
	Candidates []string
	// Fallback is the TrueType data used when no candidate can be loaded.
	// The Go Bold font is used when it is nil.
	Fallback []byte
}

// NewFontLocator returns a locator over the default system font candidates.
func NewFontLocator() *FontLocator {
	return &FontLocator{Candidates: DefaultFontCandidates}
}

// Locate returns the first candidate font which exists and parses,
// along with its path. Unreadable or malformed candidates are skipped.
// If no candidate qualifies, the fallback font is returned under BuiltinFontName.
func (l *FontLocator) Locate() (*opentype.Font, string, error) {
	for _, path := range l.Candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := parseFont(data)
		if err != nil {
			continue
		}
		return f, path, nil
	}

	fallback := l.Fallback
	if fallback == nil {
		fallback = gobold.TTF
	}
	f, err := parseFont(fallback)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not parse the fallback font")
	}
	return f, BuiltinFontName, nil
}

// parseFont parses a TrueType/OpenType font or the first font of a collection.
func parseFont(data []byte) (*opentype.Font, error) {
	if bytes.HasPrefix(data, []byte("ttcf")) {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, err
		}
		if coll.NumFonts() == 0 {
			return nil, errors.New("empty font collection")
		}
		return coll.Font(0)
	}
	return opentype.Parse(data)
}

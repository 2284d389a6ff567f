// Package monogram writes the single letter SVG icon templates used to
// review how much padding the home screen icon should carry.
package monogram

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// Variation is a padding and letter scale combination.
type Variation struct {
	Name        string
	Description string
	// Padding is the safe zone kept on every side, relative to the icon size.
	Padding float64
	// FontScale is the letter size relative to the area left inside the padding.
	FontScale float64
}

// Variations are the reviewed padding options, from the tightest to the loosest.
var Variations = []Variation{
	{Name: "elegant-minimal", Description: "Minimal padding, the letter fills more space", Padding: 0.15, FontScale: 0.70},
	{Name: "elegant-balanced", Description: "Balanced padding", Padding: 0.22, FontScale: 0.65},
	{Name: "elegant-spacious", Description: "Spacious padding", Padding: 0.28, FontScale: 0.60},
	{Name: "elegant-ultra-spacious", Description: "Ultra spacious padding", Padding: 0.35, FontScale: 0.55},
}

// Balanced returns the variation used for the main icons.
func Balanced() Variation {
	return Variations[1]
}

// Style holds the colors and the letter of the monogram.
type Style struct {
	Letter     string
	Background string
	Foreground string
	FontFamily string
	FontWeight string
	// CornerRatio is the background corner radius relative to the icon size.
	CornerRatio float64
}

// DefaultStyle is a bold white K on a black rounded square.
func DefaultStyle() Style {
	return Style{
		Letter:      "K",
		Background:  "#000000",
		Foreground:  "#FFFFFF",
		FontFamily:  "Playfair Display, serif",
		FontWeight:  "bold",
		CornerRatio: 0.2,
	}
}

// FontSize returns the letter size of the variation on a size x size icon.
func (v Variation) FontSize(size int) float64 {
	padding := float64(size) * v.Padding
	return (float64(size) - 2*padding) * v.FontScale
}

// Write writes the SVG monogram of the given size into w.
func Write(w io.Writer, size int, v Variation, s Style) error {
	if size <= 0 {
		return fmt.Errorf("invalid icon size %d", size)
	}
	if v.Padding < 0 || v.Padding >= 0.5 {
		return fmt.Errorf("padding %.2f leaves no room for the letter", v.Padding)
	}

	var (
		fontSize = v.FontSize(size)
		rx       = int(math.Round(float64(size) * s.CornerRatio))
		x        = size / 2
		// The baseline is pushed down so the cap height sits on the center.
		y = int(math.Round(float64(size)/2 + fontSize*0.35))
	)

	canvas := svg.New(w)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size, size))
	canvas.Roundrect(0, 0, size, size, rx, rx, fmt.Sprintf(`fill="%s"`, s.Background))
	canvas.Text(x, y, s.Letter, fmt.Sprintf(
		`font-family="%s" font-size="%.2f" font-weight="%s" fill="%s" text-anchor="middle" style="letter-spacing: -0.02em;"`,
		s.FontFamily, fontSize, s.FontWeight, s.Foreground,
	))
	canvas.End()

	return nil
}

// FileName returns the file name of the monogram. The balanced variation
// is written without suffix since it is the one the manifest points to.
func FileName(size int, v Variation, main bool) string {
	if main {
		return fmt.Sprintf("pwa-icon-%dx%d.svg", size, size)
	}
	return fmt.Sprintf("pwa-icon-%dx%d-%s.svg", size, size, v.Name)
}

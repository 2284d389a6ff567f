package pwaicon

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/kaleidorium/pwaicon/imop"
	"github.com/kaleidorium/pwaicon/utils"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextStyle describes how the text label is laid out on the icon.
type TextStyle struct {
	Text       string
	Background color.NRGBA
	Foreground color.NRGBA
	Shadow     color.NRGBA

	// FontRatio is the font size relative to the icon size,
	// MinFontSize the smallest font size used on tiny icons.
	FontRatio   float64
	MinFontSize int

	// The shadow is drawn only for icons bigger than ShadowMinSize,
	// offset by size/ShadowDivisor pixels (at least one).
	ShadowMinSize int
	ShadowDivisor int
	// ShadowBlur is the gaussian blur sigma applied to the shadow layer.
	ShadowBlur float64
}

// DefaultTextStyle returns the white "Kaleidorium" label on black.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Text:          "Kaleidorium",
		Background:    color.NRGBA{A: 0xff},
		Foreground:    color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Shadow:        color.NRGBA{A: 128},
		FontRatio:     0.08,
		MinFontSize:   8,
		ShadowMinSize: 32,
		ShadowDivisor: 64,
	}
}

// FontSize returns the font size in pixels used on an icon of the given size.
func (s TextStyle) FontSize(size int) int {
	return utils.Max(int(float64(size)*s.FontRatio), s.MinFontSize)
}

// ShadowOffset returns the shadow offset for an icon of the given size,
// or zero if the icon is too small to carry a shadow.
func (s TextStyle) ShadowOffset(size int) int {
	if size <= s.ShadowMinSize || s.ShadowDivisor <= 0 {
		return 0
	}
	return utils.Max(1, size/s.ShadowDivisor)
}

// TextRenderer draws the text label centered on a solid background.
type TextRenderer struct {
	Style TextStyle
	Font  *opentype.Font
}

// NewTextRenderer returns a renderer drawing with the given style and font.
func NewTextRenderer(style TextStyle, f *opentype.Font) *TextRenderer {
	return &TextRenderer{Style: style, Font: f}
}

// Render draws the label on a size x size canvas. The alpha channel is
// left fully opaque, the rounded corners are applied by the caller.
func (r *TextRenderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid icon size %d", size)
	}
	if r.Font == nil {
		return nil, errors.New("no font loaded")
	}

	face, err := opentype.NewFace(r.Font, &opentype.FaceOptions{
		Size:    float64(r.Style.FontSize(size)),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create the font face")
	}
	defer face.Close()

	img := imaging.New(size, size, r.Style.Background)
	dot := textOrigin(face, r.Style.Text, size)

	if offset := r.Style.ShadowOffset(size); offset > 0 {
		layer := image.NewNRGBA(img.Bounds())
		d := &font.Drawer{
			Dst:  layer,
			Src:  image.NewUniform(r.Style.Shadow),
			Face: face,
			Dot:  dot.Add(fixed.P(offset, offset)),
		}
		d.DrawString(r.Style.Text)

		if r.Style.ShadowBlur > 0 {
			layer = imaging.Blur(layer, r.Style.ShadowBlur)
		}
		imop.InitOp().Draw(layer, img)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Style.Foreground),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(r.Style.Text)

	return img, nil
}

// textOrigin returns the baseline origin which centers the measured
// bounding box of text on a size x size canvas.
func textOrigin(face font.Face, text string, size int) fixed.Point26_6 {
	bounds, _ := font.BoundString(face, text)

	w := (bounds.Max.X - bounds.Min.X).Ceil()
	h := (bounds.Max.Y - bounds.Min.Y).Ceil()

	x := utils.FloorDiv(size-w, 2) - bounds.Min.X.Floor()
	y := utils.FloorDiv(size-h, 2) - bounds.Min.Y.Floor()

	return fixed.P(x, y)
}

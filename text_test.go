package pwaicon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestTextRenderer(t *testing.T) *TextRenderer {
	t.Helper()

	f, _, err := (&FontLocator{}).Locate()
	if err != nil {
		t.Fatalf("could not load the builtin font: %v", err)
	}
	return NewTextRenderer(DefaultTextStyle(), f)
}

func TestText_StylePolicies(t *testing.T) {
	assert := assert.New(t)
	s := DefaultTextStyle()

	assert.Equal(8, s.FontSize(16))
	assert.Equal(8, s.FontSize(72))
	assert.Equal(15, s.FontSize(192))
	assert.Equal(40, s.FontSize(512))

	assert.Equal(0, s.ShadowOffset(16))
	assert.Equal(0, s.ShadowOffset(32))
	assert.Equal(1, s.ShadowOffset(72))
	assert.Equal(3, s.ShadowOffset(192))
	assert.Equal(8, s.ShadowOffset(512))
}

func TestText_RenderSizes(t *testing.T) {
	r := newTestTextRenderer(t)

	for _, size := range []int{16, 32, 72, 180, 512} {
		img, err := r.Render(size)
		if err != nil {
			t.Fatalf("size %d: unexpected error: %v", size, err)
		}
		if dx, dy := img.Bounds().Dx(), img.Bounds().Dy(); dx != size || dy != size {
			t.Errorf("expected %dx%d image, got %dx%d", size, size, dx, dy)
		}
	}

	_, err := r.Render(0)
	assert.Error(t, err)
}

func TestText_MaskedIcon72(t *testing.T) {
	assert := assert.New(t)
	r := newTestTextRenderer(t)

	size := 72
	img, err := r.Render(size)
	assert.NoError(err)
	ApplyMask(img, RoundedMask(size, RadiusScaled(size)))

	transparent := color.NRGBA{}
	black := color.NRGBA{A: 0xff}

	assert.Equal(transparent, img.NRGBAAt(0, 0))
	assert.Equal(transparent, img.NRGBAAt(size-1, 0))
	assert.Equal(transparent, img.NRGBAAt(0, size-1))
	assert.Equal(transparent, img.NRGBAAt(size-1, size-1))

	// Background far from the label and from the corners.
	assert.Equal(black, img.NRGBAAt(size/2, 2))
	assert.Equal(black, img.NRGBAAt(size/2, size-3))
	assert.Equal(black, img.NRGBAAt(2, size/2-20))

	assert.Equal(uint8(0xff), img.NRGBAAt(size/2, size/2).A)

	// The label is drawn in white somewhere around the vertical center.
	var lit int
	for y := size/2 - 8; y < size/2+8; y++ {
		for x := 0; x < size; x++ {
			if img.NRGBAAt(x, y).R > 200 {
				lit++
			}
		}
	}
	assert.Greater(lit, 0, "no text pixels found")
}

func TestText_Deterministic(t *testing.T) {
	r := newTestTextRenderer(t)
	r.Style.ShadowBlur = 1.5

	a, err := r.Render(192)
	assert.NoError(t, err)
	b, err := r.Render(192)
	assert.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestText_NoFont(t *testing.T) {
	r := NewTextRenderer(DefaultTextStyle(), nil)
	_, err := r.Render(72)
	assert.Error(t, err)
}

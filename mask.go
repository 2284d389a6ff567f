package pwaicon

import (
	"image"

	"github.com/kaleidorium/pwaicon/imop"
	"github.com/kaleidorium/pwaicon/utils"
)

// RadiusFunc derives the corner radius of the rounded mask from the icon size.
type RadiusFunc func(size int) int

// RadiusDiv5 returns a fifth of the size using integer division.
// The vector generator shapes its icons with it.
func RadiusDiv5(size int) int {
	return size / 5
}

// RadiusScaled returns the size scaled by 0.2 and truncated toward zero.
// The text generator shapes its icons with it. It yields the same
// value as RadiusDiv5 for every positive size.
func RadiusScaled(size int) int {
	return int(float64(size) * 0.2)
}

// RoundedMask builds a size x size opacity mask shaped as a rounded rectangle.
// Every pixel is either fully opaque or fully transparent. Along the straight
// edges a pixel is opaque when its center is inside the rectangle, in the
// corners when its center lies at least half a pixel inside the arc, so the
// four corner pixels are transparent for any radius >= 1.
// A radius <= 0 yields a fully opaque square, a radius bigger
// than half of the size degenerates into a circle.
func RoundedMask(size, radius int) *image.Alpha {
	if size < 0 {
		size = 0
	}
	mask := image.NewAlpha(image.Rect(0, 0, size, size))

	var (
		half  = float64(size) / 2
		r     = utils.Min(utils.Max(float64(radius), 0), half)
		inner = r - 0.5
	)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			// Offset of the pixel center from the nearest corner arc center,
			// folded into the positive quadrant.
			qx := utils.Abs(float64(x)+0.5-half) - (half - r)
			qy := utils.Abs(float64(y)+0.5-half) - (half - r)

			if qx <= 0 || qy <= 0 || (inner > 0 && qx*qx+qy*qy <= inner*inner) {
				mask.Pix[y*mask.Stride+x] = 0xff
			}
		}
	}
	return mask
}

// ApplyMask overwrites the alpha channel of img with the mask values.
// The color channels are left untouched, so the transparent corners keep
// the color the renderer painted there.
func ApplyMask(img *image.NRGBA, mask *image.Alpha) {
	op := imop.InitOp()
	op.Set(imop.Alpha)
	op.Draw(mask, img)
}

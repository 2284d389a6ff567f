// Package imop implements the Porter-Duff composition operations
// used for mixing the icon layers with their backdrop.
// The image/draw core package implements only the source-over-destination
// and source operations and neither of them can replace the alpha channel
// of an image while keeping its colors, which is how the rounded corner
// mask is applied to a rendered icon.
package imop

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/kaleidorium/pwaicon/utils"
)

const (
	// SrcOver paints the source over the destination.
	SrcOver = "src_over"
	// Alpha replaces the destination alpha with the source alpha
	// and leaves the destination color channels untouched.
	Alpha = "alpha"
)

// Composite holds the currently active composite operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp initializes a new composite operation. SrcOver is the default one.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops:     []string{SrcOver, Alpha},
	}
}

// Set activates one of the supported composite operations.
func (op *Composite) Set(cop string) error {
	if !utils.Contains(op.ops, cop) {
		return fmt.Errorf("unsupported composite operation: %q", cop)
	}
	op.current = cop
	return nil
}

// Draw composites the src image onto dst in place using the active operation.
// Both images are traversed from their minimum points over the bounds of dst.
func (op *Composite) Draw(src image.Image, dst *image.NRGBA) {
	var (
		sb     = src.Bounds()
		db     = dst.Bounds()
		dx, dy = db.Dx(), db.Dy()
	)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			var s color.NRGBA
			if sp := image.Pt(sb.Min.X+x, sb.Min.Y+y); sp.In(sb) {
				s = color.NRGBAModel.Convert(src.At(sp.X, sp.Y)).(color.NRGBA)
			}
			d := dst.NRGBAAt(db.Min.X+x, db.Min.Y+y)

			dst.SetNRGBA(db.Min.X+x, db.Min.Y+y, op.compose(s, d))
		}
	}
}

// compose applies the alpha composition formula over non-premultiplied colors.
func (op *Composite) compose(s, d color.NRGBA) color.NRGBA {
	if op.current == Alpha {
		d.A = s.A
		return d
	}

	as := float64(s.A) / 255
	ab := float64(d.A) / 255
	an := as + ab*(1-as)
	if an == 0 {
		return color.NRGBA{}
	}
	channel := func(cs, cb uint8) uint8 {
		v := (as*float64(cs) + ab*float64(cb)*(1-as)) / an
		return uint8(math.Round(utils.Min(v, 255)))
	}
	return color.NRGBA{
		R: channel(s.R, d.R),
		G: channel(s.G, d.G),
		B: channel(s.B, d.B),
		A: uint8(math.Round(an * 255)),
	}
}

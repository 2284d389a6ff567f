package pwaicon

import (
	"testing"
)

func TestMask_Dimensions(t *testing.T) {
	for _, size := range []int{16, 32, 72, 180, 512} {
		mask := RoundedMask(size, RadiusDiv5(size))
		if dx, dy := mask.Bounds().Dx(), mask.Bounds().Dy(); dx != size || dy != size {
			t.Errorf("mask size expected to be %dx%d, got %dx%d", size, size, dx, dy)
		}
	}
}

func TestMask_CornersAndCenter(t *testing.T) {
	sizes := []int{16, 32, 72, 96, 128, 180, 512}
	// Radius 1 and 2 on tiny icons.
	for size := 5; size <= 15; size++ {
		sizes = append(sizes, size)
	}
	for _, size := range sizes {
		mask := RoundedMask(size, RadiusScaled(size))
		last := size - 1

		for _, c := range [][2]int{{0, 0}, {last, 0}, {0, last}, {last, last}} {
			if a := mask.AlphaAt(c[0], c[1]).A; a != 0 {
				t.Errorf("size %d: corner (%d,%d) expected to be transparent, got %d", size, c[0], c[1], a)
			}
		}
		if a := mask.AlphaAt(size/2, size/2).A; a != 0xff {
			t.Errorf("size %d: center expected to be opaque, got %d", size, a)
		}
		// The middle of every edge is inside the shape.
		for _, c := range [][2]int{{size / 2, 0}, {0, size / 2}, {size / 2, last}, {last, size / 2}} {
			if a := mask.AlphaAt(c[0], c[1]).A; a != 0xff {
				t.Errorf("size %d: edge (%d,%d) expected to be opaque, got %d", size, c[0], c[1], a)
			}
		}
	}
}

func TestMask_BinaryAndSymmetric(t *testing.T) {
	size := 73
	mask := RoundedMask(size, RadiusDiv5(size))

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			a := mask.AlphaAt(x, y).A
			if a != 0 && a != 0xff {
				t.Fatalf("pixel (%d,%d) expected to be 0 or 255, got %d", x, y, a)
			}
			if b := mask.AlphaAt(size-1-x, y).A; a != b {
				t.Fatalf("mask is not symmetric horizontally at (%d,%d)", x, y)
			}
			if b := mask.AlphaAt(x, size-1-y).A; a != b {
				t.Fatalf("mask is not symmetric vertically at (%d,%d)", x, y)
			}
		}
	}
}

func TestMask_RadiusOneCutsOnlyCorners(t *testing.T) {
	size := 7
	mask := RoundedMask(size, 1)
	last := size - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			corner := (x == 0 || x == last) && (y == 0 || y == last)
			want := uint8(0xff)
			if corner {
				want = 0
			}
			if a := mask.AlphaAt(x, y).A; a != want {
				t.Errorf("pixel (%d,%d) expected alpha %d, got %d", x, y, want, a)
			}
		}
	}
}

func TestMask_ZeroRadiusIsOpaque(t *testing.T) {
	mask := RoundedMask(8, 0)
	for i, a := range mask.Pix {
		if a != 0xff {
			t.Fatalf("pixel %d expected to be opaque, got %d", i, a)
		}
	}
}

func TestMask_OversizedRadius(t *testing.T) {
	size := 40
	circle := RoundedMask(size, size/2)
	oversized := RoundedMask(size, size*3)

	for i := range circle.Pix {
		if circle.Pix[i] != oversized.Pix[i] {
			t.Fatalf("an oversized radius should degenerate into the inscribed circle")
		}
	}
}

func TestMask_RadiusFunctions(t *testing.T) {
	for _, tc := range []struct {
		size   int
		radius int
	}{
		{16, 3}, {32, 6}, {72, 14}, {180, 36}, {512, 102},
	} {
		if got := RadiusDiv5(tc.size); got != tc.radius {
			t.Errorf("RadiusDiv5(%d): expected %d, got %d", tc.size, tc.radius, got)
		}
		if got := RadiusScaled(tc.size); got != tc.radius {
			t.Errorf("RadiusScaled(%d): expected %d, got %d", tc.size, tc.radius, got)
		}
	}

	// The float product never lands below the integer quotient for positive sizes.
	for size := 1; size <= 4096; size++ {
		if RadiusDiv5(size) != RadiusScaled(size) {
			t.Errorf("radius functions disagree for size %d: %d != %d", size, RadiusDiv5(size), RadiusScaled(size))
		}
	}
}

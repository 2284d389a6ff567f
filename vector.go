package pwaicon

import (
	"bytes"
	"encoding/xml"
	"image"
	"io"
	"math"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kaleidorium/pwaicon/utils"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// DefaultVectorSource is the SVG file the vector generator reads
// from its working directory.
const DefaultVectorSource = "kaleidorium-icon.svg"

// unsupportedElements are SVG elements the rasterizer skips without
// drawing them. A source using any of them is rejected.
var unsupportedElements = []string{"text", "tspan", "textPath", "image", "foreignObject"}

// SVGRasterizer converts the vector source file to square raster icons.
type SVGRasterizer struct {
	Source string
}

// NewSVGRasterizer returns a rasterizer reading the SVG file at src.
func NewSVGRasterizer(src string) *SVGRasterizer {
	return &SVGRasterizer{Source: src}
}

// Render rasterizes the source at size x size pixels. The source file is
// read on every call. The drawing keeps its aspect ratio and is centered.
func (r *SVGRasterizer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid icon size %d", size)
	}

	ctype, err := utils.DetectContentType(r.Source)
	if err != nil {
		return nil, errors.Wrap(err, "could not open the vector source")
	}
	if !strings.Contains(ctype, "xml") && !strings.HasPrefix(ctype, "text/") {
		return nil, errors.Errorf("the vector source should be an SVG file, got %s", ctype)
	}

	data, err := os.ReadFile(r.Source)
	if err != nil {
		return nil, errors.Wrap(err, "could not open the vector source")
	}
	if err := checkElements(data); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "could not convert the SVG")
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		w, h = float64(size), float64(size)
	}
	scale := float64(size) / math.Max(w, h)
	outW, outH := w*scale, h*scale
	icon.SetTarget((float64(size)-outW)/2, (float64(size)-outH)/2, outW, outH)

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, dst, dst.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return imaging.Clone(dst), nil
}

// checkElements scans the SVG document for elements which would be
// silently dropped from the rasterized icon.
func checkElements(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "could not parse the SVG")
		}
		if se, ok := tok.(xml.StartElement); ok && utils.Contains(unsupportedElements, se.Name.Local) {
			return errors.Errorf("<%s> elements are not supported, convert them to paths", se.Name.Local)
		}
	}
}

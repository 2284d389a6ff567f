package pwaicon

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/mrmelon54/png2ico"
	"github.com/pkg/errors"
)

// encodeImg encodes the icon into w in the format selected by the
// extension of the destination path.
func encodeImg(w io.Writer, path string, img *image.NRGBA) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return encodePNG(w, img)
	case ".ico":
		var buf bytes.Buffer
		if err := encodePNG(&buf, img); err != nil {
			return err
		}
		b := img.Bounds()
		ico, err := png2ico.ConvertPngToIco(buf.Bytes(), b.Dx(), b.Dy())
		if err != nil {
			return errors.Wrap(err, "could not wrap the icon into ICO")
		}
		_, err = w.Write(ico)
		return err
	default:
		return errors.Errorf("%v file type not supported", ext)
	}
}

// encodePNG writes the icon as PNG with the best compression level.
func encodePNG(w io.Writer, img *image.NRGBA) error {
	return imaging.Encode(w, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression))
}

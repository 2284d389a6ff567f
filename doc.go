/*
Package pwaicon generates the icon assets of a Progressive Web App.

An icon is rendered at a fixed square size, either by rasterizing a vector
source (SVGRasterizer) or by drawing a text label (TextRenderer), then shaped
with a rounded corner transparency mask and written to disk as PNG or ICO.

The package provides two command line generators, one for each source.
To check the supported flags type:

	$ svgicons --help
	$ texticons --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"os"

		"github.com/kaleidorium/pwaicon"
	)

	func main() {
		batch, err := pwaicon.NewBatch(
			pwaicon.VectorIconSet(),
			pwaicon.NewSVGRasterizer("logo.svg"),
			os.Stderr,
		)
		if err != nil {
			panic(err)
		}
		summary := batch.Execute()
		_ = summary.Failed
	}
*/
package pwaicon

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/kaleidorium/pwaicon/monogram"
	"github.com/kaleidorium/pwaicon/utils"
	"golang.org/x/term"
)

var (
	// Flags
	destination = flag.String("out", filepath.Join("public", "logos"), "Destination directory")
	letter      = flag.String("letter", "K", "Letter drawn on the icons")
)

// sizes are the icon sizes the manifest references as SVG.
var sizes = []int{192, 512}

func main() {
	log.SetFlags(0)
	flag.Parse()

	utils.SetColorOutput(term.IsTerminal(int(os.Stderr.Fd())))

	if err := os.MkdirAll(*destination, 0755); err != nil {
		log.Fatal(utils.ErrorText("Unable to create the destination directory", err))
	}

	style := monogram.DefaultStyle()
	style.Letter = *letter

	for _, size := range sizes {
		write(size, monogram.Balanced(), style, true)
	}
	for _, v := range monogram.Variations {
		fmt.Fprintf(os.Stderr, "\n%s %s (%.0f%% padding)\n",
			utils.DecorateText(v.Name, utils.StatusMessage), v.Description, v.Padding*100)
		for _, size := range sizes {
			write(size, v, style, false)
		}
	}
}

// write renders a single monogram and reports the outcome. A failure does not stop the run.
func write(size int, v monogram.Variation, style monogram.Style, main bool) {
	name := monogram.FileName(size, v, main)
	path := filepath.Join(*destination, name)

	var buf bytes.Buffer
	err := monogram.Write(&buf, size, v, style)
	if err == nil {
		err = os.WriteFile(path, buf.Bytes(), 0644)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s: %v\n", utils.DecorateText("✘ failed to generate", utils.ErrorMessage), name, err)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s (%dx%d)\n", utils.DecorateText("✔ generated", utils.SuccessMessage), name, size, size)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kaleidorium/pwaicon"
	"github.com/kaleidorium/pwaicon/utils"
	"golang.org/x/term"
)

const HelpBanner = `
┌─┐┬ ┬┌─┐  ┬┌─┐┌─┐┌┐┌┌─┐
└─┐└┐┌┘│ ┬  ││  │ ││││└─┐
└─┘ └┘ └─┘  ┴└─┘└─┘┘└┘└─┘

PWA icons with rounded corners from a vector source.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", pwaicon.DefaultVectorSource, "Source SVG file or URL")
	destination = flag.String("out", ".", "Destination directory")
	config      = flag.String("config", "", "YAML icon set replacing the default sizes")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	isTerm := term.IsTerminal(int(os.Stderr.Fd()))
	utils.SetColorOutput(isTerm)

	set := pwaicon.VectorIconSet()
	set.BaseDir = *destination
	if *config != "" {
		var err error
		set, err = pwaicon.LoadIconSet(*config, set)
		if err != nil {
			log.Fatal(utils.ErrorText("Failed to load the icon set", err))
		}
	}

	rasterizer := pwaicon.NewSVGRasterizer(*source)
	batch, err := pwaicon.NewBatch(set, rasterizer, os.Stderr)
	if err != nil {
		log.Fatal(utils.ErrorText("Invalid icon set", err))
	}

	// A remote source is downloaded once. No fatal exit may follow,
	// otherwise the temporary file is left behind.
	src, cleanup, err := utils.LocalSource(*source)
	if err != nil {
		log.Fatal(utils.ErrorText("Failed to load the source image", err))
	}
	defer cleanup()
	rasterizer.Source = src
	if isTerm {
		batch.Spinner = utils.NewSpinner(os.Stderr, "", time.Millisecond*80)
	}

	fmt.Fprintf(os.Stderr, "%s %s\n\n",
		utils.DecorateText("⚡ PWAICON", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("generating icons with transparent rounded corners from %s", *source), utils.DefaultMessage),
	)

	summary := batch.Execute()

	fmt.Fprintf(os.Stderr, "\nIcon generation complete: %s created, %s failed\n",
		utils.DecorateText(fmt.Sprint(len(summary.Created)), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprint(len(summary.Failed)), utils.ErrorMessage),
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(summary.Elapsed), utils.SuccessMessage))
}

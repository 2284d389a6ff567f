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
┌┬┐┌─┐─┐ ┬┌┬┐  ┬┌─┐┌─┐┌┐┌┌─┐
 │ ├┤ ┌┴┬┘ │   ││  │ ││││└─┐
 ┴ └─┘┴ └─ ┴   ┴└─┘└─┘┘└┘└─┘

PWA icons with rounded corners from a text label.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	destination = flag.String("out", ".", "Destination directory; favicons are written into its parent")
	config      = flag.String("config", "", "YAML icon set replacing the default targets")
	text        = flag.String("text", "", "Label drawn on the icons")
	background  = flag.String("bg", "#000000", "Background color")
	foreground  = flag.String("fg", "#ffffff", "Text color")
	blur        = flag.Float64("blur", 0, "Shadow blur sigma")
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

	set := pwaicon.TextIconSet(*destination)
	if *config != "" {
		var err error
		set, err = pwaicon.LoadIconSet(*config, set)
		if err != nil {
			log.Fatal(utils.ErrorText("Failed to load the icon set", err))
		}
	}

	style := pwaicon.DefaultTextStyle()
	if *text != "" {
		style.Text = *text
	}
	style.ShadowBlur = *blur

	var err error
	if style.Background, err = utils.ParseHexColor(*background); err != nil {
		log.Fatal(utils.ErrorText("Invalid background color", err))
	}
	if style.Foreground, err = utils.ParseHexColor(*foreground); err != nil {
		log.Fatal(utils.ErrorText("Invalid text color", err))
	}

	font, fontName, err := pwaicon.NewFontLocator().Locate()
	if err != nil {
		log.Fatal(utils.ErrorText("No usable font found", err))
	}

	batch, err := pwaicon.NewBatch(set, pwaicon.NewTextRenderer(style, font), os.Stderr)
	if err != nil {
		log.Fatal(utils.ErrorText("Invalid icon set", err))
	}
	batch.MakeDirs = true
	if isTerm {
		batch.Spinner = utils.NewSpinner(os.Stderr, "", time.Millisecond*80)
	}

	fmt.Fprintf(os.Stderr, "%s %s\n\n",
		utils.DecorateText("⚡ PWAICON", utils.StatusMessage),
		utils.DecorateText(fmt.Sprintf("generating %q text icons (font: %s)", style.Text, fontName), utils.DefaultMessage),
	)

	summary := batch.Execute()

	fmt.Fprintf(os.Stderr, "\nIcon generation complete: %s created, %s failed\n",
		utils.DecorateText(fmt.Sprint(len(summary.Created)), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprint(len(summary.Failed)), utils.ErrorMessage),
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n\n", utils.DecorateText(utils.FormatTime(summary.Elapsed), utils.SuccessMessage))
	fmt.Fprintln(os.Stderr, "Next steps:")
	fmt.Fprintln(os.Stderr, "  1. Check the generated icons in your file explorer")
	fmt.Fprintln(os.Stderr, "  2. Test your PWA to see the new text-based icons")
	fmt.Fprintln(os.Stderr, "  3. Clear browser cache and reinstall PWA if needed")
}

package pwaicon

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/kaleidorium/pwaicon/utils"
	"github.com/pkg/errors"
)

// Renderer draws a square icon of the requested edge length.
type Renderer interface {
	Render(size int) (*image.NRGBA, error)
}

// Batch renders, masks and writes every target of an icon set, one after the other.
type Batch struct {
	BaseDir  string
	Targets  []Target
	Renderer Renderer
	Radius   RadiusFunc

	// MakeDirs creates the missing parent directories of the destination files.
	MakeDirs bool

	// Out receives the status lines. Spinner is optional and, when set,
	// is spinning while a target is being generated.
	Out     io.Writer
	Spinner *utils.Spinner
}

// Summary holds the outcome of a batch execution.
type Summary struct {
	Created []Target
	Failed  []Target
	Elapsed time.Duration
}

// NewBatch returns a batch over the icon set drawing with the renderer.
func NewBatch(set IconSet, r Renderer, out io.Writer) (*Batch, error) {
	radius, err := set.Radius.Func()
	if err != nil {
		return nil, err
	}
	return &Batch{
		BaseDir:  set.BaseDir,
		Targets:  set.Targets,
		Renderer: r,
		Radius:   radius,
		Out:      out,
	}, nil
}

// Execute generates all the targets. A failing target is reported and
// skipped, the remaining ones are still processed.
func (b *Batch) Execute() Summary {
	var summary Summary
	now := time.Now()

	for _, t := range b.Targets {
		if b.Spinner != nil {
			b.Spinner.SetMessage(fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ PWAICON", utils.StatusMessage),
				utils.DecorateText(fmt.Sprintf("⇢ generating %dx%d...", t.Size, t.Size), utils.DefaultMessage),
			))
			b.Spinner.Start()
		}

		err := b.Generate(t)
		if err != nil {
			summary.Failed = append(summary.Failed, t)
		} else {
			summary.Created = append(summary.Created, t)
		}

		if b.Spinner != nil {
			b.Spinner.StopMsg = ""
			b.Spinner.Stop()
		}
		b.printStatus(t, err)
	}
	summary.Elapsed = time.Since(now)

	return summary
}

// Generate renders a single target, applies the rounded mask and writes
// the file, overwriting any existing one. A partially written file is removed.
func (b *Batch) Generate(t Target) error {
	img, err := b.Renderer.Render(t.Size)
	if err != nil {
		return err
	}
	if got := img.Bounds().Size(); got.X != t.Size || got.Y != t.Size {
		return errors.Errorf("rendered %dx%d image, expected %dx%d", got.X, got.Y, t.Size, t.Size)
	}

	radius := 0
	if b.Radius != nil {
		radius = b.Radius(t.Size)
	}
	ApplyMask(img, RoundedMask(t.Size, radius))

	path := b.path(t)
	if b.MakeDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrap(err, "unable to create the destination directory")
		}
	}

	dst, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "unable to create the destination file")
	}
	if err := encodeImg(dst, path, img); err != nil {
		dst.Close()
		os.Remove(path)
		return err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return errors.Wrap(err, "could not close the destination file")
	}
	return nil
}

func (b *Batch) path(t Target) string {
	if filepath.IsAbs(t.Path) {
		return t.Path
	}
	return filepath.Join(b.BaseDir, t.Path)
}

// printStatus displays the relevant information about the icon generation.
func (b *Batch) printStatus(t Target, err error) {
	out := b.Out
	if out == nil {
		out = os.Stderr
	}
	if err != nil {
		fmt.Fprintf(out, "%s %s\n\t%s\n",
			utils.DecorateText("✘ failed to generate", utils.ErrorMessage),
			fmt.Sprintf("%s (%dx%d)", t, t.Size, t.Size),
			utils.DecorateText(fmt.Sprintf("Reason: %v", err), utils.DefaultMessage),
		)
		return
	}
	fmt.Fprintf(out, "%s %s\n",
		utils.DecorateText("✔ generated", utils.SuccessMessage),
		fmt.Sprintf("%s (%dx%d)", t, t.Size, t.Size),
	)
}

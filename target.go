package pwaicon

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kaleidorium/pwaicon/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Target is a single output icon: a square edge length in pixels and
// a destination path relative to the base directory of the icon set.
type Target struct {
	Size int    `yaml:"size"`
	Path string `yaml:"path"`
}

// String returns the destination path of the target.
func (t Target) String() string {
	return t.Path
}

// RadiusMode names the corner radius derivation used by an icon set.
type RadiusMode string

const (
	// RadiusModeDiv5 derives the radius with RadiusDiv5.
	RadiusModeDiv5 RadiusMode = "div5"
	// RadiusModeScaled derives the radius with RadiusScaled.
	RadiusModeScaled RadiusMode = "scaled"
)

// Func returns the radius function of the mode.
func (m RadiusMode) Func() (RadiusFunc, error) {
	switch m {
	case RadiusModeDiv5:
		return RadiusDiv5, nil
	case RadiusModeScaled:
		return RadiusScaled, nil
	}
	return nil, errors.Errorf("unknown radius mode %q", string(m))
}

// IconSet is the explicit configuration of a generator run.
type IconSet struct {
	BaseDir string     `yaml:"base_dir"`
	Radius  RadiusMode `yaml:"radius"`
	Targets []Target   `yaml:"targets"`
}

// supportedExtensions lists the output formats an icon can be written in.
var supportedExtensions = []string{".png", ".ico"}

// pwaSizes are the standard PWA manifest icon sizes.
var pwaSizes = []int{72, 96, 128, 144, 152, 192, 384, 512}

func pwaTargets() []Target {
	targets := make([]Target, 0, len(pwaSizes))
	for _, size := range pwaSizes {
		targets = append(targets, Target{
			Size: size,
			Path: fmt.Sprintf("icon-%dx%d.png", size, size),
		})
	}
	return targets
}

// VectorIconSet returns the icon set produced from the vector source:
// the eight PWA sizes written into the working directory.
func VectorIconSet() IconSet {
	return IconSet{
		BaseDir: ".",
		Radius:  RadiusModeDiv5,
		Targets: pwaTargets(),
	}
}

// TextIconSet returns the icon set produced from the text label:
// the eight PWA sizes plus the Android, Apple touch and favicon variants,
// which are written into the parent of baseDir.
func TextIconSet(baseDir string) IconSet {
	return IconSet{
		BaseDir: baseDir,
		Radius:  RadiusModeScaled,
		Targets: append(pwaTargets(),
			Target{Size: 192, Path: "../android-chrome-192x192.png"},
			Target{Size: 512, Path: "../android-chrome-512x512.png"},
			Target{Size: 180, Path: "../apple-touch-icon.png"},
			Target{Size: 32, Path: "../favicon-32x32.png"},
			Target{Size: 16, Path: "../favicon-16x16.png"},
		),
	}
}

// Validate checks the icon set for entries no renderer can satisfy.
func (s IconSet) Validate() error {
	if _, err := s.Radius.Func(); err != nil {
		return err
	}
	if len(s.Targets) == 0 {
		return errors.New("icon set has no targets")
	}
	for i, t := range s.Targets {
		if t.Size <= 0 {
			return errors.Errorf("target %d: size must be positive, got %d", i, t.Size)
		}
		if strings.TrimSpace(t.Path) == "" {
			return errors.Errorf("target %d: empty path", i)
		}
		if ext := strings.ToLower(filepath.Ext(t.Path)); !utils.Contains(supportedExtensions, ext) {
			return errors.Errorf("target %d: %q file type not supported", i, ext)
		}
	}
	return nil
}

// iconSetDocument is the YAML form of an icon set. Pointer fields tell
// keys missing from the document apart from explicit values.
type iconSetDocument struct {
	BaseDir *string     `yaml:"base_dir"`
	Radius  *RadiusMode `yaml:"radius"`
	Targets *[]Target   `yaml:"targets"`
}

// DecodeIconSet reads a YAML icon set. Fields missing from the document
// keep the values of the defaults set.
func DecodeIconSet(r io.Reader, defaults IconSet) (IconSet, error) {
	set, _, err := decodeIconSet(r, defaults)
	return set, err
}

// decodeIconSet decodes the icon set and reports whether the document sets base_dir.
func decodeIconSet(r io.Reader, defaults IconSet) (IconSet, bool, error) {
	var doc iconSetDocument

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return IconSet{}, false, errors.Wrap(err, "could not decode the icon set")
	}

	set := defaults
	if doc.BaseDir != nil {
		set.BaseDir = *doc.BaseDir
	}
	if doc.Radius != nil {
		set.Radius = *doc.Radius
	}
	if doc.Targets != nil {
		set.Targets = *doc.Targets
	}
	if err := set.Validate(); err != nil {
		return IconSet{}, false, errors.Wrap(err, "invalid icon set")
	}
	return set, doc.BaseDir != nil, nil
}

// LoadIconSet reads the YAML icon set found at path. A relative base
// directory in the document is resolved against the directory of the file.
func LoadIconSet(path string, defaults IconSet) (IconSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IconSet{}, errors.Wrap(err, "could not read the icon set")
	}
	set, hasBaseDir, err := decodeIconSet(bytes.NewReader(data), defaults)
	if err != nil {
		return IconSet{}, err
	}
	if hasBaseDir && !filepath.IsAbs(set.BaseDir) {
		set.BaseDir = filepath.Join(filepath.Dir(path), set.BaseDir)
	}
	return set, nil
}

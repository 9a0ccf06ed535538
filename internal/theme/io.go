package theme

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// Resolve builds a theme from the defaults, then a named preset, then an
// external override file. Unknown preset names are ignored; a missing or
// unparseable override file is reported on warn and skipped, so generation
// always gets a usable theme.
func Resolve(presetName, overridePath string, warn io.Writer) *Theme {
	t := Defaults()

	if presetName != "" {
		if preset, ok := Presets[presetName]; ok {
			t.Apply(preset)
		}
	}

	if overridePath != "" {
		o, err := LoadOverride(overridePath)
		if err != nil {
			fmt.Fprintf(warn, "warning: theme file %s: %v\n", overridePath, err)
		} else {
			t.Apply(o)
		}
	}

	return t
}

// LoadOverride reads a partial theme from a YAML or JSON file. JSON is a
// subset of YAML, so one decoder covers both formats.
func LoadOverride(path string) (Override, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Override{}, err
	}
	var o Override
	if err := yaml.Unmarshal(b, &o); err != nil {
		return Override{}, fmt.Errorf("parse: %w", err)
	}
	return o, nil
}

// themeFile is the serialized form of a resolved theme.
type themeFile struct {
	Colors    map[string]domain.Color `yaml:"colors" json:"colors"`
	Gradient  []domain.Color          `yaml:"gradient" json:"gradient"`
	Fonts     map[string]Font         `yaml:"fonts" json:"fonts"`
	Layout    Layout                  `yaml:"layout" json:"layout"`
	CardStyle string                  `yaml:"card_style" json:"card_style"`
}

// Save writes the resolved theme back out, YAML or JSON by extension, so a
// tweaked run can be captured as a reusable theme file.
func Save(t *Theme, path string) error {
	f := themeFile{
		Colors:    t.Colors,
		Gradient:  t.Gradient,
		Fonts:     t.Fonts,
		Layout:    t.Layout,
		CardStyle: t.CardStyle,
	}

	var (
		b   []byte
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err = yaml.Marshal(f)
	default:
		b, err = json.MarshalIndent(f, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

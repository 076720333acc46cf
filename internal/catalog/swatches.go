// swatches.go - Ring glow palette, optionally overridden by a YAML file
package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/keypad-studio/backend/internal/configuration"
	"github.com/keypad-studio/backend/internal/models"
	"gopkg.in/yaml.v3"
)

// DefaultRingGlowOptions is the built-in backlight palette served with the
// icon catalog when no override file is configured.
func DefaultRingGlowOptions() []models.RingGlowOption {
	hex := func(value string) *string { return &value }
	return []models.RingGlowOption{
		{Label: "No glow", Value: nil},
		{Label: "Blue", Value: hex("#1EA7FF")},
		{Label: "White", Value: hex("#FFFFFF")},
		{Label: "Red", Value: hex("#FF3B30")},
		{Label: "Amber", Value: hex("#FFB000")},
		{Label: "Green", Value: hex("#34C759")},
		{Label: "Purple", Value: hex("#A855F7")},
		{Label: "Cyan", Value: hex("#00E5FF")},
		{Label: "Pink", Value: hex("#FF2D55")},
	}
}

type swatchFile struct {
	Swatches []struct {
		Label string `yaml:"label"`
		Value string `yaml:"value"`
	} `yaml:"swatches"`
}

// LoadRingGlowOptions reads a swatch palette from a YAML file. Colors are
// normalized to canonical uppercase #RRGGBB; an empty value means "no glow".
func LoadRingGlowOptions(filePath string) ([]models.RingGlowOption, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ParseRingGlowOptions(file)
}

// ParseRingGlowOptions parses a swatch palette from an io.Reader.
func ParseRingGlowOptions(r io.Reader) ([]models.RingGlowOption, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var parsed swatchFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, err
	}

	options := make([]models.RingGlowOption, 0, len(parsed.Swatches))
	for _, swatch := range parsed.Swatches {
		if swatch.Label == "" {
			return nil, fmt.Errorf("swatch entry missing label")
		}
		color, ok := configuration.NormalizeRingColor(swatch.Value)
		if !ok {
			return nil, fmt.Errorf("swatch %q has an invalid color %q", swatch.Label, swatch.Value)
		}
		options = append(options, models.RingGlowOption{Label: swatch.Label, Value: color})
	}
	return options, nil
}

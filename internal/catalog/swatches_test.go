package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRingGlowOptions(t *testing.T) {
	options := DefaultRingGlowOptions()

	if len(options) != 9 {
		t.Fatalf("Expected 9 default swatches, got %d", len(options))
	}
	if options[0].Label != "No glow" || options[0].Value != nil {
		t.Errorf("Expected the first swatch to be the no-glow option, got %+v", options[0])
	}
	for _, option := range options[1:] {
		if option.Value == nil {
			t.Errorf("Expected %s to carry a color", option.Label)
			continue
		}
		if len(*option.Value) != 7 || !strings.HasPrefix(*option.Value, "#") {
			t.Errorf("Expected %s to be canonical #RRGGBB, got %s", option.Label, *option.Value)
		}
		if *option.Value != strings.ToUpper(*option.Value) {
			t.Errorf("Expected %s to be uppercase, got %s", option.Label, *option.Value)
		}
	}
}

func TestParseRingGlowOptions(t *testing.T) {
	t.Run("parses and normalizes a palette", func(t *testing.T) {
		yaml := `
swatches:
  - label: "No glow"
    value: ""
  - label: "Blue"
    value: "#1ea7ff"
  - label: "White"
    value: "#FFFFFF"
`
		options, err := ParseRingGlowOptions(strings.NewReader(yaml))
		if err != nil {
			t.Fatalf("Failed to parse swatches: %v", err)
		}
		if len(options) != 3 {
			t.Fatalf("Expected 3 swatches, got %d", len(options))
		}
		if options[0].Value != nil {
			t.Errorf("Expected empty value to mean no glow, got %v", *options[0].Value)
		}
		if options[1].Value == nil || *options[1].Value != "#1EA7FF" {
			t.Errorf("Expected normalized #1EA7FF, got %v", options[1].Value)
		}
	})

	t.Run("rejects a swatch without a label", func(t *testing.T) {
		yaml := `
swatches:
  - value: "#FFFFFF"
`
		if _, err := ParseRingGlowOptions(strings.NewReader(yaml)); err == nil {
			t.Fatal("Expected an error for a missing label")
		}
	})

	t.Run("rejects an invalid color", func(t *testing.T) {
		yaml := `
swatches:
  - label: "Broken"
    value: "bright blue"
`
		_, err := ParseRingGlowOptions(strings.NewReader(yaml))
		if err == nil {
			t.Fatal("Expected an error for an invalid color")
		}
		if !strings.Contains(err.Error(), "Broken") {
			t.Errorf("Expected the error to name the swatch, got %v", err)
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		if _, err := ParseRingGlowOptions(strings.NewReader("swatches: [broken")); err == nil {
			t.Fatal("Expected a parse error")
		}
	})
}

func TestLoadRingGlowOptions(t *testing.T) {
	t.Run("loads a palette file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "swatches.yaml")
		content := "swatches:\n  - label: Red\n    value: \"#ff3b30\"\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write fixture: %v", err)
		}

		options, err := LoadRingGlowOptions(path)
		if err != nil {
			t.Fatalf("Failed to load swatches: %v", err)
		}
		if len(options) != 1 || options[0].Label != "Red" {
			t.Fatalf("Expected one Red swatch, got %+v", options)
		}
		if options[0].Value == nil || *options[0].Value != "#FF3B30" {
			t.Errorf("Expected normalized #FF3B30, got %v", options[0].Value)
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		if _, err := LoadRingGlowOptions(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("Expected an error for a missing file")
		}
	})
}

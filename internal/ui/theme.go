package ui

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{255, 255, 0, 150},   // Translucent yellow
		Background:     color.RGBA{40, 40, 40, 255},    // Dark gray
		TextColor:      color.RGBA{255, 255, 255, 255},
	}
}

// themeFile is the YAML shape of a theme. Colors are "#RRGGBB" or
// "#RRGGBBAA"; omitted keys keep the default.
type themeFile struct {
	LightSquare    string `yaml:"light_square"`
	DarkSquare     string `yaml:"dark_square"`
	SelectedSquare string `yaml:"selected_square"`
	Background     string `yaml:"background"`
	TextColor      string `yaml:"text"`
}

// LoadTheme reads a theme YAML file on top of the default palette.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", path, err)
	}

	var tf themeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}

	theme := DefaultTheme()
	for _, e := range []struct {
		raw string
		dst *color.RGBA
	}{
		{tf.LightSquare, &theme.LightSquare},
		{tf.DarkSquare, &theme.DarkSquare},
		{tf.SelectedSquare, &theme.SelectedSquare},
		{tf.Background, &theme.Background},
		{tf.TextColor, &theme.TextColor},
	} {
		if e.raw == "" {
			continue
		}
		c, err := parseHexColor(e.raw)
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
		*e.dst = c
	}
	return theme, nil
}

func parseHexColor(s string) (color.RGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.RGBA{}, fmt.Errorf("bad color %q", s)
	}

	var vals [4]uint8
	vals[3] = 0xff
	for i := 0; i < len(raw)/2; i++ {
		var v uint8
		if _, err := fmt.Sscanf(raw[i*2:i*2+2], "%02x", &v); err != nil {
			return color.RGBA{}, fmt.Errorf("bad color %q", s)
		}
		vals[i] = v
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

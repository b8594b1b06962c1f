package render

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownColor is returned for a color name missing from the palette
var ErrUnknownColor = errors.New("unknown color")

// Color is an RGB triple
type Color struct {
	R, G, B uint8
}

// Palette holds the named colors accepted in configuration files
var Palette = map[string]Color{
	"black":         {0, 0, 0},
	"white":         {255, 255, 255},
	"dark_green":    {0, 100, 0},
	"deep_sky_blue": {0, 191, 255},
	"dodger_blue":   {30, 144, 255},
	"green":         {0, 255, 0},
	"light_blue":    {173, 216, 230},
	"light_grey":    {211, 211, 211},
	"light_yellow":  {255, 255, 224},
	"red":           {255, 0, 0},
	"steel_blue":    {70, 130, 180},
	"yellow":        {255, 255, 0},
}

// LookupColor resolves a color name, ignoring case and surrounding spaces
func LookupColor(name string) (Color, error) {
	c, ok := Palette[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, errors.Wrapf(ErrUnknownColor, "[LookupColor] %q (known: %s)", name, strings.Join(ColorNames(), ", "))
	}
	return c, nil
}

// ColorNames returns the palette names in alphabetical order
func ColorNames() []string {
	names := make([]string, 0, len(Palette))
	for name := range Palette {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package theme

import "github.com/mgk2100/ppt-generator/internal/domain"

// Presets are the built-in named themes. Each overrides a subset of color
// roles on top of the defaults; "default" changes nothing.
var Presets = map[string]Override{
	"default": {},
	"dark": {
		Colors: map[string]domain.Color{
			"primary":   {R: 33, G: 37, B: 41},
			"secondary": {R: 52, G: 58, B: 64},
			"accent":    {R: 0, G: 123, B: 255},
			"light":     {R: 73, G: 80, B: 87},
			"text":      {R: 248, G: 249, B: 250},
		},
	},
	"green": {
		Colors: map[string]domain.Color{
			"primary":   {R: 25, G: 135, B: 84},
			"secondary": {R: 32, G: 201, B: 151},
			"accent":    {R: 13, G: 110, B: 253},
		},
	},
	"purple": {
		Colors: map[string]domain.Color{
			"primary":   {R: 111, G: 66, B: 193},
			"secondary": {R: 214, G: 51, B: 132},
			"accent":    {R: 102, G: 16, B: 242},
		},
	},
	"warm": {
		Colors: map[string]domain.Color{
			"primary":   {R: 220, G: 53, B: 69},
			"secondary": {R: 253, G: 126, B: 20},
			"accent":    {R: 255, G: 193, B: 7},
			"success":   {R: 25, G: 135, B: 84},
		},
	},
}

// PresetNames returns the preset names in a stable order.
func PresetNames() []string {
	return []string{"default", "dark", "green", "purple", "warm"}
}

package theme

import "github.com/mgk2100/ppt-generator/internal/domain"

// Theme is the resolved design system for one generation run: color roles,
// gradient series, font roles, layout metrics, and the card style. Built
// once, read-only afterward.
type Theme struct {
	Colors    map[string]domain.Color
	Gradient  []domain.Color
	Fonts     map[string]Font
	Layout    Layout
	CardStyle string
}

// Font is one named font role.
type Font struct {
	Name string `yaml:"name" json:"name"`
	Size int    `yaml:"size" json:"size"`
	Bold bool   `yaml:"bold" json:"bold"`
}

// Layout holds slide layout metrics in inches.
type Layout struct {
	MarginLeft   float64 `yaml:"margin_left" json:"margin_left"`
	MarginRight  float64 `yaml:"margin_right" json:"margin_right"`
	MarginTop    float64 `yaml:"margin_top" json:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom" json:"margin_bottom"`
	ContentWidth float64 `yaml:"content_width" json:"content_width"`
	TitleHeight  float64 `yaml:"title_height" json:"title_height"`
	Spacing      float64 `yaml:"spacing" json:"spacing"`
}

// Title and body font families.
const (
	FontTitle = "현대하모니 M"
	FontBody  = "현대하모니 L"
)

// CardStyles lists the recognized card style names.
var CardStyles = []string{
	"classic", "gradient", "modern", "solid", "outline",
	"minimal", "banner", "split", "accent",
}

// DefaultCardStyle is used when neither theme nor configuration picks one.
const DefaultCardStyle = "gradient"

// Defaults returns a theme populated with the built-in design system.
func Defaults() *Theme {
	return &Theme{
		Colors: map[string]domain.Color{
			"primary":     {R: 40, G: 55, B: 78},
			"secondary":   {R: 79, G: 129, B: 189},
			"accent":      {R: 31, G: 73, B: 125},
			"highlight":   {R: 255, G: 192, B: 0},
			"success":     {R: 53, G: 162, B: 159},
			"warning":     {R: 255, G: 167, B: 109},
			"danger":      {R: 237, G: 102, B: 102},
			"light":       {R: 232, G: 237, B: 244},
			"dark":        {R: 51, G: 51, B: 51},
			"text":        {R: 51, G: 51, B: 51},
			"white":       {R: 255, G: 255, B: 255},
			"black":       {R: 0, G: 0, B: 0},
			"content_box": {R: 232, G: 237, B: 244},
			"header_bg":   {R: 40, G: 55, B: 78},
			"card_border": {R: 220, G: 220, B: 220},
			"teal":        {R: 11, G: 102, B: 105},
			"navy":        {R: 8, G: 24, B: 83},
		},
		Gradient: []domain.Color{
			{R: 40, G: 55, B: 78},
			{R: 31, G: 73, B: 125},
			{R: 79, G: 129, B: 189},
			{R: 126, G: 155, B: 200},
			{R: 181, G: 211, B: 235},
		},
		Fonts: map[string]Font{
			"cover_title":  {Name: FontTitle, Size: 44, Bold: true},
			"cover_date":   {Name: FontTitle, Size: 14},
			"cover_author": {Name: FontBody, Size: 14, Bold: true},
			"cover_type":   {Name: FontBody, Size: 12},
			"title":        {Name: FontTitle, Size: 20, Bold: true},
			"section":      {Name: FontTitle, Size: 14, Bold: true},
			"subtitle":     {Name: FontBody, Size: 16, Bold: true},
			"heading":      {Name: FontBody, Size: 14, Bold: true},
			"subheading":   {Name: FontBody, Size: 12, Bold: true},
			"body":         {Name: FontBody, Size: 12},
			"caption":      {Name: FontBody, Size: 11},
			"small":        {Name: FontBody, Size: 9},
		},
		Layout: Layout{
			MarginLeft:   0.4,
			MarginRight:  0.4,
			MarginTop:    0.9,
			MarginBottom: 0.5,
			ContentWidth: 10.0,
			TitleHeight:  0.5,
			Spacing:      0.15,
		},
		CardStyle: DefaultCardStyle,
	}
}

// Color returns the color for a role, falling back to primary for unknown
// roles.
func (t *Theme) Color(role string) domain.Color {
	if c, ok := t.Colors[role]; ok {
		return c
	}
	return t.Colors["primary"]
}

// HasColor reports whether a color role is defined.
func (t *Theme) HasColor(role string) bool {
	_, ok := t.Colors[role]
	return ok
}

// Font returns the font for a role, falling back to the body font for
// unknown roles.
func (t *Theme) Font(role string) Font {
	if f, ok := t.Fonts[role]; ok {
		return f
	}
	return Font{Name: FontBody, Size: 14}
}

// GradientColor returns the i-th gradient color, cycling.
func (t *Theme) GradientColor(i int) domain.Color {
	if len(t.Gradient) == 0 {
		return t.Color("primary")
	}
	return t.Gradient[i%len(t.Gradient)]
}

func validCardStyle(s string) bool {
	for _, v := range CardStyles {
		if v == s {
			return true
		}
	}
	return false
}

package theme

import "github.com/mgk2100/ppt-generator/internal/domain"

// Override is a partial theme: only the keys present change the resolved
// theme, everything else keeps its current value. Unknown top-level keys in
// theme files are ignored by decoding into this shape.
type Override struct {
	Colors    map[string]domain.Color `yaml:"colors" json:"colors,omitempty"`
	Gradient  []domain.Color          `yaml:"gradient" json:"gradient,omitempty"`
	Fonts     map[string]FontPatch    `yaml:"fonts" json:"fonts,omitempty"`
	Layout    map[string]float64      `yaml:"layout" json:"layout,omitempty"`
	CardStyle string                  `yaml:"card_style" json:"card_style,omitempty"`
}

// FontPatch overrides individual fields of one font role.
type FontPatch struct {
	Name *string `yaml:"name" json:"name,omitempty"`
	Size *int    `yaml:"size" json:"size,omitempty"`
	Bold *bool   `yaml:"bold" json:"bold,omitempty"`
}

// Apply merges the override into the theme, key-wise per section.
func (t *Theme) Apply(o Override) {
	for role, c := range o.Colors {
		t.Colors[role] = c
	}

	if len(o.Gradient) > 0 {
		t.Gradient = append([]domain.Color(nil), o.Gradient...)
	}

	for role, patch := range o.Fonts {
		f, ok := t.Fonts[role]
		if !ok {
			f = Font{Name: FontBody, Size: 14}
		}
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Size != nil {
			f.Size = *patch.Size
		}
		if patch.Bold != nil {
			f.Bold = *patch.Bold
		}
		t.Fonts[role] = f
	}

	for key, v := range o.Layout {
		switch key {
		case "margin_left":
			t.Layout.MarginLeft = v
		case "margin_right":
			t.Layout.MarginRight = v
		case "margin_top":
			t.Layout.MarginTop = v
		case "margin_bottom":
			t.Layout.MarginBottom = v
		case "content_width":
			t.Layout.ContentWidth = v
		case "title_height":
			t.Layout.TitleHeight = v
		case "spacing":
			t.Layout.Spacing = v
		}
	}

	if o.CardStyle != "" && validCardStyle(o.CardStyle) {
		t.CardStyle = o.CardStyle
	}
}

package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGB triple. Configuration files may express it either as a
// three-element sequence [r, g, b] or as a "#RRGGBB" string.
type Color struct {
	R, G, B uint8
}

// Hex returns the color as an uppercase RRGGBB string without the hash.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB returns the fully opaque AARRGGBB form used by the presentation library.
func (c Color) ARGB() string {
	return "FF" + c.Hex()
}

// UnmarshalYAML accepts [r,g,b] sequences and "#RRGGBB" scalars.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var triple []int
		if err := node.Decode(&triple); err != nil {
			return err
		}
		if len(triple) != 3 {
			return fmt.Errorf("color needs exactly 3 components, got %d", len(triple))
		}
		for _, v := range triple {
			if v < 0 || v > 255 {
				return fmt.Errorf("color component %d out of range", v)
			}
		}
		c.R, c.G, c.B = uint8(triple[0]), uint8(triple[1]), uint8(triple[2])
		return nil
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		parsed, err := ParseHexColor(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	return fmt.Errorf("color must be [r,g,b] or \"#RRGGBB\"")
}

// MarshalYAML writes the triple form so saved themes stay editable by hand.
func (c Color) MarshalYAML() (interface{}, error) {
	return []int{int(c.R), int(c.G), int(c.B)}, nil
}

// MarshalJSON mirrors MarshalYAML for JSON theme files.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d, %d, %d]", c.R, c.G, c.B)), nil
}

// ParseHexColor parses "#RRGGBB" (leading hash optional).
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b}, nil
}

// Node is one element of a tree or organization chart. The structure is a
// strict tree: no cycles, depth-first order preserved.
type Node struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Children    []Node `yaml:"children"`
}

// Count returns the total number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].Count()
	}
	return total
}

// ColorRef is a palette color reference: either a role name ("primary") or
// an explicit [r, g, b] triple.
type ColorRef struct {
	Role string
	RGB  *Color
}

// UnmarshalYAML accepts a role scalar, a "#RRGGBB" scalar, or an [r,g,b]
// sequence.
func (c *ColorRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		var rgb Color
		if err := rgb.UnmarshalYAML(node); err != nil {
			return err
		}
		c.RGB = &rgb
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if strings.HasPrefix(s, "#") {
		parsed, err := ParseHexColor(s)
		if err != nil {
			return err
		}
		c.RGB = &parsed
		return nil
	}
	c.Role = s
	return nil
}

// IsZero reports whether the reference is unset.
func (c ColorRef) IsZero() bool { return c.Role == "" && c.RGB == nil }

// Component is one box of an architecture diagram, in nominal (unscaled)
// author coordinates.
type Component struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Text        string   `yaml:"text"`
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	Shape       string   `yaml:"shape"`
	Color       ColorRef `yaml:"color"`
	TextColor   string   `yaml:"text_color"`
	Priority    string   `yaml:"priority"` // high, medium, low, optional
	FontSize    int      `yaml:"font_size"`
	Bold        *bool    `yaml:"bold"` // default true
	BorderWidth float64  `yaml:"border_width"`
	Description string   `yaml:"description"`
}

// Key returns the identifier connections refer to: the id when set, the
// display name otherwise.
func (c *Component) Key() string {
	if c.ID != "" {
		return c.ID
	}
	return c.DisplayName()
}

// DisplayName returns the text shown inside the box.
func (c *Component) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Text
}

// Connection joins two components by id. Connections naming ids that are not
// in the component set are skipped.
type Connection struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label"`
}

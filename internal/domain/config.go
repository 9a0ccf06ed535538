package domain

import "gopkg.in/yaml.v3"

// DeckConfig is the parsed top-level deck configuration.
type DeckConfig struct {
	Cover    *CoverConfig  `yaml:"cover"`
	Slides   []SlideConfig `yaml:"slides"`
	Settings Settings      `yaml:"settings"`
}

// Settings are deck-wide flags and overrides.
type Settings struct {
	ShowPageNumbers *bool  `yaml:"show_page_numbers"` // default true
	ExportPDF       bool   `yaml:"export_pdf"`
	ThemeName       string `yaml:"theme_name"`
	ThemePath       string `yaml:"theme_path"`
	CardStyle       string `yaml:"card_style"`
	Template        string `yaml:"template"`
}

// PageNumbers reports whether page-number footers are enabled.
func (s Settings) PageNumbers() bool {
	if s.ShowPageNumbers == nil {
		return true
	}
	return *s.ShowPageNumbers
}

// CoverConfig describes the title slide.
type CoverConfig struct {
	Title      string `yaml:"title"`
	Date       string `yaml:"date"`
	Author     string `yaml:"author"`
	ReportType string `yaml:"report_type"` // 의사결정, 보고, 정보공유
}

// SlideConfig is one entry of the slides list. Type selects the builder; the
// remaining fields are type-specific and default to zero values, so builders
// never fail on missing optional fields.
type SlideConfig struct {
	Type  string `yaml:"type"`
	Title string `yaml:"title"`

	// section
	Number   string `yaml:"number"`
	Subtitle string `yaml:"subtitle"`

	// content
	Content []ContentItem `yaml:"content"`

	// content_boxed
	Sections []BoxedSection `yaml:"sections"`
	Columns  int            `yaml:"columns"`

	// content_icons
	Items []IconItem `yaml:"items"`

	// comparison
	LeftTitle  string   `yaml:"left_title"`
	LeftItems  []string `yaml:"left_items"`
	RightTitle string   `yaml:"right_title"`
	RightItems []string `yaml:"right_items"`
	LeftColor  string   `yaml:"left_color"`
	RightColor string   `yaml:"right_color"`

	// text
	TextBlocks []TextBlock `yaml:"text_blocks"`

	// table
	Headers       []string   `yaml:"headers"`
	Rows          [][]string `yaml:"rows"`
	ColWidths     []float64  `yaml:"col_widths"`
	HighlightRows []int      `yaml:"highlight_rows"`

	// cards
	Cards     []Card `yaml:"cards"`
	CardStyle string `yaml:"card_style"`

	// architecture / flowchart
	Components  []Component  `yaml:"components"`
	Connections []Connection `yaml:"connections"`
	Labels      []Label      `yaml:"labels"`
	Palette     string       `yaml:"palette"`   // blue, green, purple
	FlowType    string       `yaml:"flow_type"` // horizontal, vertical
	Steps       []FlowStep   `yaml:"steps"`

	// summary
	Points    []string `yaml:"points"`
	Highlight string   `yaml:"highlight"`

	// image
	ImagePath   string  `yaml:"image_path"`
	Caption     string  `yaml:"caption"`
	ImageWidth  float64 `yaml:"image_width"`
	ImageHeight float64 `yaml:"image_height"`

	// timeline / stats share style: horizontal|vertical, cards|inline
	Milestones []Milestone `yaml:"milestones"`
	Stats      []Stat      `yaml:"stats"`
	Style      string      `yaml:"style"`

	// two_column
	LeftContent  ColumnContent `yaml:"left_content"`
	RightContent ColumnContent `yaml:"right_content"`
	ColumnRatio  string        `yaml:"column_ratio"` // 50:50, 40:60, 60:40, 30:70, 70:30

	// chart
	ChartType      string   `yaml:"chart_type"`
	Categories     []string `yaml:"categories"`
	Series         []Series `yaml:"series"`
	ChartTitle     string   `yaml:"chart_title"`
	ShowLegend     *bool    `yaml:"show_legend"` // default true
	LegendPosition string   `yaml:"legend_position"`

	// org_chart
	OrgData Node `yaml:"org_data"`

	// tree
	TreeStructure []Node            `yaml:"tree_structure"`
	Descriptions  map[string]string `yaml:"descriptions"`
}

// ContentItem is one line of a content slide. A bare string is shorthand for
// an unemphasized item at level zero.
type ContentItem struct {
	Text     string `yaml:"text"`
	Level    int    `yaml:"level"`
	Emphasis bool   `yaml:"emphasis"`
}

// UnmarshalYAML accepts either a scalar line or an item map.
func (c *ContentItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&c.Text)
	}
	type plain ContentItem
	return node.Decode((*plain)(c))
}

// BoxedSection is one box of a content_boxed slide.
type BoxedSection struct {
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
	Color string   `yaml:"color"` // theme color role
}

// IconItem is one row of a content_icons slide.
type IconItem struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// TextBlock is a freely positioned paragraph on a text slide.
type TextBlock struct {
	Text       string  `yaml:"text"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FontSize   int     `yaml:"font_size"`
	Bold       bool    `yaml:"bold"`
	Color      string  `yaml:"color"`
	Background bool    `yaml:"background"`
	BgColor    string  `yaml:"bg_color"`
}

// Card is one card of a cards slide.
type Card struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
	Icon    string `yaml:"icon"`
	Color   string `yaml:"color"`
}

// Label is a free-floating annotation on an architecture diagram, in the
// same nominal coordinate space as the components.
type Label struct {
	Text     string  `yaml:"text"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	FontSize int     `yaml:"font_size"`
	Color    string  `yaml:"color"`
	Bold     bool    `yaml:"bold"`
}

// FlowStep is one step of a flowchart. A bare string is shorthand for a
// step with only a title.
type FlowStep struct {
	Title       string `yaml:"title"`
	Text        string `yaml:"text"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
	Shape       string `yaml:"shape"`
	FontSize    int    `yaml:"font_size"`
}

// UnmarshalYAML accepts either a scalar title or a step map.
func (f *FlowStep) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&f.Title)
	}
	type plain FlowStep
	return node.Decode((*plain)(f))
}

// DisplayTitle returns the step title, preferring title over text.
func (f *FlowStep) DisplayTitle() string {
	if f.Title != "" {
		return f.Title
	}
	return f.Text
}

// Milestone is one entry of a timeline slide.
type Milestone struct {
	Date        string `yaml:"date"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"` // completed, current, upcoming
}

// Stat is one figure of a stats slide.
type Stat struct {
	Label       string `yaml:"label"`
	Value       string `yaml:"value"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	Color       string `yaml:"color"`
}

// ColumnContent is one half of a two_column slide.
type ColumnContent struct {
	Type      string   `yaml:"type"` // bullets, text, image
	Title     string   `yaml:"title"`
	Items     []string `yaml:"items"`
	Text      string   `yaml:"text"`
	ImagePath string   `yaml:"image_path"`
	// Background draws a light panel behind the column.
	Background bool   `yaml:"background"`
	BgColor    string `yaml:"bg_color"`
}

// Series is one data series of a chart slide.
type Series struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

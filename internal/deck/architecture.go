package deck

import (
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// diagramShapes maps configuration shape names onto writer geometry. The
// document shape has no direct preset and renders as a folded corner page.
var diagramShapes = map[string]ppt.AutoShapeType{
	"rectangle":         ppt.AutoShapeRectangle,
	"rounded_rectangle": ppt.AutoShapeRoundedRect,
	"oval":              ppt.AutoShapeEllipse,
	"diamond":           ppt.AutoShapeDiamond,
	"parallelogram":     ppt.AutoShapeParallelogram,
	"hexagon":           ppt.AutoShapeHexagon,
	"chevron":           ppt.AutoShapeChevron,
	"cylinder":          ppt.AutoShapeCan,
	"cloud":             ppt.AutoShapeCloud,
	"document":          ppt.AutoShapeFoldedCorner,
}

// palette is the role-to-color table of one diagram color scheme.
type palette map[string]domain.Color

func (r *render) diagramPalette(name string) palette {
	switch name {
	case "green":
		return palette{
			"primary":   rgb(0, 128, 64),
			"secondary": rgb(100, 180, 100),
			"accent":    rgb(50, 100, 50),
			"light":     rgb(230, 245, 230),
			"text":      r.th.Color("white"),
			"dark_text": r.th.Color("dark"),
		}
	case "purple":
		return palette{
			"primary":   rgb(102, 45, 145),
			"secondary": rgb(150, 100, 180),
			"accent":    rgb(80, 35, 115),
			"light":     rgb(240, 230, 250),
			"text":      r.th.Color("white"),
			"dark_text": r.th.Color("dark"),
		}
	default:
		return palette{
			"primary":   r.th.Color("primary"),
			"secondary": r.th.Color("secondary"),
			"accent":    r.th.Color("accent"),
			"light":     r.th.Color("light"),
			"text":      r.th.Color("white"),
			"dark_text": r.th.Color("dark"),
			"green":     r.th.Color("success"),
			"orange":    r.th.Color("warning"),
			"purple":    rgb(112, 48, 160),
			"gray":      rgb(128, 128, 128),
		}
	}
}

// priorityColors map component importance onto the brand scale. They apply
// only when the component picks no explicit color.
func (r *render) priorityColor(priority string) (domain.Color, bool) {
	switch priority {
	case "high", "critical":
		return r.th.Color("primary"), true
	case "medium", "normal":
		return r.th.Color("secondary"), true
	case "low":
		return r.th.Color("accent"), true
	case "optional":
		return rgb(150, 180, 200), true
	}
	return domain.Color{}, false
}

// addArchitectureSlide builds a component diagram. Nominal coordinates are
// scaled down and centered to fit the drawable area, never scaled up, and
// connectors are routed edge to edge with elbows when boxes are misaligned.
func (r *render) addArchitectureSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	r.drawDiagram(sl, sc.Components, sc.Connections, sc.Labels, sc.Palette)
	return nil
}

func (r *render) drawDiagram(sl *ppt.Slide, components []domain.Component, connections []domain.Connection, labels []domain.Label, paletteName string) {
	colors := r.diagramPalette(paletteName)

	nominal := make([]geometry.Rect, len(components))
	for i, comp := range components {
		nominal[i] = componentRect(&comp)
	}
	fit := geometry.FitRects(nominal, geometry.DefaultBounds)

	placed := make(map[string]geometry.Rect, len(components))
	for i := range components {
		comp := &components[i]
		rect := fit.Place(nominal[i])
		placed[comp.Key()] = rect

		shapeType, ok := diagramShapes[comp.Shape]
		if !ok {
			shapeType = ppt.AutoShapeRoundedRect
		}

		fill := r.componentFill(comp, colors)
		textColor, ok := colors[comp.TextColor]
		if !ok {
			textColor = colors["text"]
		}

		baseSize := comp.FontSize
		if baseSize == 0 {
			baseSize = 11
		}
		bold := true
		if comp.Bold != nil {
			bold = *comp.Bold
		}

		box := r.shape(sl, shapeType, rect, fill)
		if comp.BorderWidth > 0 {
			setBorder(box, fill, comp.BorderWidth)
		}
		r.boxLabel(sl, rect, comp.DisplayName(),
			theme.Font{Name: theme.FontBody, Size: fit.FontSize(baseSize, 10), Bold: bold}, textColor)

		if comp.Description != "" {
			desc := r.textbox(sl, geometry.Rect{X: rect.X, Y: rect.Bottom() + 0.02, W: rect.W, H: 0.25},
				comp.Description, theme.Font{Name: theme.FontBody, Size: 8}, rgb(100, 100, 100))
			alignCenter(desc.GetActiveParagraph())
		}
	}

	lineColor, ok := colors["accent"]
	if !ok {
		lineColor = rgb(89, 89, 89)
	}
	for _, conn := range connections {
		from, okFrom := placed[conn.From]
		to, okTo := placed[conn.To]
		if !okFrom || !okTo {
			continue
		}
		for _, seg := range geometry.Route(from, to) {
			if seg.Arrow {
				r.arrow(sl, seg.X1, seg.Y1, seg.X2, seg.Y2, lineColor, 1.5)
			} else {
				r.line(sl, seg.X1, seg.Y1, seg.X2, seg.Y2, lineColor, 1.5)
			}
		}
	}

	for _, label := range labels {
		color, ok := colors[label.Color]
		if !ok {
			color = colors["dark_text"]
		}
		x := label.X
		y := label.Y
		if x == 0 {
			x = 0.5
		}
		if y == 0 {
			y = 1.0
		}
		lx, ly := fit.PlacePoint(x, y)
		baseSize := label.FontSize
		if baseSize == 0 {
			baseSize = 10
		}
		r.textbox(sl, geometry.Rect{X: lx, Y: ly, W: 2.0, H: 0.3}, label.Text,
			theme.Font{Name: theme.FontBody, Size: fit.FontSize(baseSize, 8), Bold: label.Bold}, color)
	}
}

func componentRect(comp *domain.Component) geometry.Rect {
	rect := geometry.Rect{X: 1.0, Y: 1.0, W: 2.0, H: 0.8}
	if comp.X != 0 {
		rect.X = comp.X
	}
	if comp.Y != 0 {
		rect.Y = comp.Y
	}
	if comp.Width != 0 {
		rect.W = comp.Width
	}
	if comp.Height != 0 {
		rect.H = comp.Height
	}
	return rect
}

func (r *render) componentFill(comp *domain.Component, colors palette) domain.Color {
	if comp.Color.IsZero() {
		if c, ok := r.priorityColor(strings.ToLower(comp.Priority)); ok {
			return c
		}
		return colors["primary"]
	}
	if comp.Color.RGB != nil {
		return *comp.Color.RGB
	}
	if c, ok := colors[comp.Color.Role]; ok {
		return c
	}
	return colors["primary"]
}

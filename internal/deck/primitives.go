package deck

import (
	"math"
	"strconv"
	"strings"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// Shape type aliases used throughout the builders.
const (
	autoRect      = ppt.AutoShapeRectangle
	autoRoundRect = ppt.AutoShapeRoundedRect
	autoEllipse   = ppt.AutoShapeEllipse

	middleAnchor = ppt.TextAnchorMiddle
)

func inch(v float64) int64 { return ppt.Inch(v) }

func pptColor(c domain.Color) ppt.Color { return ppt.NewColor(c.ARGB()) }

func rgb(r, g, b uint8) domain.Color { return domain.Color{R: r, G: g, B: b} }

func solidFill(c domain.Color) *ppt.Fill { return ppt.NewFill().SetSolid(pptColor(c)) }

// lineSpacing converts a spacing multiplier into the writer's unit,
// hundredths of a point.
func lineSpacing(sizePt int, factor float64) int {
	return int(float64(sizePt) * factor * 100)
}

func placeText(sh *ppt.RichTextShape, r geometry.Rect) *ppt.RichTextShape {
	sh.SetOffsetX(inch(r.X)).SetOffsetY(inch(r.Y)).SetWidth(inch(r.W)).SetHeight(inch(r.H))
	return sh
}

func placeShape(sh *ppt.AutoShape, r geometry.Rect) *ppt.AutoShape {
	sh.SetPosition(inch(r.X), inch(r.Y))
	sh.SetSize(inch(r.W), inch(r.H))
	return sh
}

func styleRun(run *ppt.TextRun, f theme.Font, c domain.Color) {
	run.GetFont().SetName(f.Name).SetSize(f.Size).SetBold(f.Bold).SetColor(pptColor(c))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

func setBorder(sh *ppt.AutoShape, c domain.Color, widthPt float64) {
	b := sh.GetBorder()
	b.Style = ppt.BorderSolid
	b.Width = int(ppt.Point(widthPt))
	b.Color = pptColor(c)
}

// textbox adds a word-wrapped rich text shape with one styled run.
func (r *render) textbox(sl *ppt.Slide, rect geometry.Rect, text string, f theme.Font, c domain.Color) *ppt.RichTextShape {
	sh := sl.CreateRichTextShape()
	placeText(sh, rect)
	sh.SetWordWrap(true)
	styleRun(sh.CreateTextRun(text), f, c)
	return sh
}

// boxLabel overlays centered, middle-anchored text on a box footprint.
func (r *render) boxLabel(sl *ppt.Slide, rect geometry.Rect, text string, f theme.Font, c domain.Color) *ppt.RichTextShape {
	sh := r.textbox(sl, rect, text, f, c)
	sh.SetTextAnchor(ppt.TextAnchorMiddle)
	alignCenter(sh.GetActiveParagraph())
	return sh
}

// shape adds a solid-filled auto shape without a border.
func (r *render) shape(sl *ppt.Slide, t ppt.AutoShapeType, rect geometry.Rect, fill domain.Color) *ppt.AutoShape {
	sh := sl.CreateAutoShape()
	sh.SetAutoShapeType(t)
	placeShape(sh, rect)
	sh.SetSolidFill(pptColor(fill))
	return sh
}

func (r *render) line(sl *ppt.Slide, x1, y1, x2, y2 float64, c domain.Color, widthPt float64) *ppt.LineShape {
	sh := sl.CreateLineShape()
	sh.SetPosition(inch(math.Min(x1, x2)), inch(math.Min(y1, y2)))
	sh.SetSize(inch(math.Abs(x2-x1)), inch(math.Abs(y2-y1)))
	if x2 < x1 {
		sh.SetFlipHorizontal(true)
	}
	if y2 < y1 {
		sh.SetFlipVertical(true)
	}
	sh.SetLineColor(pptColor(c))
	sh.SetLineWidth(int(math.Round(widthPt)))
	sh.SetLineStyle(ppt.BorderSolid)
	return sh
}

func (r *render) arrow(sl *ppt.Slide, x1, y1, x2, y2 float64, c domain.Color, widthPt float64) *ppt.LineShape {
	sh := r.line(sl, x1, y1, x2, y2, c, widthPt)
	sh.SetTailEnd(&ppt.LineEnd{
		Type:   ppt.ArrowType("triangle"),
		Width:  ppt.ArrowSizeMed,
		Length: ppt.ArrowSizeMed,
	})
	return sh
}

// iconCircle draws a filled circle with a short centered label, sized so the
// text tracks the circle diameter.
func (r *render) iconCircle(sl *ppt.Slide, text string, x, y, size float64, bg, fg domain.Color) {
	rect := geometry.Rect{X: x, Y: y, W: size, H: size}
	r.shape(sl, ppt.AutoShapeEllipse, rect, bg)
	f := theme.Font{Name: theme.FontBody, Size: int(size * 20), Bold: true}
	sh := r.boxLabel(sl, rect, text, f, fg)
	sh.SetWordWrap(false)
}

// shadowBox draws an offset gray box behind a bordered main box and returns
// the main box.
func (r *render) shadowBox(sl *ppt.Slide, rect geometry.Rect, fill, borderColor domain.Color, offset float64, shadow domain.Color, rounded bool) *ppt.AutoShape {
	t := ppt.AutoShapeRectangle
	if rounded {
		t = ppt.AutoShapeRoundedRect
	}
	r.shape(sl, t, geometry.Rect{X: rect.X + offset, Y: rect.Y + offset, W: rect.W, H: rect.H}, shadow)
	box := r.shape(sl, t, rect, fill)
	setBorder(box, borderColor, 1)
	return box
}

// accentBar draws a thin vertical accent rectangle.
func (r *render) accentBar(sl *ppt.Slide, x, y, w, h float64, c domain.Color) {
	r.shape(sl, ppt.AutoShapeRectangle, geometry.Rect{X: x, Y: y, W: w, H: h}, c)
}

// lighten moves a color toward white. Factor 0 keeps the color, 1 turns it
// white.
func lighten(c domain.Color, factor float64) domain.Color {
	up := func(v uint8) uint8 {
		n := int(float64(v) + (255-float64(v))*factor)
		if n > 255 {
			n = 255
		}
		return uint8(n)
	}
	return domain.Color{R: up(c.R), G: up(c.G), B: up(c.B)}
}

// darken subtracts a fixed amount from each channel.
func darken(c domain.Color, by uint8) domain.Color {
	down := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return domain.Color{R: down(c.R), G: down(c.G), B: down(c.B)}
}

var iconMapping = map[string]string{
	"document": "📄", "ai": "🤖", "flow": "⚙️", "server": "🖥️",
	"database": "🗄️", "link": "🔗", "settings": "⚙️", "chart": "📊",
	"code": "💻", "cloud": "☁️", "security": "🔒", "network": "🌐",
	"user": "👤", "api": "🔌", "data": "📁", "check": "✓",
	"star": "★", "heart": "♥", "lightning": "⚡", "target": "◎",
}

// iconText resolves an icon key to its glyph. Unknown multi-character keys
// collapse to a two-letter abbreviation; an empty key falls back to the
// one-based card number.
func iconText(icon string, index int) string {
	if icon == "" {
		return strconv.Itoa(index + 1)
	}
	if glyph, ok := iconMapping[strings.ToLower(icon)]; ok {
		return glyph
	}
	runes := []rune(icon)
	if len(runes) > 2 {
		return strings.ToUpper(string(runes[:2]))
	}
	return icon
}

// colorCycle is the accent rotation applied when an item picks no color.
var colorCycle = []string{"primary", "secondary", "accent", "success", "warning"}

func (r *render) cycleColor(i int) domain.Color {
	return r.th.Color(colorCycle[i%len(colorCycle)])
}

// roleOr resolves a theme color role, falling back to a default role when
// empty or unknown.
func (r *render) roleOr(role, fallback string) domain.Color {
	if role != "" && r.th.HasColor(role) {
		return r.th.Color(role)
	}
	return r.th.Color(fallback)
}

package deck

import (
	"strconv"
	"strings"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addContentSlide builds a plain body-text slide, one paragraph per content
// entry.
func (r *render) addContentSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if len(sc.Content) == 0 {
		return nil
	}

	body := sl.CreateRichTextShape()
	placeText(body, geometry.Rect{X: 0.5, Y: 1.3, W: 9.8, H: 5.6})
	body.SetWordWrap(true)
	black := r.th.Color("black")
	for i, item := range sc.Content {
		p := body.GetActiveParagraph()
		if i > 0 {
			p = body.CreateParagraph()
		}
		p.SetSpaceAfter(1200)
		text := item.Text
		if item.Level > 0 {
			text = strings.Repeat("    ", item.Level) + text
		}
		f := theme.Font{Name: theme.FontBody, Size: 16, Bold: item.Emphasis}
		styleRun(p.CreateTextRun(text), f, black)
	}
	return nil
}

// boxedAccent pairs a section accent color with the light border its item
// boxes carry.
var boxedAccent = map[string]domain.Color{
	"primary":   rgb(200, 215, 235),
	"secondary": rgb(200, 225, 245),
	"accent":    rgb(210, 220, 240),
	"success":   rgb(200, 235, 200),
	"warning":   rgb(255, 235, 200),
	"danger":    rgb(245, 210, 210),
	"highlight": rgb(255, 240, 200),
}

// addContentBoxedSlide builds per-topic boxes, each with a colored title bar
// and one small bordered box per item. Two-column packing assigns sections to
// columns round-robin.
func (r *render) addContentBoxedSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if len(sc.Sections) == 0 {
		return nil
	}

	const (
		marginLeft     = 0.4
		startY         = 1.1
		totalWidth     = 10.0 - marginLeft*2
		sectionSpacing = 0.15
		itemSpacing    = 0.08
		titleHeight    = 0.35
		itemHeight     = 0.32
	)

	columns := 1
	colWidth := totalWidth
	if sc.Columns == 2 && len(sc.Sections) >= 2 {
		columns = 2
		colWidth = (totalWidth - sectionSpacing) / 2
	}
	colY := []float64{startY, startY}

	white := r.th.Color("white")
	text := r.th.Color("text")
	for idx, section := range sc.Sections {
		col := 0
		if columns == 2 {
			col = idx % 2
		}
		x := marginLeft + float64(col)*(colWidth+sectionSpacing)
		y := colY[col]

		role := section.Color
		if _, ok := boxedAccent[role]; !ok {
			role = "primary"
		}
		accent := r.th.Color(role)
		border := boxedAccent[role]

		r.shadowBox(sl, geometry.Rect{X: x, Y: y, W: colWidth, H: titleHeight},
			accent, accent, 0.03, rgb(180, 180, 180), false)
		head := r.textbox(sl, geometry.Rect{X: x + 0.15, Y: y + 0.05, W: colWidth - 0.3, H: titleHeight - 0.1},
			section.Title, theme.Font{Name: theme.FontBody, Size: 12, Bold: true}, white)
		head.SetTextAnchor(middleAnchor)
		y += titleHeight + itemSpacing

		for _, item := range section.Items {
			r.shadowBox(sl, geometry.Rect{X: x, Y: y, W: colWidth, H: itemHeight},
				white, border, 0.025, rgb(220, 220, 220), false)
			r.accentBar(sl, x+0.02, y+0.06, 0.04, itemHeight-0.12, accent)
			body := r.textbox(sl, geometry.Rect{X: x + 0.12, Y: y + 0.04, W: colWidth - 0.2, H: itemHeight - 0.08},
				item, theme.Font{Name: theme.FontBody, Size: 11}, text)
			body.SetTextAnchor(middleAnchor)
			y += itemHeight + itemSpacing
		}

		colY[col] = y + sectionSpacing
	}
	return nil
}

// addContentIconsSlide builds rows of icon circle, bold title, and optional
// description. Circle colors walk the theme gradient.
func (r *render) addContentIconsSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	white := r.th.Color("white")
	for i, item := range sc.Items {
		y := 1.0 + float64(i)*0.9
		icon := item.Icon
		if icon == "" {
			icon = strconv.Itoa(i + 1)
		}
		r.iconCircle(sl, icon, 0.5, y, 0.5, r.th.GradientColor(i), white)
		r.textbox(sl, geometry.Rect{X: 1.2, Y: y, W: 8.5, H: 0.4}, item.Title,
			theme.Font{Name: theme.FontBody, Size: 16, Bold: true}, r.th.Color("black"))
		if item.Description != "" {
			r.textbox(sl, geometry.Rect{X: 1.2, Y: y + 0.4, W: 8.5, H: 0.4}, item.Description,
				theme.Font{Name: theme.FontBody, Size: 12}, rgb(64, 64, 64))
		}
	}
	return nil
}

package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addComparisonSlide builds two bordered panels side by side, each with a
// colored title bar and up to six item boxes.
func (r *render) addComparisonSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	leftTitle, rightTitle := sc.LeftTitle, sc.RightTitle
	if leftTitle == "" {
		leftTitle = "Before"
	}
	if rightTitle == "" {
		rightTitle = "After"
	}
	leftColor := r.roleOr(sc.LeftColor, "danger")
	rightColor := r.roleOr(sc.RightColor, "success")

	r.comparisonPanel(sl, 0.4, leftTitle, sc.LeftItems, leftColor,
		rgb(248, 250, 255), rgb(220, 225, 235))
	r.comparisonPanel(sl, 5.5, rightTitle, sc.RightItems, rightColor,
		rgb(248, 255, 250), rgb(220, 235, 225))

	// VS badge straddling the gap between the panels.
	badgeRect := geometry.Rect{X: 5.1, Y: 3.6, W: 0.6, H: 0.6}
	r.shape(sl, autoEllipse, badgeRect, r.th.Color("dark"))
	vs := r.boxLabel(sl, badgeRect, "VS",
		theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, r.th.Color("white"))
	vs.SetWordWrap(false)
	return nil
}

func (r *render) comparisonPanel(sl *ppt.Slide, x float64, title string, items []string, accent, panelFill, itemBorder domain.Color) {
	const (
		boxY        = 1.1
		boxHeight   = 5.6
		boxWidth    = 4.9
		titleHeight = 0.5
	)

	panel := r.shape(sl, autoRoundRect, geometry.Rect{X: x, Y: boxY, W: boxWidth, H: boxHeight}, panelFill)
	setBorder(panel, accent, 2)

	r.shape(sl, autoRect, geometry.Rect{X: x, Y: boxY, W: boxWidth, H: titleHeight}, accent)
	r.boxLabel(sl, geometry.Rect{X: x, Y: boxY, W: boxWidth, H: titleHeight}, title,
		theme.Font{Name: theme.FontBody, Size: 16, Bold: true}, r.th.Color("white"))

	y := boxY + titleHeight + 0.15
	dark := r.th.Color("dark")
	for i, item := range items {
		if i >= 6 {
			break
		}
		box := r.shape(sl, autoRoundRect, geometry.Rect{X: x + 0.15, Y: y, W: boxWidth - 0.3, H: 0.75}, r.th.Color("white"))
		setBorder(box, itemBorder, 1)
		r.accentBar(sl, x+0.15, y, 0.05, 0.75, accent)
		body := r.textbox(sl, geometry.Rect{X: x + 0.3, Y: y + 0.08, W: boxWidth - 0.5, H: 0.6},
			"• "+item, theme.Font{Name: theme.FontBody, Size: 12}, dark)
		body.SetTextAnchor(middleAnchor)
		y += 0.75 + 0.08
	}
}

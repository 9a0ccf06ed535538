package deck

import (
	"strconv"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addTimelineSlide draws the milestones either as a horizontal run of step
// boxes or as a vertical status line with cards.
func (r *render) addTimelineSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if len(sc.Milestones) == 0 {
		return nil
	}
	if sc.Style == "vertical" {
		r.verticalTimeline(sl, sc.Milestones)
	} else {
		r.horizontalTimeline(sl, sc.Milestones)
	}
	return nil
}

func (r *render) horizontalTimeline(sl *ppt.Slide, milestones []domain.Milestone) {
	// Six step boxes fill the slide width; extra milestones are dropped.
	if len(milestones) > 6 {
		milestones = milestones[:6]
	}
	n := len(milestones)
	const (
		startX    = 0.4
		gap       = 0.3
		boxHeight = 2.8
		boxY      = 1.8
	)
	boxWidth := (10.0 - gap*float64(n-1)) / float64(n)
	if boxWidth > 2.0 {
		boxWidth = 2.0
	}

	white := r.th.Color("white")
	for i, m := range milestones {
		x := startX + float64(i)*(boxWidth+gap)
		boxColor := r.cycleColor(i)

		r.shape(sl, autoRoundRect, geometry.Rect{X: x + 0.03, Y: boxY + 0.03, W: boxWidth, H: boxHeight}, rgb(200, 200, 200))
		box := r.shape(sl, autoRoundRect, geometry.Rect{X: x, Y: boxY, W: boxWidth, H: boxHeight}, white)
		setBorder(box, boxColor, 2)
		r.shape(sl, autoRect, geometry.Rect{X: x, Y: boxY, W: boxWidth, H: 0.15}, boxColor)

		const circleSize = 0.5
		circleY := boxY + 0.3
		circleRect := geometry.Rect{X: x + (boxWidth-circleSize)/2, Y: circleY, W: circleSize, H: circleSize}
		r.shape(sl, autoEllipse, circleRect, boxColor)
		num := r.boxLabel(sl, circleRect, strconv.Itoa(i+1),
			theme.Font{Name: theme.FontBody, Size: 16, Bold: true}, white)
		num.SetWordWrap(false)

		if m.Date != "" {
			date := r.textbox(sl, geometry.Rect{X: x + 0.1, Y: circleY + circleSize + 0.1, W: boxWidth - 0.2, H: 0.4},
				m.Date, theme.Font{Name: theme.FontBody, Size: 12, Bold: true}, boxColor)
			alignCenter(date.GetActiveParagraph())
		}

		titleY := circleY + circleSize + 0.5
		if m.Title != "" {
			title := r.textbox(sl, geometry.Rect{X: x + 0.1, Y: titleY, W: boxWidth - 0.2, H: 0.6},
				m.Title, theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, r.th.Color("black"))
			alignCenter(title.GetActiveParagraph())
		}
		if m.Description != "" {
			desc := r.textbox(sl, geometry.Rect{X: x + 0.1, Y: titleY + 0.55, W: boxWidth - 0.2, H: 1.0},
				m.Description, theme.Font{Name: theme.FontBody, Size: 12}, rgb(80, 80, 80))
			alignCenter(desc.GetActiveParagraph())
		}

		if i < n-1 {
			midY := boxY + boxHeight/2
			r.arrow(sl, x+boxWidth+0.05, midY, x+boxWidth+gap-0.05, midY, r.th.Color("primary"), 2.5)
		}
	}
}

func (r *render) verticalTimeline(sl *ppt.Slide, milestones []domain.Milestone) {
	n := len(milestones)
	const (
		lineX      = 2.0
		lineStartY = 1.2
		lineEndY   = 6.5
		cardX      = 2.6
		cardWidth  = 7.0
	)
	lineLength := lineEndY - lineStartY

	r.shape(sl, autoRect, geometry.Rect{X: lineX, Y: lineStartY, W: 0.06, H: lineLength}, r.th.Color("primary"))

	spacing := lineLength / float64(n)
	for i, m := range milestones {
		y := lineStartY + float64(i)*spacing + spacing/2

		var dotColor, cardFill, cardBorder domain.Color
		switch m.Status {
		case "completed":
			dotColor = r.th.Color("success")
			cardFill, cardBorder = rgb(240, 255, 240), r.th.Color("success")
		case "current":
			dotColor = r.th.Color("warning")
			cardFill, cardBorder = rgb(255, 250, 230), r.th.Color("warning")
		default:
			dotColor = rgb(180, 180, 180)
			cardFill, cardBorder = rgb(248, 248, 248), rgb(200, 200, 200)
		}

		const dotSize = 0.3
		dot := r.shape(sl, autoEllipse, geometry.Rect{X: lineX - dotSize/2 + 0.03, Y: y - dotSize/2, W: dotSize, H: dotSize}, dotColor)
		setBorder(dot, r.th.Color("white"), 2)

		if m.Date != "" {
			date := r.textbox(sl, geometry.Rect{X: 0.3, Y: y - 0.15, W: 1.5, H: 0.4},
				m.Date, theme.Font{Name: theme.FontBody, Size: 12, Bold: true}, r.th.Color("primary"))
			alignRight(date.GetActiveParagraph())
		}

		cardHeight := spacing * 0.8
		cardTop := y - cardHeight/2
		card := r.shape(sl, autoRoundRect, geometry.Rect{X: cardX, Y: cardTop, W: cardWidth, H: cardHeight}, cardFill)
		setBorder(card, cardBorder, 1)

		if m.Title != "" {
			r.textbox(sl, geometry.Rect{X: cardX + 0.15, Y: cardTop + 0.1, W: cardWidth - 0.3, H: 0.35},
				m.Title, theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, r.th.Color("black"))
		}
		if m.Description != "" {
			r.textbox(sl, geometry.Rect{X: cardX + 0.15, Y: cardTop + 0.4, W: cardWidth - 0.3, H: cardHeight - 0.5},
				m.Description, theme.Font{Name: theme.FontBody, Size: 12}, rgb(80, 80, 80))
		}
	}
}

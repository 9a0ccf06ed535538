package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addStatsSlide renders headline figures either as bordered cards or as
// large inline circles.
func (r *render) addStatsSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if len(sc.Stats) == 0 {
		return nil
	}
	if sc.Style == "inline" {
		r.statsInline(sl, sc.Stats)
	} else {
		r.statsCards(sl, sc.Stats)
	}
	return nil
}

func statValue(s domain.Stat) string {
	if s.Value == "" {
		return "0" + s.Unit
	}
	return s.Value + s.Unit
}

func (r *render) statAccent(s domain.Stat, i int) domain.Color {
	if s.Color != "" {
		if r.th.HasColor(s.Color) {
			return r.th.Color(s.Color)
		}
		return r.th.Color("primary")
	}
	return r.cycleColor(i)
}

func (r *render) statsCards(sl *ppt.Slide, stats []domain.Stat) {
	n := len(stats)
	cols := n
	if cols > 4 {
		cols = 4
	}
	rows := (n + cols - 1) / cols
	cardWidth := (10.0 - float64(cols-1)*0.3) / float64(cols)
	cardHeight := 2.2
	if rows > 1 {
		cardHeight = 1.8
	}

	for i, s := range stats {
		x := 0.4 + float64(i%cols)*(cardWidth+0.3)
		y := 1.5 + float64(i/cols)*(cardHeight+0.3)
		accent := r.statAccent(s, i)

		box := r.shape(sl, autoRoundRect, geometry.Rect{X: x, Y: y, W: cardWidth, H: cardHeight}, r.th.Color("white"))
		setBorder(box, rgb(230, 230, 230), 1)
		r.shape(sl, autoRect, geometry.Rect{X: x, Y: y, W: cardWidth, H: 0.1}, accent)

		valueX := x + 0.15
		if s.Icon != "" {
			r.textbox(sl, geometry.Rect{X: x + 0.15, Y: y + 0.25, W: 0.5, H: 0.5}, s.Icon,
				theme.Font{Name: theme.FontBody, Size: 24}, r.th.Color("black"))
			valueX = x + 0.6
		}

		r.textbox(sl, geometry.Rect{X: valueX, Y: y + 0.3, W: cardWidth - 0.3, H: 0.8},
			statValue(s), theme.Font{Name: theme.FontBody, Size: 36, Bold: true}, accent)
		r.textbox(sl, geometry.Rect{X: x + 0.15, Y: y + 1.1, W: cardWidth - 0.3, H: 0.4},
			s.Label, theme.Font{Name: theme.FontBody, Size: 12, Bold: true}, r.th.Color("black"))

		if s.Description != "" && cardHeight > 1.8 {
			r.textbox(sl, geometry.Rect{X: x + 0.15, Y: y + 1.5, W: cardWidth - 0.3, H: 0.5},
				s.Description, theme.Font{Name: theme.FontBody, Size: 9}, rgb(120, 120, 120))
		}
	}
}

func (r *render) statsInline(sl *ppt.Slide, stats []domain.Stat) {
	n := len(stats)
	statWidth := 10.0 / float64(n)
	const startY = 2.5
	const circleSize = 1.8

	for i, s := range stats {
		x := 0.4 + float64(i)*statWidth
		centerX := x + statWidth/2
		accent := r.statAccent(s, i)

		r.shape(sl, autoEllipse, geometry.Rect{X: centerX - circleSize/2, Y: startY, W: circleSize, H: circleSize}, accent)

		value := r.textbox(sl, geometry.Rect{X: centerX - 0.9, Y: startY + 0.5, W: 1.8, H: 0.8},
			statValue(s), theme.Font{Name: theme.FontBody, Size: 28, Bold: true}, r.th.Color("white"))
		alignCenter(value.GetActiveParagraph())

		label := r.textbox(sl, geometry.Rect{X: x, Y: startY + circleSize + 0.3, W: statWidth, H: 0.5},
			s.Label, theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, r.th.Color("black"))
		alignCenter(label.GetActiveParagraph())

		if s.Description != "" {
			desc := r.textbox(sl, geometry.Rect{X: x, Y: startY + circleSize + 0.7, W: statWidth, H: 0.5},
				s.Description, theme.Font{Name: theme.FontBody, Size: 10}, rgb(100, 100, 100))
			alignCenter(desc.GetActiveParagraph())
		}
	}
}

package deck

import (
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addSummarySlide lists closing points with check marks and an optional
// highlighted takeaway banner underneath.
func (r *render) addSummarySlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	success := r.th.Color("success")
	black := r.th.Color("black")
	for i, point := range sc.Points {
		y := 1.0 + float64(i)*0.85
		r.iconCircle(sl, "✓", 0.5, y+0.05, 0.4, success, r.th.Color("white"))
		text := r.textbox(sl, geometry.Rect{X: 1.1, Y: y, W: 9.0, H: 0.7}, point,
			theme.Font{Name: theme.FontBody, Size: 15}, black)
		text.SetTextAnchor(middleAnchor)
	}

	if sc.Highlight != "" {
		hy := 1.0 + float64(len(sc.Points))*0.85 + 0.3
		box := r.shape(sl, autoRoundRect, geometry.Rect{X: 0.4, Y: hy, W: 10.0, H: 0.8},
			rgb(255, 248, 220))
		setBorder(box, r.th.Color("highlight"), 2)
		r.textbox(sl, geometry.Rect{X: 0.6, Y: hy + 0.2, W: 9.6, H: 0.5}, "💡 "+sc.Highlight,
			theme.Font{Name: theme.FontBody, Size: 14, Bold: true}, black)
	}
	return nil
}

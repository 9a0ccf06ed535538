package deck

import (
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addTextSlide builds freely positioned text blocks, each optionally backed
// by a light rounded panel.
func (r *render) addTextSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	for _, block := range sc.TextBlocks {
		rect := geometry.Rect{X: 0.5, Y: 1.0, W: 9.0, H: 1.0}
		if block.X != 0 {
			rect.X = block.X
		}
		if block.Y != 0 {
			rect.Y = block.Y
		}
		if block.Width != 0 {
			rect.W = block.Width
		}
		if block.Height != 0 {
			rect.H = block.Height
		}
		size := block.FontSize
		if size == 0 {
			size = 14
		}

		if block.Background {
			r.shape(sl, autoRoundRect, rect, r.roleOr(block.BgColor, "light"))
		}
		color := r.th.Color("black")
		if block.Color != "" && r.th.HasColor(block.Color) {
			color = r.th.Color(block.Color)
		}
		r.textbox(sl, rect, block.Text,
			theme.Font{Name: theme.FontBody, Size: size, Bold: block.Bold}, color)
	}
	return nil
}

package deck

import (
	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addSectionSlide builds a section divider: a left accent bar, a numbered
// circle, and the section title beside it.
func (r *render) addSectionSlide(sc *domain.SlideConfig) error {
	sl, err := r.newSlide(r.contentLayout())
	if err != nil {
		return err
	}
	primary := r.th.Color("primary")

	r.accentBar(sl, 0, 0, 0.25, 7.5, primary)
	r.iconCircle(sl, sc.Number, 1.0, 2.5, 1.2, primary, r.th.Color("white"))

	r.textbox(sl, geometry.Rect{X: 2.5, Y: 2.6, W: 7.0, H: 1.0}, sc.Title,
		theme.Font{Name: theme.FontBody, Size: 36, Bold: true}, primary)

	if sc.Subtitle != "" {
		r.textbox(sl, geometry.Rect{X: 2.5, Y: 3.7, W: 7.0, H: 0.5}, sc.Subtitle,
			theme.Font{Name: theme.FontBody, Size: 16}, rgb(64, 64, 64))
	}

	if r.template {
		clearGhostPlaceholders(sl)
	}
	r.pageFooter(sl)
	return nil
}

package deck

import (
	"time"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addCoverSlide builds the title slide. Template decks get the layout's
// background art; blank decks paint a full-bleed primary panel so the white
// cover text stays legible.
func (r *render) addCoverSlide(cov *domain.CoverConfig) error {
	sl, err := r.newSlide(layoutCover)
	if err != nil {
		return err
	}

	white := r.th.Color("white")
	if !r.template {
		r.shape(sl, autoRect, geometry.Rect{X: 0, Y: 0, W: 10.83, H: 7.5}, r.th.Color("primary"))
	}

	r.textbox(sl, geometry.Rect{X: 0.8, Y: 2.2, W: 9.2, H: 1.4}, cov.Title,
		theme.Font{Name: theme.FontTitle, Size: 48, Bold: true}, white)

	date := cov.Date
	if date == "" {
		date = time.Now().Format("2006. 01. 02")
	}
	r.textbox(sl, geometry.Rect{X: 0.8, Y: 3.8, W: 9.2, H: 0.6}, date,
		theme.Font{Name: theme.FontBody, Size: 24}, white)

	author := r.textbox(sl, geometry.Rect{X: 1.76, Y: 6.55, W: 7.31, H: 0.48}, fixedAuthor,
		theme.Font{Name: theme.FontBody, Size: 24, Bold: true}, white)
	alignCenter(author.GetActiveParagraph())

	line, ok := reportTypeLines[cov.ReportType]
	if !ok {
		line = reportTypeLines["정보공유"]
	}
	rt := r.textbox(sl, geometry.Rect{X: 8.5, Y: 0.35, W: 1.8, H: 0.35}, line,
		theme.Font{Name: theme.FontBody, Size: 14}, white)
	rt.SetWordWrap(false)
	alignRight(rt.GetActiveParagraph())

	if r.template {
		clearGhostPlaceholders(sl)
	}
	return nil
}

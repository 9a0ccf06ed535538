package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// card carries the resolved placement and styling of one grid card.
type card struct {
	x, y, w, h float64
	accent     domain.Color
	icon       string
	title      string
	content    string
}

type cardFunc func(*render, *ppt.Slide, card)

var cardStyleFuncs = map[string]cardFunc{
	"classic":  (*render).cardClassic,
	"gradient": (*render).cardGradient,
	"modern":   (*render).cardModern,
	"solid":    (*render).cardSolid,
	"outline":  (*render).cardOutline,
	"minimal":  (*render).cardMinimal,
	"banner":   (*render).cardBanner,
	"split":    (*render).cardSplit,
	"accent":   (*render).cardAccent,
}

// addCardsSlide lays cards out in a grid of up to four columns and renders
// each in the active card style.
func (r *render) addCardsSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	n := len(sc.Cards)
	if n == 0 {
		return nil
	}

	columns := sc.Columns
	if columns == 0 {
		columns = 3
	}
	if columns > 4 {
		columns = 4
	}
	if columns > n {
		columns = n
	}
	rows := (n + columns - 1) / columns

	const (
		contentWidth  = 9.6
		contentHeight = 5.8
		startX        = 0.4
		startY        = 1.2
		gap           = 0.25
	)
	cardWidth := (contentWidth - float64(columns-1)*gap) / float64(columns)
	cardHeight := (contentHeight - float64(rows-1)*gap) / float64(rows)
	if cardHeight > 2.2 {
		cardHeight = 2.2
	}

	style := r.cardStyle
	if sc.CardStyle != "" {
		style = sc.CardStyle
	}
	draw, ok := cardStyleFuncs[style]
	if !ok {
		draw = (*render).cardGradient
	}

	for i, c := range sc.Cards {
		accent := r.cycleColor(i)
		if c.Color != "" && r.th.HasColor(c.Color) {
			accent = r.th.Color(c.Color)
		}
		draw(r, sl, card{
			x:       startX + float64(i%columns)*(cardWidth+gap),
			y:       startY + float64(i/columns)*(cardHeight+gap),
			w:       cardWidth,
			h:       cardHeight,
			accent:  accent,
			icon:    iconText(c.Icon, i),
			title:   c.Title,
			content: c.Content,
		})
	}
	return nil
}

// cardIcon draws the icon badge shared by the card styles.
func (r *render) cardIcon(sl *ppt.Slide, t ppt.AutoShapeType, x, y, size float64, fill domain.Color, text string, sizePt int, fg domain.Color) *ppt.AutoShape {
	rect := geometry.Rect{X: x, Y: y, W: size, H: size}
	badge := r.shape(sl, t, rect, fill)
	label := r.boxLabel(sl, rect, text, theme.Font{Name: theme.FontBody, Size: sizePt, Bold: true}, fg)
	label.SetWordWrap(false)
	return badge
}

// cardContent draws the body text block shared by the card styles.
func (r *render) cardContent(sl *ppt.Slide, rect geometry.Rect, text string, color domain.Color, spacing float64) {
	sh := r.textbox(sl, rect, text, theme.Font{Name: theme.FontBody, Size: 11}, color)
	sh.GetActiveParagraph().SetLineSpacing(lineSpacing(11, spacing))
}

// cardClassic: left color bar, centered circle icon, divider, body text.
func (r *render) cardClassic(sl *ppt.Slide, c card) {
	white := r.th.Color("white")
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.04, Y: c.y + 0.04, W: c.w, H: c.h}, rgb(210, 210, 210))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, white)
	setBorder(box, rgb(230, 230, 230), 1)
	r.accentBar(sl, c.x, c.y, 0.06, c.h, c.accent)

	iconY := c.y + 0.15
	r.cardIcon(sl, autoEllipse, c.x+(c.w-0.7)/2, iconY, 0.7, c.accent, c.icon, 18, white)

	titleY := iconY + 0.7 + 0.1
	r.boxLabel(sl, geometry.Rect{X: c.x + 0.15, Y: titleY, W: c.w - 0.3, H: 0.5},
		c.title, theme.Font{Name: theme.FontBody, Size: 16, Bold: true}, c.accent)

	dividerY := titleY + 0.5
	r.shape(sl, autoRect, geometry.Rect{X: c.x + 0.2, Y: dividerY, W: c.w - 0.4, H: 0.015}, rgb(230, 230, 230))

	contentY := dividerY + 0.1
	body := r.textbox(sl, geometry.Rect{X: c.x + 0.2, Y: contentY, W: c.w - 0.4, H: c.h - (contentY - c.y) - 0.15},
		c.content, theme.Font{Name: theme.FontBody, Size: 12}, rgb(80, 80, 80))
	body.GetActiveParagraph().SetLineSpacing(lineSpacing(12, 1.2))
}

// cardGradient: colored header band with an icon tile, tinted body panel.
func (r *render) cardGradient(sl *ppt.Slide, c card) {
	const headerHeight = 0.75
	white := r.th.Color("white")
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.04, Y: c.y + 0.04, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, white)
	setBorder(box, r.th.Color("card_border"), 1)
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: headerHeight}, c.accent)

	const iconSize = 0.45
	iconX := c.x + 0.12
	r.cardIcon(sl, autoRoundRect, iconX, c.y+(headerHeight-iconSize)/2, iconSize, white, c.icon, 14, c.accent)

	titleX := iconX + iconSize + 0.1
	head := r.textbox(sl, geometry.Rect{X: titleX, Y: c.y + 0.08, W: c.w - (titleX - c.x) - 0.1, H: headerHeight - 0.16},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, white)
	head.SetTextAnchor(middleAnchor)

	contentY := c.y + headerHeight
	contentH := c.h - headerHeight
	r.shape(sl, autoRect, geometry.Rect{X: c.x + 0.05, Y: contentY + 0.05, W: c.w - 0.1, H: contentH - 0.1},
		r.th.Color("content_box"))
	body := r.textbox(sl, geometry.Rect{X: c.x + 0.15, Y: contentY + 0.12, W: c.w - 0.3, H: contentH - 0.2},
		c.content, theme.Font{Name: theme.FontBody, Size: 11}, r.th.Color("text"))
	body.GetActiveParagraph().SetLineSpacing(lineSpacing(11, 1.4))
}

// cardModern: full-height accent strip on the left with a circle icon.
func (r *render) cardModern(sl *ppt.Slide, c card) {
	const iconArea = 0.9
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.04, Y: c.y + 0.04, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, rgb(200, 210, 225), 1)
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: iconArea, H: c.h}, c.accent)

	const iconSize = 0.55
	r.cardIcon(sl, autoEllipse, c.x+(iconArea-iconSize)/2, c.y+(c.h-iconSize)/2, iconSize,
		r.th.Color("white"), c.icon, 16, c.accent)

	contentX := c.x + iconArea + 0.12
	contentW := c.w - iconArea - 0.2
	r.textbox(sl, geometry.Rect{X: contentX, Y: c.y + 0.15, W: contentW, H: 0.45},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))
	r.shape(sl, autoRect, geometry.Rect{X: contentX, Y: c.y + 0.6, W: contentW - 0.1, H: 0.02}, r.th.Color("secondary"))
	r.cardContent(sl, geometry.Rect{X: contentX, Y: c.y + 0.7, W: contentW, H: c.h - 0.85},
		c.content, r.th.Color("text"), 1.3)
}

// cardSolid: full accent fill with a darker body panel.
func (r *render) cardSolid(sl *ppt.Slide, c card) {
	white := r.th.Color("white")
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.04, Y: c.y + 0.04, W: c.w, H: c.h}, rgb(150, 160, 175))
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, c.accent)

	const iconSize = 0.5
	iconY := c.y + 0.18
	r.cardIcon(sl, autoEllipse, c.x+(c.w-iconSize)/2, iconY, iconSize, white, c.icon, 14, c.accent)

	titleY := iconY + iconSize + 0.1
	r.boxLabel(sl, geometry.Rect{X: c.x + 0.1, Y: titleY, W: c.w - 0.2, H: 0.45},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, white)

	contentY := titleY + 0.5
	contentH := c.h - (contentY - c.y) - 0.12
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.08, Y: contentY, W: c.w - 0.16, H: contentH}, darken(c.accent, 25))
	body := r.textbox(sl, geometry.Rect{X: c.x + 0.15, Y: contentY + 0.08, W: c.w - 0.3, H: contentH - 0.12},
		c.content, theme.Font{Name: theme.FontBody, Size: 11}, white)
	body.GetActiveParagraph().SetLineSpacing(lineSpacing(11, 1.3))
}

// cardOutline: thick accent border with an outlined circle icon.
func (r *render) cardOutline(sl *ppt.Slide, c card) {
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.03, Y: c.y + 0.03, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, c.accent, 2.5)

	const iconSize = 0.5
	iconY := c.y + 0.15
	badge := r.cardIcon(sl, autoEllipse, c.x+(c.w-iconSize)/2, iconY, iconSize,
		r.th.Color("white"), c.icon, 14, c.accent)
	setBorder(badge, c.accent, 2)

	titleY := iconY + iconSize + 0.08
	r.boxLabel(sl, geometry.Rect{X: c.x + 0.12, Y: titleY, W: c.w - 0.24, H: 0.4},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))

	contentY := titleY + 0.45
	r.cardContent(sl, geometry.Rect{X: c.x + 0.15, Y: contentY, W: c.w - 0.3, H: c.h - (contentY - c.y) - 0.12},
		c.content, r.th.Color("text"), 1.3)
}

// cardMinimal: square card with a bottom accent line and a small icon tile.
func (r *render) cardMinimal(sl *ppt.Slide, c card) {
	r.shape(sl, autoRect, geometry.Rect{X: c.x + 0.02, Y: c.y + 0.02, W: c.w, H: c.h}, rgb(200, 210, 220))
	box := r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, rgb(200, 210, 225), 1)
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y + c.h - 0.06, W: c.w, H: 0.06}, c.accent)

	const iconSize = 0.4
	iconX := c.x + 0.12
	iconY := c.y + 0.12
	r.cardIcon(sl, autoRoundRect, iconX, iconY, iconSize, c.accent, c.icon, 12, r.th.Color("white"))

	head := r.textbox(sl, geometry.Rect{X: iconX + iconSize + 0.08, Y: iconY, W: c.w - iconSize - 0.35, H: iconSize},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))
	head.SetTextAnchor(middleAnchor)

	contentY := iconY + iconSize + 0.1
	r.cardContent(sl, geometry.Rect{X: c.x + 0.12, Y: contentY, W: c.w - 0.24, H: c.h - (contentY - c.y) - 0.15},
		c.content, r.th.Color("text"), 1.3)
}

// cardBanner: top banner with a circle icon straddling its bottom edge.
func (r *render) cardBanner(sl *ppt.Slide, c card) {
	const bannerHeight = 0.6
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.04, Y: c.y + 0.04, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, rgb(200, 210, 225), 1)
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: bannerHeight}, c.accent)

	const iconSize = 0.65
	iconY := c.y + bannerHeight - iconSize/2
	badge := r.cardIcon(sl, autoEllipse, c.x+(c.w-iconSize)/2, iconY, iconSize,
		r.th.Color("white"), c.icon, 16, c.accent)
	setBorder(badge, c.accent, 2)

	titleY := iconY + iconSize + 0.08
	r.boxLabel(sl, geometry.Rect{X: c.x + 0.1, Y: titleY, W: c.w - 0.2, H: 0.4},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))

	contentY := titleY + 0.45
	r.cardContent(sl, geometry.Rect{X: c.x + 0.12, Y: contentY, W: c.w - 0.24, H: c.h - (contentY - c.y) - 0.1},
		c.content, r.th.Color("text"), 1.3)
}

// cardSplit: colored top area over a tinted body, split at 38 percent.
func (r *render) cardSplit(sl *ppt.Slide, c card) {
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.03, Y: c.y + 0.03, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, rgb(200, 210, 225), 1)

	topHeight := c.h * 0.38
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: topHeight}, c.accent)

	const iconSize = 0.5
	r.cardIcon(sl, autoEllipse, c.x+(c.w-iconSize)/2, c.y+(topHeight-iconSize)/2, iconSize,
		r.th.Color("white"), c.icon, 14, c.accent)

	titleY := c.y + topHeight + 0.08
	r.boxLabel(sl, geometry.Rect{X: c.x + 0.1, Y: titleY, W: c.w - 0.2, H: 0.4},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))

	contentY := titleY + 0.45
	r.cardContent(sl, geometry.Rect{X: c.x + 0.12, Y: contentY, W: c.w - 0.24, H: c.h - (contentY - c.y) - 0.08},
		c.content, r.th.Color("text"), 1.3)
}

// cardAccent: thick left bar with the icon and title on one row.
func (r *render) cardAccent(sl *ppt.Slide, c card) {
	const barWidth = 0.1
	r.shape(sl, autoRoundRect, geometry.Rect{X: c.x + 0.03, Y: c.y + 0.03, W: c.w, H: c.h}, rgb(180, 190, 200))
	box := r.shape(sl, autoRoundRect, geometry.Rect{X: c.x, Y: c.y, W: c.w, H: c.h}, r.th.Color("content_box"))
	setBorder(box, rgb(200, 210, 225), 1)
	r.shape(sl, autoRect, geometry.Rect{X: c.x, Y: c.y, W: barWidth, H: c.h}, c.accent)

	const iconSize = 0.55
	iconX := c.x + barWidth + 0.1
	iconY := c.y + 0.12
	r.cardIcon(sl, autoEllipse, iconX, iconY, iconSize, c.accent, c.icon, 14, r.th.Color("white"))

	head := r.textbox(sl, geometry.Rect{X: iconX + iconSize + 0.08, Y: iconY, W: c.w - barWidth - iconSize - 0.25, H: iconSize},
		c.title, theme.Font{Name: theme.FontTitle, Size: 14, Bold: true}, r.th.Color("primary"))
	head.SetTextAnchor(middleAnchor)

	contentY := iconY + iconSize + 0.08
	r.cardContent(sl, geometry.Rect{X: c.x + barWidth + 0.12, Y: contentY, W: c.w - barWidth - 0.22, H: c.h - (contentY - c.y) - 0.1},
		c.content, r.th.Color("text"), 1.3)
}

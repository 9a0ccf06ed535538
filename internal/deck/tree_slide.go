package deck

import (
	"sort"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// addTreeSlide draws a monospace directory tree on the left and, when any
// node carries a description, a card per folder on the right. Explicitly
// configured descriptions come first, name-sorted for a stable card order,
// then descriptions found on the nodes themselves.
func (r *render) addTreeSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	const (
		treeX         = 0.5
		treeWidth     = 3.8
		descX         = 4.5
		descWidth     = 5.8
		contentY      = 1.2
		contentHeight = 5.5
	)

	panel := r.shape(sl, autoRoundRect, geometry.Rect{X: treeX, Y: contentY, W: treeWidth, H: contentHeight},
		rgb(245, 248, 250))
	setBorder(panel, r.th.Color("secondary"), 1)

	lines := geometry.TreeLines(sc.TreeStructure)
	text := sl.CreateRichTextShape()
	placeText(text, geometry.Rect{X: treeX + 0.2, Y: contentY + 0.15, W: treeWidth - 0.4, H: contentHeight - 0.3})
	text.SetWordWrap(false)
	mono := theme.Font{Name: "Consolas", Size: 11}
	dark := r.th.Color("dark")
	for i, line := range lines {
		p := text.GetActiveParagraph()
		if i > 0 {
			p = text.CreateParagraph()
		}
		p.SetLineSpacing(lineSpacing(11, 1.2))
		styleRun(p.CreateTextRun(line), mono, dark)
	}

	seed := make([]geometry.NodeDescription, 0, len(sc.Descriptions))
	names := make([]string, 0, len(sc.Descriptions))
	for name := range sc.Descriptions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		seed = append(seed, geometry.NodeDescription{Name: name, Text: sc.Descriptions[name]})
	}
	descs := geometry.ExtractDescriptions(sc.TreeStructure, seed)
	if len(descs) == 0 {
		return nil
	}

	r.textbox(sl, geometry.Rect{X: descX, Y: contentY, W: descWidth, H: 0.4}, "폴더 설명",
		theme.Font{Name: theme.FontBody, Size: 16, Bold: true}, r.th.Color("primary"))

	cardY := contentY + 0.5
	const cardHeight = 0.6
	for i, d := range descs {
		if i >= 8 || cardY+cardHeight > contentY+contentHeight {
			break
		}
		box := r.shape(sl, autoRoundRect, geometry.Rect{X: descX, Y: cardY, W: descWidth, H: cardHeight},
			r.th.Color("white"))
		setBorder(box, rgb(220, 220, 220), 1)
		r.accentBar(sl, descX, cardY, 0.06, cardHeight, r.th.Color("secondary"))

		name := r.textbox(sl, geometry.Rect{X: descX + 0.15, Y: cardY + 0.08, W: descWidth - 0.3, H: 0.25},
			"📁 "+d.Name+"/", theme.Font{Name: theme.FontBody, Size: 12, Bold: true}, r.th.Color("primary"))
		name.SetWordWrap(false)
		name.SetTextAnchor(middleAnchor)

		desc := r.textbox(sl, geometry.Rect{X: descX + 0.15, Y: cardY + 0.32, W: descWidth - 0.3, H: 0.25},
			d.Text, theme.Font{Name: theme.FontBody, Size: 11}, rgb(80, 80, 80))
		desc.SetTextAnchor(middleAnchor)

		cardY += cardHeight + 0.1
	}
	return nil
}

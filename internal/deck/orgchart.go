package deck

import (
	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/geometry"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

// orgAnchor is the stored connection point of one placed org box. For the
// top-down layout it is the top-center, for the left-right layout the
// left-middle, matching where child connectors attach.
type orgAnchor struct {
	x, y float64
	w, h float64
}

var orgLevelColors = []string{"primary", "secondary", "accent", "success"}

// addOrgChartSlide lays the organization tree out level by level, top-down
// by default or left-right when the style is vertical, and joins parents to
// children with straight connectors.
func (r *render) addOrgChartSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}
	if sc.OrgData.Name == "" && len(sc.OrgData.Children) == 0 {
		return nil
	}

	root := sc.OrgData
	levels := geometry.OrgLevels(&root)
	anchors := make(map[*domain.Node]orgAnchor, root.Count())

	if sc.Style == "vertical" {
		r.orgChartVertical(sl, levels, anchors)
	} else {
		r.orgChartHorizontal(sl, levels, anchors)
	}

	r.orgConnections(sl, &root, anchors, sc.Style == "vertical")
	return nil
}

func (r *render) orgChartHorizontal(sl *ppt.Slide, levels [][]*domain.Node, anchors map[*domain.Node]orgAnchor) {
	maxWidth := 0
	for _, level := range levels {
		if len(level) > maxWidth {
			maxWidth = len(level)
		}
	}

	boxWidth := 9.0/float64(maxWidth) - 0.2
	if boxWidth > 2.0 {
		boxWidth = 2.0
	}
	const (
		boxHeight = 0.7
		vGap      = 0.5
		hGap      = 0.3
		startY    = 1.3
	)

	for levelIdx, level := range levels {
		totalWidth := float64(len(level))*boxWidth + float64(len(level)-1)*hGap
		startX := (10.8 - totalWidth) / 2
		y := startY + float64(levelIdx)*(boxHeight+vGap)

		color := r.th.Color(orgLevelColors[levelIdx%len(orgLevelColors)])
		for nodeIdx, node := range level {
			x := startX + float64(nodeIdx)*(boxWidth+hGap)
			r.orgBox(sl, node, geometry.Rect{X: x, Y: y, W: boxWidth, H: boxHeight}, color)
			anchors[node] = orgAnchor{x: x + boxWidth/2, y: y, w: boxWidth, h: boxHeight}
		}
	}
}

func (r *render) orgChartVertical(sl *ppt.Slide, levels [][]*domain.Node, anchors map[*domain.Node]orgAnchor) {
	maxHeight := 0
	for _, level := range levels {
		if len(level) > maxHeight {
			maxHeight = len(level)
		}
	}

	boxHeight := 5.5/float64(maxHeight) - 0.2
	if boxHeight > 0.8 {
		boxHeight = 0.8
	}
	const (
		boxWidth = 2.0
		hGap     = 0.4
		vGap     = 0.2
		startX   = 0.5
	)

	for levelIdx, level := range levels {
		totalHeight := float64(len(level))*boxHeight + float64(len(level)-1)*vGap
		startY := 1.3 + (5.5-totalHeight)/2
		x := startX + float64(levelIdx)*(boxWidth+hGap)

		color := r.th.Color(orgLevelColors[levelIdx%len(orgLevelColors)])
		for nodeIdx, node := range level {
			y := startY + float64(nodeIdx)*(boxHeight+vGap)
			r.orgBox(sl, node, geometry.Rect{X: x, Y: y, W: boxWidth, H: boxHeight}, color)
			anchors[node] = orgAnchor{x: x, y: y + boxHeight/2, w: boxWidth, h: boxHeight}
		}
	}
}

func (r *render) orgBox(sl *ppt.Slide, node *domain.Node, rect geometry.Rect, color domain.Color) {
	r.shape(sl, autoRoundRect, rect, color)

	size := 11
	if node.Title != "" {
		size = 9
	}
	f := theme.Font{Name: theme.FontBody, Size: size, Bold: true}
	white := r.th.Color("white")
	label := r.boxLabel(sl, rect, node.Name, f, white)
	if node.Title != "" {
		p := label.CreateParagraph()
		alignCenter(p)
		styleRun(p.CreateTextRun(node.Title), f, white)
	}
}

func (r *render) orgConnections(sl *ppt.Slide, parent *domain.Node, anchors map[*domain.Node]orgAnchor, leftRight bool) {
	pa, ok := anchors[parent]
	if !ok {
		return
	}
	gray := rgb(150, 150, 150)
	for i := range parent.Children {
		child := &parent.Children[i]
		ca, ok := anchors[child]
		if !ok {
			continue
		}
		if leftRight {
			r.line(sl, pa.x+pa.w, pa.y, ca.x, ca.y, gray, 1.5)
		} else {
			r.line(sl, pa.x, pa.y+pa.h, ca.x, ca.y, gray, 1.5)
		}
		r.orgConnections(sl, child, anchors, leftRight)
	}
}

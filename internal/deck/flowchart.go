package deck

import (
	"fmt"

	"github.com/mgk2100/ppt-generator/internal/domain"
)

// addFlowchartSlide lays the steps out as a horizontal or vertical run of
// boxes, then renders them through the diagram builder so arrows and scaling
// behave identically.
func (r *render) addFlowchartSlide(sc *domain.SlideConfig) error {
	sl, err := r.contentSlide(sc.Title)
	if err != nil {
		return err
	}

	stepColors := []string{"primary", "secondary", "accent"}
	components := make([]domain.Component, 0, len(sc.Steps))
	connections := make([]domain.Connection, 0, len(sc.Steps))

	horizontal := sc.FlowType != "vertical"
	for i, step := range sc.Steps {
		id := fmt.Sprintf("step_%d", i)

		color := step.Color
		if color == "" {
			color = stepColors[i%len(stepColors)]
		}
		name := step.DisplayTitle()
		if name == "" {
			name = fmt.Sprintf("Step %d", i+1)
		}
		shape := step.Shape
		if shape == "" {
			shape = "rounded_rectangle"
		}
		fontSize := step.FontSize
		if fontSize == 0 {
			fontSize = 12
		}

		comp := domain.Component{
			ID:          id,
			Name:        name,
			Description: step.Description,
			Color:       domain.ColorRef{Role: color},
			Shape:       shape,
			FontSize:    fontSize,
		}
		if horizontal {
			comp.X = 0.3 + float64(i)*(1.7+0.4)
			comp.Y = 3.2
			comp.Width = 1.7
			comp.Height = 0.9
		} else {
			comp.X = 3.5
			comp.Y = 1.2 + float64(i)*(0.7+0.4)
			comp.Width = 3.5
			comp.Height = 0.7
		}
		components = append(components, comp)

		if i > 0 {
			connections = append(connections, domain.Connection{
				From: fmt.Sprintf("step_%d", i-1),
				To:   id,
			})
		}
	}

	r.drawDiagram(sl, components, connections, nil, sc.Palette)
	return nil
}

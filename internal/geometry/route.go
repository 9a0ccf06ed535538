package geometry

import "math"

// StraightThreshold is the maximum edge-midpoint misalignment, in inches,
// for which a connector is drawn as a single straight segment.
const StraightThreshold = 0.15

// Segment is one piece of a connector path. Arrow marks the segment that
// carries the arrowhead at its end point.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Arrow  bool
}

// Route computes the connector path from one placed box to another.
//
// The dominant center-to-center axis picks the exit and entry edges; when the
// perpendicular misalignment of the two edge midpoints is below
// StraightThreshold the path is a single arrow segment, otherwise a
// three-segment elbow with the arrowhead on the final segment.
func Route(from, to Rect) []Segment {
	dx := to.CenterX() - from.CenterX()
	dy := to.CenterY() - from.CenterY()

	if math.Abs(dx) > math.Abs(dy) {
		var startX, endX float64
		if dx > 0 {
			startX, endX = from.Right(), to.X
		} else {
			startX, endX = from.X, to.Right()
		}
		startY, endY := from.CenterY(), to.CenterY()

		if math.Abs(startY-endY) < StraightThreshold {
			return []Segment{{startX, startY, endX, endY, true}}
		}
		midX := (startX + endX) / 2
		return []Segment{
			{startX, startY, midX, startY, false},
			{midX, startY, midX, endY, false},
			{midX, endY, endX, endY, true},
		}
	}

	var startY, endY float64
	if dy > 0 {
		startY, endY = from.Bottom(), to.Y
	} else {
		startY, endY = from.Y, to.Bottom()
	}
	startX, endX := from.CenterX(), to.CenterX()

	if math.Abs(startX-endX) < StraightThreshold {
		return []Segment{{startX, startY, endX, endY, true}}
	}
	midY := (startY + endY) / 2
	return []Segment{
		{startX, startY, startX, midY, false},
		{startX, midY, endX, midY, false},
		{endX, midY, endX, endY, true},
	}
}

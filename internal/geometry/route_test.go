package geometry_test

import (
	"testing"

	"github.com/mgk2100/ppt-generator/internal/geometry"
)

func TestRoute_AlignedHorizontal_SingleSegment(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, W: 2, H: 1}
	to := geometry.Rect{X: 5, Y: 0, W: 2, H: 1}
	segs := geometry.Route(from, to)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 straight", len(segs))
	}
	s := segs[0]
	if !s.Arrow {
		t.Error("straight segment must carry the arrowhead")
	}
	if s.X1 != from.Right() || s.X2 != to.X {
		t.Errorf("segment spans (%v, %v), want edge to edge (%v, %v)", s.X1, s.X2, from.Right(), to.X)
	}
}

func TestRoute_MisalignedHorizontal_Elbow(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, W: 2, H: 1}
	to := geometry.Rect{X: 5, Y: 2, W: 2, H: 1}
	segs := geometry.Route(from, to)
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3 elbow", len(segs))
	}
	if segs[0].Arrow || segs[1].Arrow {
		t.Error("only the final segment may carry the arrowhead")
	}
	if !segs[2].Arrow {
		t.Error("final segment must carry the arrowhead")
	}
	// Segments must chain.
	for i := 1; i < len(segs); i++ {
		if segs[i].X1 != segs[i-1].X2 || segs[i].Y1 != segs[i-1].Y2 {
			t.Errorf("segment %d does not start where %d ends", i, i-1)
		}
	}
}

func TestRoute_VerticalDominant_UsesTopBottomEdges(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, W: 2, H: 1}
	to := geometry.Rect{X: 0, Y: 4, W: 2, H: 1}
	segs := geometry.Route(from, to)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 straight", len(segs))
	}
	s := segs[0]
	if s.Y1 != from.Bottom() || s.Y2 != to.Y {
		t.Errorf("segment spans (%v, %v), want bottom edge to top edge", s.Y1, s.Y2)
	}
}

func TestRoute_MisalignmentBelowThreshold_StillStraight(t *testing.T) {
	from := geometry.Rect{X: 0, Y: 0, W: 2, H: 1}
	to := geometry.Rect{X: 5, Y: 0.1, W: 2, H: 1}
	segs := geometry.Route(from, to)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1 for misalignment below %v", len(segs), geometry.StraightThreshold)
	}
}

func TestRoute_Leftward(t *testing.T) {
	from := geometry.Rect{X: 5, Y: 0, W: 2, H: 1}
	to := geometry.Rect{X: 0, Y: 0, W: 2, H: 1}
	segs := geometry.Route(from, to)
	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.X1 != from.X || s.X2 != to.Right() {
		t.Errorf("leftward segment spans (%v, %v), want left edge to right edge", s.X1, s.X2)
	}
}

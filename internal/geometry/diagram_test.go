package geometry_test

import (
	"math"
	"testing"

	"github.com/mgk2100/ppt-generator/internal/geometry"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestFitRects_SmallContentNotScaledUp(t *testing.T) {
	rects := []geometry.Rect{
		{X: 0, Y: 0, W: 2, H: 1},
		{X: 3, Y: 0, W: 2, H: 1},
	}
	fit := geometry.FitRects(rects, geometry.DefaultBounds)
	if fit.Scale != 1 {
		t.Fatalf("Scale = %v, want 1 for content that already fits", fit.Scale)
	}
}

func TestFitRects_OversizedContentScaledDown(t *testing.T) {
	rects := []geometry.Rect{
		{X: 0, Y: 0, W: 2, H: 1},
		{X: 18, Y: 10, W: 2, H: 2},
	}
	b := geometry.DefaultBounds
	fit := geometry.FitRects(rects, b)
	if fit.Scale >= 1 {
		t.Fatalf("Scale = %v, want < 1 for oversized content", fit.Scale)
	}

	// Every placed rect must land inside the bounds.
	for _, r := range rects {
		p := fit.Place(r)
		if p.X < b.MinX-1e-9 || p.Right() > b.MaxX+1e-9 ||
			p.Y < b.MinY-1e-9 || p.Bottom() > b.MaxY+1e-9 {
			t.Errorf("placed rect %+v escapes bounds %+v", p, b)
		}
	}
}

func TestFitRects_EmptyInput(t *testing.T) {
	fit := geometry.FitRects(nil, geometry.DefaultBounds)
	if fit.Scale != 1 || fit.OffsetX != 0 || fit.OffsetY != 0 {
		t.Fatalf("empty input fit = %+v, want identity", fit)
	}
}

func TestFitRects_CentersContent(t *testing.T) {
	rects := []geometry.Rect{{X: 0, Y: 0, W: 2, H: 1}}
	b := geometry.Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 7}
	fit := geometry.FitRects(rects, b)
	p := fit.Place(rects[0])
	if !almostEqual(p.CenterX(), 5) {
		t.Errorf("CenterX = %v, want 5", p.CenterX())
	}
	if !almostEqual(p.CenterY(), 3.5) {
		t.Errorf("CenterY = %v, want 3.5", p.CenterY())
	}
}

func TestPlace_MinimumBoxSize(t *testing.T) {
	fit := geometry.Fit{Scale: 0.1}
	p := fit.Place(geometry.Rect{X: 0, Y: 0, W: 2, H: 1})
	if p.W != geometry.MinBoxWidth {
		t.Errorf("W = %v, want clamped to %v", p.W, geometry.MinBoxWidth)
	}
	if p.H != geometry.MinBoxHeight {
		t.Errorf("H = %v, want clamped to %v", p.H, geometry.MinBoxHeight)
	}
}

func TestFontSize_ScalesWithFloor(t *testing.T) {
	fit := geometry.Fit{Scale: 0.5}
	if got := fit.FontSize(11, 10); got != 10 {
		t.Errorf("FontSize(11, 10) at scale 0.5 = %d, want floor 10", got)
	}
	if got := fit.FontSize(20, 10); got != 10 {
		t.Errorf("FontSize(20, 10) at scale 0.5 = %d, want 10", got)
	}
	fit = geometry.Fit{Scale: 1}
	if got := fit.FontSize(11, 10); got != 11 {
		t.Errorf("FontSize(11, 10) at scale 1 = %d, want 11", got)
	}
}

func TestPlacePoint_AppliesScaleAndOffset(t *testing.T) {
	fit := geometry.Fit{Scale: 0.5, OffsetX: 1, OffsetY: 2}
	x, y := fit.PlacePoint(4, 6)
	if !almostEqual(x, 3) || !almostEqual(y, 5) {
		t.Errorf("PlacePoint(4, 6) = (%v, %v), want (3, 5)", x, y)
	}
}

package geometry

// Rect is an axis-aligned rectangle in inches.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// CenterX returns the x coordinate of the center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the y coordinate of the center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Bounds is the drawable diagram area of a slide, title row excluded.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// DefaultBounds is the drawable area on a 10 x 7.5 inch slide.
var DefaultBounds = Bounds{MinX: 0.3, MaxX: 10.0, MinY: 1.0, MaxY: 7.0}

// Minimum rendered box size, applied after scaling so very small nominal
// geometry never produces degenerate shapes.
const (
	MinBoxWidth  = 0.8
	MinBoxHeight = 0.4
)

// Fit describes how nominal diagram coordinates map onto the slide:
// placed = nominal*Scale + Offset.
type Fit struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// FitRects computes the uniform scale and centering offset that place the
// bounding box of rects inside b. Content is never scaled up: Scale <= 1.
func FitRects(rects []Rect, b Bounds) Fit {
	if len(rects) == 0 {
		return Fit{Scale: 1}
	}

	minX, maxX := rects[0].X, rects[0].Right()
	minY, maxY := rects[0].Y, rects[0].Bottom()
	for _, r := range rects[1:] {
		if r.X < minX {
			minX = r.X
		}
		if r.Right() > maxX {
			maxX = r.Right()
		}
		if r.Y < minY {
			minY = r.Y
		}
		if r.Bottom() > maxY {
			maxY = r.Bottom()
		}
	}

	contentW := maxX - minX
	contentH := maxY - minY
	availW := b.MaxX - b.MinX
	availH := b.MaxY - b.MinY

	scaleX, scaleY := 1.0, 1.0
	if contentW > 0 {
		scaleX = min1(availW / contentW)
	}
	if contentH > 0 {
		scaleY = min1(availH / contentH)
	}
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}

	return Fit{
		Scale:   scale,
		OffsetX: b.MinX - minX*scale + (availW-contentW*scale)/2,
		OffsetY: b.MinY - minY*scale + (availH-contentH*scale)/2,
	}
}

// Place maps a nominal rect through the fit and clamps to the minimum box
// size.
func (f Fit) Place(r Rect) Rect {
	out := Rect{
		X: r.X*f.Scale + f.OffsetX,
		Y: r.Y*f.Scale + f.OffsetY,
		W: r.W * f.Scale,
		H: r.H * f.Scale,
	}
	if out.W < MinBoxWidth {
		out.W = MinBoxWidth
	}
	if out.H < MinBoxHeight {
		out.H = MinBoxHeight
	}
	return out
}

// PlacePoint maps a nominal point through the fit.
func (f Fit) PlacePoint(x, y float64) (float64, float64) {
	return x*f.Scale + f.OffsetX, y*f.Scale + f.OffsetY
}

// FontSize scales a point size with the fit, truncating, with a legibility
// floor.
func (f Fit) FontSize(base, floor int) int {
	size := int(float64(base) * f.Scale)
	if size < floor {
		size = floor
	}
	return size
}

func min1(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

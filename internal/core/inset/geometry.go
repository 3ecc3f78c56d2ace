package inset

// Rect is an axis-aligned rectangle in a top-left-origin coordinate space
// (Y grows downward). Values are float64 so in-flight animation states can
// hold fractional positions.
type Rect struct {
	X, Y float64
	W, H float64
}

// MaxY returns the bottom edge of the rectangle.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// MaxX returns the right edge of the rectangle.
func (r Rect) MaxX() float64 { return r.X + r.W }

// ContainsPoint reports whether the point lies inside the rectangle.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X < r.MaxX() && p.Y >= r.Y && p.Y < r.MaxY()
}

// InsideVertically reports whether r lies fully between top and bottom.
func (r Rect) InsideVertically(top, bottom float64) bool {
	return r.Y >= top && r.MaxY() <= bottom
}

// Point is an x/y coordinate pair.
type Point struct {
	X, Y float64
}

// Insets is edge padding applied to a scroll container. Only Bottom is
// touched by the coordinator; the other edges pass through untouched.
type Insets struct {
	Top, Right, Bottom, Left float64
}

package rowan

// Point is a 2D integer vector used for positions and sizes throughout
// the API. The coordinate system has its origin at the top-left, with Y
// increasing downward (raster scan order).
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Splat returns a Point with both components set to v.
func Splat(v int) Point {
	return Point{X: v, Y: v}
}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div returns p divided by k (truncating integer division).
func (p Point) Div(k int) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Area returns X*Y. Negative if either component is negative.
func (p Point) Area() int {
	return p.X * p.Y
}

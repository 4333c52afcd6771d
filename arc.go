package gauge

import (
	"math"

	"github.com/gogpu/gg"
)

// Arc is a circular arc in screen space.
// Start and Sweep are in degrees; a positive Sweep turns clockwise on
// screen. The zero Sweep describes a degenerate arc of length zero.
type Arc struct {
	Center gg.Point
	Radius float64
	Start  float64
	Sweep  float64
}

// End returns the end angle of the arc in degrees (not reduced).
func (a Arc) End() float64 {
	return a.Start + a.Sweep
}

// Length returns the arc length in pixels.
func (a Arc) Length() float64 {
	return math.Abs(Radians(a.Sweep)) * a.Radius
}

// direction is +1 for clockwise (and zero) sweeps and -1 otherwise.
func (a Arc) direction() float64 {
	if a.Sweep < 0 {
		return -1
	}
	return 1
}

// angleAt returns the angle in radians reached after travelling d pixels
// along the arc. Distances outside [0, Length] extrapolate along the circle.
func (a Arc) angleAt(d float64) float64 {
	theta := Radians(a.Start)
	if a.Radius == 0 {
		return theta
	}
	return theta + a.direction()*d/a.Radius
}

// PointAt returns the position at arc length d from the start together
// with the unit tangent in the direction of travel.
func (a Arc) PointAt(d float64) (pos, tangent gg.Point) {
	theta := a.angleAt(d)
	sin, cos := math.Sincos(theta)
	pos = gg.Pt(a.Center.X+a.Radius*cos, a.Center.Y+a.Radius*sin)
	dir := a.direction()
	tangent = gg.Pt(-sin*dir, cos*dir)
	return pos, tangent
}

// Normal returns the unit normal at arc length d: the tangent turned 90°
// clockwise on screen, i.e. to the right of the direction of travel.
// Text laid out along the arc grows downward along this normal.
func (a Arc) Normal(d float64) gg.Point {
	_, t := a.PointAt(d)
	return gg.Pt(-t.Y, t.X)
}

// Warp maps a point given in path-local text coordinates onto the arc.
// x is the distance along the arc and y the offset along the normal.
func (a Arc) Warp(x, y float64) gg.Point {
	pos, t := a.PointAt(x)
	return gg.Pt(pos.X-t.Y*y, pos.Y+t.X*y)
}

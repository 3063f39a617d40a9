package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Tolerance used for the geometric equality of points and triangles. Two
// points are considered equal when their squared distance is below
// EqualityTolerance.
const EqualityTolerance = 1e-10

type Point struct {
	X float64
	Y float64
}

func (p Point) Vec() mgl64.Vec2 {
	return mgl64.Vec2{p.X, p.Y}
}

func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

func (p Point) SquareNorm() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) SquareDistance(other Point) float64 {
	return p.Sub(other).SquareNorm()
}

func (p Point) Distance(other Point) float64 {
	return math.Sqrt(p.SquareDistance(other))
}

// Points with equal coordinates within EqualityTolerance.
func (p Point) Equal(other Point) bool {
	return p.SquareDistance(other) < EqualityTolerance
}

// Less orders points from the top of the plane down: a larger Y comes first,
// and among equal Y values the smaller X comes first. This is the processing
// order the rest of the toolkit relies on for tie-breaking, so it is exact
// rather than tolerance based (a tolerance would break transitivity).
func (p Point) Less(other Point) bool {
	if p.Y != other.Y {
		return p.Y > other.Y
	}
	return p.X < other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Cross is the z component of the cross product of a and b, treated as vectors
// in the z=0 plane.
func Cross(a, b Point) float64 {
	return a.Vec().Vec3(0).Cross(b.Vec().Vec3(0)).Z()
}

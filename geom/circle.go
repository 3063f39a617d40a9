package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Below this magnitude of the orientation determinant, three points are too
// close to collinear to have a finite circumcircle.
const CollinearityTolerance = 1e-5

// Relative margin by which a point must be inside a circle's squared radius to
// count as strictly inside. Cocircular points (like the corners of a square)
// are otherwise inside or outside each other's circles depending on rounding.
const InCircleTolerance = 1e-12

var ErrCollinearPoints = errors.New("cannot construct circle from collinear points")

type Circle struct {
	Center Point
	Radius float64
}

// Construct the unique circle passing through three points, using the
// determinant form of the circle equation.
func NewCircleThrough(p1, p2, p3 Point) (Circle, error) {
	n1, n2, n3 := p1.SquareNorm(), p2.SquareNorm(), p3.SquareNorm()

	// mgl64 matrices are column major, but every determinant here is taken of
	// the full matrix, and det(M) == det(Mᵀ), so rows can be written as columns.
	a := mgl64.Mat3{
		p1.X, p1.Y, 1,
		p2.X, p2.Y, 1,
		p3.X, p3.Y, 1,
	}.Det()
	if math.Abs(a) < CollinearityTolerance {
		return Circle{}, errors.Wrapf(ErrCollinearPoints, "%v, %v, %v", p1, p2, p3)
	}

	sx := 0.5 * mgl64.Mat3{
		n1, p1.Y, 1,
		n2, p2.Y, 1,
		n3, p3.Y, 1,
	}.Det()
	sy := 0.5 * mgl64.Mat3{
		p1.X, n1, 1,
		p2.X, n2, 1,
		p3.X, n3, 1,
	}.Det()
	b := mgl64.Mat3{
		p1.X, p1.Y, n1,
		p2.X, p2.Y, n2,
		p3.X, p3.Y, n3,
	}.Det()

	center := Point{X: sx / a, Y: sy / a}
	return Circle{
		Center: center,
		Radius: math.Sqrt(b/a + center.SquareNorm()),
	}, nil
}

// Strict containment. Points on the circle, within InCircleTolerance, are not
// inside.
func (c Circle) IsInside(p Point) bool {
	return c.Center.SquareDistance(p) < c.Radius*c.Radius*(1-InCircleTolerance)
}

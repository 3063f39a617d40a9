package geom

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Triangles are unordered as geometric objects, but expose their corners
// through three slots.
type Triangle struct {
	A, B, C Point
}

// Construct a triangle, failing if its corners are too close to collinear to
// bound any area.
func NewTriangle(a, b, c Point) (Triangle, error) {
	t := Triangle{A: a, B: b, C: c}
	if math.Abs(2*t.SignedArea()) < CollinearityTolerance {
		return Triangle{}, errors.Wrapf(ErrCollinearPoints, "%v, %v, %v", a, b, c)
	}
	return t, nil
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// Corners in Point.Less order. Two triangles with the same corners give the
// same result regardless of slot order.
func (t Triangle) SortedPoints() [3]Point {
	points := t.Points()
	sort.Slice(points[:], func(i, j int) bool {
		return points[i].Less(points[j])
	})
	return points
}

// Positive for counterclockwise triangles, negative for clockwise ones.
func (t Triangle) SignedArea() float64 {
	return Cross(t.B.Sub(t.A), t.C.Sub(t.A)) / 2
}

// Boundary inclusive containment test. The point is contained unless the three
// edge orientations disagree in sign; a zero orientation (the point is on the
// line through that edge) agrees with either sign.
func (t Triangle) Contains(p Point) bool {
	a := t.A.Sub(p)
	b := t.B.Sub(p)
	c := t.C.Sub(p)

	ab := Cross(a, b)
	bc := Cross(b, c)
	ca := Cross(c, a)

	hasNegative := ab < 0 || bc < 0 || ca < 0
	hasPositive := ab > 0 || bc > 0 || ca > 0
	return !(hasNegative && hasPositive)
}

func (t Triangle) Circumcircle() (Circle, error) {
	return NewCircleThrough(t.A, t.B, t.C)
}

// Geometric equality, independent of corner order.
func (t Triangle) Equal(other Triangle) bool {
	ours := t.SortedPoints()
	theirs := other.SortedPoints()
	for i := range ours {
		if !ours[i].Equal(theirs[i]) {
			return false
		}
	}
	return true
}

func (t Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}

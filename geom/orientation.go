package geom

import "math"

// Below this magnitude, the cross product of a unit direction and an offset is
// treated as zero, meaning the point lies on the line.
const OrientationTolerance = 1e-8

type Orientation int

const (
	Left Orientation = iota - 1
	On
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case On:
		return "on"
	case Right:
		return "right"
	}
	return "invalid"
}

// Which side of the directed line through start and end the point lies on. The
// test does not care about the bounds of the segment, only the line through
// it.
func OrientationOf(point, start, end Point) Orientation {
	direction := end.Vec().Sub(start.Vec())
	if direction.Len() == 0 {
		return On
	}
	direction = direction.Normalize()
	offset := point.Sub(start)
	determinant := Cross(Point{direction.X(), direction.Y()}, offset)

	if math.Abs(determinant) < OrientationTolerance {
		return On
	}
	if determinant > 0 {
		return Left
	}
	return Right
}

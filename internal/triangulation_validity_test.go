package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/osuushi/delaunay/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation of the input points is valid. The rules
// are:
// 1. Every input point is a corner of some triangle.
// 2. No triangle has zero area.
// 3. The sum of the areas of all triangles is equal to the area of the convex
// hull of the input.
// 4. No input point is strictly inside the circumcircle of any triangle.
func AssertValidTriangulation(t *testing.T, input []geom.Point, faces []Face) {
	t.Helper()
	corners := make(map[int]struct{})
	var triangleArea float64
	for _, face := range faces {
		tri, err := geom.NewTriangle(input[face[0]], input[face[1]], input[face[2]])
		require.NoError(t, err, "zero area face %v", face)
		triangleArea += math.Abs(tri.SignedArea())

		circle, err := tri.Circumcircle()
		require.NoError(t, err)
		for i, p := range input {
			if i == face[0] || i == face[1] || i == face[2] {
				continue
			}
			assert.False(t, circle.IsInside(p), "vertex %d is inside the circumcircle of face %v", i, face)
		}

		for _, corner := range face {
			corners[corner] = struct{}{}
		}
	}

	for i := range input {
		_, ok := corners[i]
		assert.True(t, ok, "vertex %d is not a corner of any triangle", i)
	}

	hull := convexHull(input)
	hullArea := polygonArea(hull)
	require.InDelta(t, hullArea, triangleArea, hullArea*1e-9, "sum of the areas of all triangles is equal to the area of the hull")
}

// Convex hull by Andrew's monotone chain, counterclockwise.
func convexHull(points []geom.Point) []geom.Point {
	sorted := append([]geom.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	turnsLeft := func(chain []geom.Point, p geom.Point) bool {
		a, b := chain[len(chain)-2], chain[len(chain)-1]
		return geom.Cross(b.Sub(a), p.Sub(a)) > 0
	}

	var lower, upper []geom.Point
	for _, p := range sorted {
		for len(lower) >= 2 && !turnsLeft(lower, p) {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && !turnsLeft(upper, p) {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func polygonArea(points []geom.Point) float64 {
	var area float64
	for i, p := range points {
		area += geom.Cross(p, points[(i+1)%len(points)])
	}
	return math.Abs(area) / 2
}

// Sample a grid over the bounding box of the input, and check that points are
// covered by the triangles exactly when they are inside the hull.
func validateCoverageBySampling(t *testing.T, input []geom.Point, faces []Face) {
	t.Helper()
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range input {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	step := math.Max(maxX-minX, maxY-minY) / 50
	hull := convexHull(input)

	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			p := geom.Point{X: x, Y: y}
			covered := false
			for _, face := range faces {
				tri := geom.Triangle{A: input[face[0]], B: input[face[1]], C: input[face[2]]}
				if tri.Contains(p) {
					covered = true
					break
				}
			}
			if hullContains(hull, p) {
				assert.True(t, covered, "point %v should be covered", p)
			} else {
				assert.False(t, covered, "point %v should not be covered", p)
			}
		}
	}
}

func hullContains(hull []geom.Point, p geom.Point) bool {
	for i, a := range hull {
		b := hull[(i+1)%len(hull)]
		if geom.Cross(b.Sub(a), p.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"

	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/meshio"
)

// Fixtures are SVG point sets, available by name in the fixtures/ directory,
// sans extension. Circle centers and polygon/polyline vertices are the points.
// If anything goes wrong, it panics.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{"scatter", "star", "mixed"}

func LoadFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	points, err := meshio.ReadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc code specified fixtures

// Uniformly scattered points in a box, from a fixed seed.
func RandomPoints(seed int64, n int, width, height float64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Point{X: r.Float64() * width, Y: r.Float64() * height}
	}
	return points
}

// A square grid with every point nudged off the grid, so that no four points
// are cocircular.
func JitteredGrid(seed int64, size int, spacing float64) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]geom.Point, 0, size*size)
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			points = append(points, geom.Point{
				X: float64(i)*spacing + (r.Float64()-0.5)*spacing*0.4,
				Y: float64(j)*spacing + (r.Float64()-0.5)*spacing*0.4,
			})
		}
	}
	return points
}

// Points on a logarithmic spiral, which makes long skinny triangles and lots of
// flips.
func Spiral(n int) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		angle := float64(i) * 0.7
		radius := math.Exp(angle * 0.08)
		points[i] = geom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

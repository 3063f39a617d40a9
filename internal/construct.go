package internal

import (
	"math"

	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Inscribed radius of the bounding "super triangle", relative to the largest
// input coordinate magnitude (or 1, whichever is bigger). Its corners are the
// "points at infinity" every input point is initially inside of.
//
// This is crude. The corners interact with the tolerances of the geometric
// predicates, so input already near this scale can produce spurious near
// degenerate triangles.
const superTriangleScale = 1e6

// Corners of an equilateral triangle with inscribed radius 1, rotated so that
// no corner is on an axis or a diagonal. Otherwise, lines from ordinary input
// points (like the origin) to a corner would run straight through other
// ordinary input points, and inserting those would split a triangle on its
// edge.
var superTriangleCorners = func() [3]geom.Point {
	var corners [3]geom.Point
	for i := range corners {
		angle := (100 + 120*float64(i)) * math.Pi / 180
		corners[i] = geom.Point{X: 2 * math.Cos(angle), Y: 2 * math.Sin(angle)}
	}
	return corners
}()

// Build the Delaunay triangulation of the vertices, replacing any edges in the
// mesh. Points are inserted in their input order.
//
// Returns false if there are fewer than three vertices (nothing is modified),
// or if construction failed. On failure the vertex list is restored, the mesh
// is left with no edges, and Err reports the cause. The mesh is never left
// half built.
func (t *Triangulator) PerformTriangulation() (ok bool) {
	inputCount := len(t.vertices)
	if inputCount < 3 {
		t.err = errors.Wrapf(ErrTooFewPoints, "got %d", inputCount)
		return false
	}
	t.err = nil

	defer func() {
		t.hierarchy = nil
		if r := recover(); r != nil {
			t.rollback(inputCount)
			// Anything other than a TriangulateError is a bug, and panics again
			// after the rollback.
			t.err = HandleTriangulatePanicRecover(r)
			t.logger.Warn("triangulation failed",
				zap.Int("vertices", inputCount),
				zap.Error(t.err),
			)
			ok = false
		}
	}()

	t.seed(inputCount)
	for i := 0; i < inputCount; i++ {
		t.insertVertex(i)
	}
	hierarchySize := t.hierarchy.Len()
	t.strip(inputCount)

	t.logger.Info("triangulation complete",
		zap.Int("vertices", inputCount),
		zap.Int("edges", t.edges.Len()),
		zap.Int("hierarchy", hierarchySize),
	)
	return true
}

// Append the super triangle, wire its edges, and root a new hierarchy at it.
func (t *Triangulator) seed(inputCount int) {
	t.inputCount = inputCount
	t.edges.Clear()

	scale := superTriangleScale * math.Max(1, maxCoordinateMagnitude(t.vertices))
	for _, corner := range superTriangleCorners {
		t.vertices = append(t.vertices, geom.Point{X: scale * corner.X, Y: scale * corner.Y})
	}
	root := Face{inputCount, inputCount + 1, inputCount + 2}
	t.addEdge(root[0], root[1])
	t.addEdge(root[1], root[2])
	t.addEdge(root[2], root[0])
	t.hierarchy = NewSearchHierarchy(t.triangle(root), root)

	t.logger.Debug("seeded super triangle",
		zap.Int("vertices", inputCount),
		zap.Float64("scale", scale),
	)
}

// Split the triangle containing vertex i into three, then legalize the edges
// of the split triangle.
func (t *Triangulator) insertVertex(i int) {
	p := t.vertices[i]
	handle, err := t.hierarchy.ContainingLeaf(p)
	if err != nil {
		throw(errors.Wrapf(err, "inserting vertex %d", i))
	}
	located := t.hierarchy.Triangle(handle)
	corners := t.hierarchy.Face(handle)

	candidates := make([]Edge, 0, 3)
	for k := range corners {
		a, b := corners[k], corners[(k+1)%3]
		t.addEdge(i, a)
		t.addToHierarchy(Face{i, a, b}, located)
		candidates = append(candidates, Edge{a, b})
	}

	flips := t.legalizeEdges(candidates)
	t.logger.Debug("inserted vertex",
		zap.Int("index", i),
		zap.Stringer("point", p),
		zap.Int("flips", flips),
	)
	if t.debugDrawScale > 0 {
		t.dbgDraw(t.debugDrawScale)
	}
}

// Remove the super triangle's vertices and every edge touching them.
func (t *Triangulator) strip(inputCount int) {
	edgeCount := t.edges.Len()
	t.vertices = t.vertices[:inputCount]
	t.edges.RemoveIncident(func(vertex int) bool {
		return vertex >= inputCount
	})
	t.logger.Debug("stripped super triangle", zap.Int("edges", edgeCount-t.edges.Len()))
}

func (t *Triangulator) rollback(inputCount int) {
	if len(t.vertices) > inputCount {
		t.vertices = t.vertices[:inputCount]
	}
	t.edges.Clear()
}

func maxCoordinateMagnitude(points []geom.Point) float64 {
	var magnitude float64
	for _, p := range points {
		magnitude = math.Max(magnitude, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return magnitude
}

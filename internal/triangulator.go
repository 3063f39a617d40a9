package internal

import (
	"math"

	"github.com/osuushi/delaunay/geom"
	"go.uber.org/zap"
)

// Triangulator owns a vertex list and an undirected edge mesh over it, and
// builds a Delaunay triangulation of the vertices by incremental insertion
// and edge flips.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	// Vertex identity is the index, not the value. Duplicate points at
	// different indices are distinct vertices.
	vertices []geom.Point
	edges    *EdgeMesh

	// Only set while PerformTriangulation runs. It is a member only so that it
	// doesn't need to be threaded through every flip.
	hierarchy *SearchHierarchy
	// Number of real vertices while a construction is in progress.
	inputCount int

	logger         *zap.Logger
	strict         bool
	debugDrawScale float64
	err            error
}

type Option func(*Triangulator)

func WithLogger(logger *zap.Logger) Option {
	return func(t *Triangulator) {
		t.logger = logger
	}
}

// Fail with ErrDegenerateTriangle when a vertex collinear with an edge is
// found while looking for the edge's opposing vertices, rather than ignoring
// it.
func WithStrictOrientation() Option {
	return func(t *Triangulator) {
		t.strict = true
	}
}

// Draw the mesh to the terminal after every insertion (iTerm only). For
// debugging.
func WithDebugDraw(scale float64) Option {
	return func(t *Triangulator) {
		t.debugDrawScale = scale
	}
}

func NewTriangulator(points []geom.Point, options ...Option) *Triangulator {
	t := &Triangulator{
		vertices: append([]geom.Point(nil), points...),
		edges:    NewEdgeMesh(),
		logger:   zap.NewNop(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// A copy of the vertex list.
func (t *Triangulator) Vertices() []geom.Point {
	return append([]geom.Point(nil), t.vertices...)
}

func (t *Triangulator) Vertex(i int) geom.Point {
	return t.vertices[i]
}

func (t *Triangulator) VertexCount() int {
	return len(t.vertices)
}

// Append a vertex and return its index.
func (t *Triangulator) AddVertex(p geom.Point) int {
	t.vertices = append(t.vertices, p)
	return len(t.vertices) - 1
}

// Every undirected edge, normalized and sorted.
func (t *Triangulator) Edges() []Edge {
	return t.edges.Edges()
}

func (t *Triangulator) EdgeCount() int {
	return t.edges.Len()
}

// A copy of the vertices adjacent to u.
func (t *Triangulator) Neighbors(u int) []int {
	return append([]int(nil), t.edges.Neighbors(u)...)
}

func (t *Triangulator) HasEdge(u, v int) bool {
	return t.edges.Has(u, v)
}

// The reason the last PerformTriangulation call returned false, if any.
func (t *Triangulator) Err() error {
	return t.err
}

// Add the undirected edge between u and v. Adding an existing edge does
// nothing. If legalize is set, the whole mesh is legalized afterward.
func (t *Triangulator) AddEdge(u, v int, legalize bool) (err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	t.addEdge(u, v)
	if legalize {
		t.legalizeEdges(nil)
	}
	return nil
}

func (t *Triangulator) addEdge(u, v int) {
	if u == v {
		fatalf(ErrDegenerateEdge, "edge (%d, %d)", u, v)
	}
	t.checkVertex(u)
	t.checkVertex(v)
	t.edges.Add(u, v)
}

func (t *Triangulator) checkVertex(i int) {
	if i < 0 || i >= len(t.vertices) {
		fatalf(ErrVertexIndexOutOfRange, "index %d, vertex count %d", i, len(t.vertices))
	}
}

func (t *Triangulator) triangle(face Face) geom.Triangle {
	return geom.Triangle{
		A: t.vertices[face[0]],
		B: t.vertices[face[1]],
		C: t.vertices[face[2]],
	}
}

// Find the vertices that form a triangle with the edge on its left and right
// side, looking from U toward V. An exterior edge only has one side, and the
// other is NoVertex. Fails with ErrNoOpposingVertex if neither side has one.
func (t *Triangulator) OpposingVertices(e Edge, strict bool) (left, right int, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			left, right, err = NoVertex, NoVertex, recoveredErr
		}
	}()
	left, right = t.opposingVertices(e, strict)
	return left, right, nil
}

func (t *Triangulator) opposingVertices(e Edge, strict bool) (left, right int) {
	left, right = t.findOpposingVertices(e, strict)
	if left == NoVertex && right == NoVertex {
		fatalf(ErrNoOpposingVertex, "edge %v", e)
	}
	return left, right
}

// Like opposingVertices, but an edge with no opposing vertices at all is not
// an error.
//
// A candidate is any w with arcs (V, w) and (w, U). If the mesh is not a clean
// triangulation, several candidates can be on the same side, e.g. when a
// vertex connected to both ends lies behind the actual adjacent triangle. The
// adjacent triangle's vertex is the one making the smallest angle with the
// edge at U, since any other candidate's triangle would contain it.
func (t *Triangulator) findOpposingVertices(e Edge, strict bool) (left, right int) {
	t.checkVertex(e.U)
	t.checkVertex(e.V)
	u := t.vertices[e.U]
	v := t.vertices[e.V]
	direction := v.Sub(u)

	left, right = NoVertex, NoVertex
	leftAngle, rightAngle := math.Inf(1), math.Inf(1)
	for _, w := range t.edges.Neighbors(e.V) {
		if w == e.U || !t.edges.Has(w, e.U) {
			continue
		}
		p := t.vertices[w]
		orientation := geom.OrientationOf(p, u, v)
		if orientation == geom.On {
			if strict {
				fatalf(ErrDegenerateTriangle, "vertex %d is collinear with edge %v", w, e)
			}
			continue
		}

		offset := p.Sub(u)
		angle := math.Atan2(math.Abs(geom.Cross(direction, offset)), direction.Vec().Dot(offset.Vec()))
		if orientation == geom.Left {
			if closerCandidate(angle, w, leftAngle, left) {
				left, leftAngle = w, angle
			}
		} else {
			if closerCandidate(angle, w, rightAngle, right) {
				right, rightAngle = w, angle
			}
		}
	}
	return left, right
}

// Equal angles are broken by the lower index so results don't depend on
// adjacency order.
func closerCandidate(angle float64, vertex int, bestAngle float64, best int) bool {
	if angle != bestAngle {
		return angle < bestAngle
	}
	return best == NoVertex || vertex < best
}

// Replace the edge shared by two triangles with the edge between their
// opposing vertices, and return the new edge. Fails with ErrEdgeNotFound if
// the edge is not in the mesh, and with ErrExteriorEdgeFlip if it only borders
// one triangle.
func (t *Triangulator) FlipEdge(e Edge) (flipped Edge, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return t.flipEdge(e), nil
}

func (t *Triangulator) flipEdge(e Edge) Edge {
	t.checkVertex(e.U)
	t.checkVertex(e.V)
	if !t.edges.Has(e.U, e.V) {
		fatalf(ErrEdgeNotFound, "edge %v", e)
	}
	left, right := t.opposingVertices(e, t.strict)
	if left == NoVertex || right == NoVertex {
		fatalf(ErrExteriorEdgeFlip, "edge %v", e)
	}

	t.edges.Remove(e.U, e.V)
	t.edges.Add(left, right)
	t.logger.Debug("flipped edge",
		zap.Stringer("edge", e),
		zap.Int("left", left),
		zap.Int("right", right),
	)

	if t.hierarchy != nil {
		before := []geom.Triangle{
			t.triangle(Face{e.U, e.V, left}),
			t.triangle(Face{e.U, e.V, right}),
		}
		t.addToHierarchy(Face{left, right, e.U}, before...)
		t.addToHierarchy(Face{left, right, e.V}, before...)
	}
	return Edge{U: left, V: right}
}

// Register the triangle for face as a child of the given parents in the active
// hierarchy. Degenerate triangles are rejected here, since a zero area leaf
// would break point location.
func (t *Triangulator) addToHierarchy(face Face, parents ...geom.Triangle) {
	tri, err := geom.NewTriangle(t.vertices[face[0]], t.vertices[face[1]], t.vertices[face[2]])
	if err != nil {
		throw(err)
	}
	if _, err := t.hierarchy.Add(tri, face, parents...); err != nil {
		throw(err)
	}
}

// The faces of the mesh, derived from the opposing vertices of every edge.
// Each face is normalized, and the list is sorted.
func (t *Triangulator) Triangles() (faces []Face, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			faces, err = nil, recoveredErr
		}
	}()

	seen := make(map[Face]struct{})
	for _, e := range t.edges.Edges() {
		left, right := t.findOpposingVertices(e, t.strict)
		for _, w := range [2]int{left, right} {
			if w == NoVertex {
				continue
			}
			face := Face{e.U, e.V, w}.Normalized()
			if _, ok := seen[face]; ok {
				continue
			}
			seen[face] = struct{}{}
			faces = append(faces, face)
		}
	}
	sortFaces(faces)
	return faces, nil
}

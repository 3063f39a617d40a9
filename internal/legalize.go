package internal

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Whether the edge satisfies the Delaunay condition: either it borders fewer
// than two triangles, or the circumcircle of the triangle on its left does not
// strictly contain the vertex on its right.
func (t *Triangulator) IsLegal(e Edge) (legal bool, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			legal, err = false, recoveredErr
		}
	}()
	return !t.isIllegal(e), nil
}

// The edge is always normalized first, so an edge and its reverse get the same
// answer.
func (t *Triangulator) isIllegal(e Edge) bool {
	e = e.Normalized()
	left, right := t.findOpposingVertices(e, t.strict)
	if left == NoVertex || right == NoVertex {
		return false
	}
	circle, err := t.triangle(Face{e.U, e.V, left}).Circumcircle()
	if err != nil {
		throw(errors.Wrapf(err, "circumcircle of edge %v and vertex %d", e, left))
	}
	return circle.IsInside(t.vertices[right])
}

// True if no edge in the mesh is illegal. A mesh whose legality can't be
// decided (e.g. it has a degenerate triangle) is not Delaunay.
func (t *Triangulator) IsDelaunay() (delaunay bool) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			t.logger.Debug("delaunay check failed", zap.Error(recoveredErr))
			delaunay = false
		}
	}()
	for _, e := range t.edges.Edges() {
		if t.isIllegal(e) {
			return false
		}
	}
	return true
}

// Flip illegal edges until none of the candidates, or the edges around them
// that flips affect, are illegal (Lawson's algorithm). With no candidates,
// every edge in the mesh is a candidate. Returns the number of flips.
func (t *Triangulator) LegalizeEdges(candidates ...Edge) (flips int, err error) {
	defer func() {
		if recoveredErr := HandleTriangulatePanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return t.legalizeEdges(candidates), nil
}

func (t *Triangulator) legalizeEdges(candidates []Edge) int {
	if len(candidates) == 0 {
		candidates = t.edges.Edges()
	}

	// Each flip strictly improves the triangulation's angle vector, so with
	// consistent predicates this is bounded by the number of edge pairs.
	// Floating point predicates are not always consistent, so bail out rather
	// than loop forever.
	edgeCount := t.edges.Len()
	maxFlips := 2*edgeCount*edgeCount + 16

	// Work set of normalized illegal edges.
	pending := make(map[Edge]struct{})
	var stack []Edge
	push := func(e Edge) {
		e = e.Normalized()
		if _, ok := pending[e]; ok {
			return
		}
		if !t.edges.Has(e.U, e.V) || !t.isIllegal(e) {
			return
		}
		pending[e] = struct{}{}
		stack = append(stack, e)
	}

	for _, candidate := range candidates {
		push(candidate)
	}

	flips := 0
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		delete(pending, e)

		// Earlier flips may have removed this edge or changed its neighborhood
		// since it was queued.
		if !t.edges.Has(e.U, e.V) || !t.isIllegal(e) {
			continue
		}

		flipped := t.flipEdge(e)
		flips++
		if flips > maxFlips {
			fatalf(ErrLegalizationDiverged, "%d flips on a mesh of %d edges", flips, edgeCount)
		}

		// Only the four outer edges of the quad around the flipped edge can have
		// become illegal.
		for _, opposite := range [2]int{flipped.U, flipped.V} {
			push(Edge{opposite, e.U})
			push(Edge{opposite, e.V})
		}
	}
	return flips
}

package internal

import "github.com/pkg/errors"

// Caller contract violations. These are detected before anything is mutated.
var (
	ErrDegenerateEdge        = errors.New("no degenerate edges allowed")
	ErrVertexIndexOutOfRange = errors.New("vertex index out of range")
	ErrExteriorEdgeFlip      = errors.New("cannot flip an exterior edge")
	ErrEdgeNotFound          = errors.New("edge not found in mesh")
	ErrParentNotFound        = errors.New("parent triangle not found in hierarchy")
	ErrDuplicateTriangle     = errors.New("triangle already in hierarchy")
	ErrPointOutsideRoot      = errors.New("root triangle doesn't contain point, so no triangle does")
)

// Structural integrity violations. Either the input geometry is malformed
// (duplicate or collinear points) or an invariant was broken, and the current
// construction cannot continue.
var (
	ErrNoOpposingVertex     = errors.New("edge has no opposing vertex")
	ErrDegenerateTriangle   = errors.New("degenerate triangle adjacent to edge")
	ErrNoContainingLeaf     = errors.New("couldn't find containing leaf triangle")
	ErrLegalizationDiverged = errors.New("edge legalization did not converge")
)

// Not an error condition of the mesh, but the reason a construction was
// skipped.
var ErrTooFewPoints = errors.New("at least three points are required")

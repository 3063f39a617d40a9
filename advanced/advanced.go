// Package advanced exposes the triangulator's building blocks for callers who
// need more than the root package's Triangulate: direct edge manipulation,
// edge flips, legalization, and the point location hierarchy.
package advanced

import "github.com/osuushi/delaunay/internal"

type Triangulator = internal.Triangulator
type Option = internal.Option
type Edge = internal.Edge
type Face = internal.Face
type EdgeMesh = internal.EdgeMesh
type SearchHierarchy = internal.SearchHierarchy
type SearchTriangle = internal.SearchTriangle
type TriangleHandle = internal.TriangleHandle
type RenderOptions = internal.RenderOptions
type TriangulateError = internal.TriangulateError

const NoVertex = internal.NoVertex

var (
	NewTriangulator       = internal.NewTriangulator
	NewSearchHierarchy    = internal.NewSearchHierarchy
	NewEdgeMesh           = internal.NewEdgeMesh
	WithLogger            = internal.WithLogger
	WithStrictOrientation = internal.WithStrictOrientation
	WithDebugDraw         = internal.WithDebugDraw
	RenderMesh            = internal.RenderMesh
)

var (
	ErrDegenerateEdge        = internal.ErrDegenerateEdge
	ErrVertexIndexOutOfRange = internal.ErrVertexIndexOutOfRange
	ErrExteriorEdgeFlip      = internal.ErrExteriorEdgeFlip
	ErrEdgeNotFound          = internal.ErrEdgeNotFound
	ErrParentNotFound        = internal.ErrParentNotFound
	ErrDuplicateTriangle     = internal.ErrDuplicateTriangle
	ErrPointOutsideRoot      = internal.ErrPointOutsideRoot
	ErrNoOpposingVertex      = internal.ErrNoOpposingVertex
	ErrDegenerateTriangle    = internal.ErrDegenerateTriangle
	ErrNoContainingLeaf      = internal.ErrNoContainingLeaf
	ErrLegalizationDiverged  = internal.ErrLegalizationDiverged
	ErrTooFewPoints          = internal.ErrTooFewPoints
)

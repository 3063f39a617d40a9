// Package geom holds the planar primitives the triangulation is built on:
// points, triangles, circles and orientation tests.
//
// All predicates use floating point arithmetic with fixed tolerances. They
// are not exact, so nearly degenerate input (collinear or cocircular points at
// very different scales) can produce inconsistent answers.
package geom

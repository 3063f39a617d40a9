// Package meshio reads and writes point sets and triangulations.
//
// The triangulation format is plain text:
//
//	<numPoints> <numTriangles>
//	<idx> <x> <y>       (numPoints lines, idx counting up from 0)
//	<v0> <v1> <v2>      (numTriangles lines of vertex indices)
package meshio

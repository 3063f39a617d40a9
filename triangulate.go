// An incremental Delaunay triangulation package for Go.
//
// This package converts a set of points into a triangulation where no point
// lies strictly inside the circumcircle of any triangle. Points are inserted
// one at a time, in the order given, and illegal edges are flipped after every
// insertion.
//
// Duplicate points are not supported, and neither is a point landing exactly
// on an existing edge: a triangulation that runs into them fails with an error
// rather than producing degenerate triangles. Whether collinear points fail
// depends on insertion order. (0,0), (1,0), (2,0) triangulates to a path, but
// (0,0), (2,0), (1,0), (1,1) fails, because (1,0) splits the edge from (0,0) to
// (2,0).
package delaunay

import (
	"io"

	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/meshio"
	"github.com/pkg/errors"
)

type Point = geom.Point
type Triangle = geom.Triangle
type Edge = advanced.Edge
type Face = advanced.Face

// A finished triangulation. Faces index into Vertices.
type Mesh struct {
	Vertices []Point
	Edges    []Edge
	Faces    []Face
}

// Triangulate a set of points.
func Triangulate(points []Point, options ...advanced.Option) (*Mesh, error) {
	triangulator := advanced.NewTriangulator(points, options...)
	if !triangulator.PerformTriangulation() {
		return nil, triangulator.Err()
	}
	return MeshOf(triangulator)
}

// Snapshot the current state of a triangulator.
func MeshOf(triangulator *advanced.Triangulator) (*Mesh, error) {
	faces, err := triangulator.Triangles()
	if err != nil {
		return nil, err
	}
	return &Mesh{
		Vertices: triangulator.Vertices(),
		Edges:    triangulator.Edges(),
		Faces:    faces,
	}, nil
}

// The faces as triangles of points.
func (m *Mesh) Triangles() []Triangle {
	triangles := make([]Triangle, len(m.Faces))
	for i, face := range m.Faces {
		triangles[i] = Triangle{
			A: m.Vertices[face[0]],
			B: m.Vertices[face[1]],
			C: m.Vertices[face[2]],
		}
	}
	return triangles
}

// Write the mesh in the triangulation file format.
func (m *Mesh) Write(w io.Writer) error {
	faces := make([][3]int, len(m.Faces))
	for i, face := range m.Faces {
		faces[i] = face
	}
	return meshio.WriteTriangulation(w, m.Vertices, faces)
}

// Read a triangulation file into a triangulator, wiring up the three edges of
// every triangle. The edges are not legalized, so the result can be checked
// with IsDelaunay, or rebuilt with PerformTriangulation.
func LoadTriangulation(r io.Reader, options ...advanced.Option) (*advanced.Triangulator, error) {
	vertices, triangles, err := meshio.ReadTriangulation(r)
	if err != nil {
		return nil, err
	}
	triangulator := advanced.NewTriangulator(vertices, options...)
	for _, tri := range triangles {
		for k := range tri {
			if err := triangulator.AddEdge(tri[k], tri[(k+1)%3], false); err != nil {
				return nil, errors.Wrapf(err, "triangle %v", tri)
			}
		}
	}
	return triangulator, nil
}

package internal

import (
	"fmt"
	"sort"
)

// Returned in place of a vertex index when there is no vertex, e.g. the
// missing side of an exterior edge.
const NoVertex = -1

// A directed edge between two vertex indices. The mesh itself is undirected,
// but the direction matters when asking which side of an edge a vertex is on.
type Edge struct {
	U, V int
}

// The edge with its smaller index first. Undirected edges are always compared
// and stored in this form.
func (e Edge) Normalized() Edge {
	if e.U > e.V {
		return e.Reversed()
	}
	return e
}

func (e Edge) Reversed() Edge {
	return Edge{U: e.V, V: e.U}
}

func (e Edge) Has(vertex int) bool {
	return e.U == vertex || e.V == vertex
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.U, e.V)
}

// Three vertex indices forming a triangle.
type Face [3]int

// The face with its indices in ascending order.
func (f Face) Normalized() Face {
	sort.Ints(f[:])
	return f
}

// EdgeMesh is a symmetric adjacency relation over vertex indices. For every
// stored arc (u, v) there is a stored arc (v, u). Arcs are added and removed in
// pairs, and there are never self loops.
type EdgeMesh struct {
	adjacency map[int][]int
	count     int
}

func NewEdgeMesh() *EdgeMesh {
	return &EdgeMesh{adjacency: make(map[int][]int)}
}

// Add the undirected edge between u and v. Returns false if it was already
// present. Self loops are rejected by the caller, not here.
func (m *EdgeMesh) Add(u, v int) bool {
	if m.Has(u, v) {
		return false
	}
	m.adjacency[u] = append(m.adjacency[u], v)
	m.adjacency[v] = append(m.adjacency[v], u)
	m.count++
	return true
}

// Remove the undirected edge between u and v. Returns false if it was not
// present.
func (m *EdgeMesh) Remove(u, v int) bool {
	if !m.Has(u, v) {
		return false
	}
	m.removeArc(u, v)
	m.removeArc(v, u)
	m.count--
	return true
}

func (m *EdgeMesh) removeArc(from, to int) {
	neighbors := m.adjacency[from]
	for i, neighbor := range neighbors {
		if neighbor == to {
			neighbors = append(neighbors[:i], neighbors[i+1:]...)
			break
		}
	}
	if len(neighbors) == 0 {
		delete(m.adjacency, from)
	} else {
		m.adjacency[from] = neighbors
	}
}

func (m *EdgeMesh) Has(u, v int) bool {
	for _, neighbor := range m.adjacency[u] {
		if neighbor == v {
			return true
		}
	}
	return false
}

// All vertices with an arc from u, in insertion order. The returned slice must
// not be modified.
func (m *EdgeMesh) Neighbors(u int) []int {
	return m.adjacency[u]
}

// Number of undirected edges.
func (m *EdgeMesh) Len() int {
	return m.count
}

// Every undirected edge, normalized and sorted.
func (m *EdgeMesh) Edges() []Edge {
	edges := make([]Edge, 0, m.count)
	for u, neighbors := range m.adjacency {
		for _, v := range neighbors {
			if u < v {
				edges = append(edges, Edge{u, v})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}
		return edges[i].V < edges[j].V
	})
	return edges
}

// Remove every edge with at least one endpoint matching the predicate.
func (m *EdgeMesh) RemoveIncident(matches func(vertex int) bool) {
	for _, edge := range m.Edges() {
		if matches(edge.U) || matches(edge.V) {
			m.Remove(edge.U, edge.V)
		}
	}
}

func (m *EdgeMesh) Clear() {
	m.adjacency = make(map[int][]int)
	m.count = 0
}

func sortFaces(faces []Face) {
	sort.Slice(faces, func(i, j int) bool {
		for k := range faces[i] {
			if faces[i][k] != faces[j][k] {
				return faces[i][k] < faces[j][k]
			}
		}
		return false
	})
}

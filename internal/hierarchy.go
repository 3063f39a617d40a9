package internal

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/pkg/errors"
)

// The search hierarchy is a directed acyclic graph of triangles, used to find
// the triangle of the current triangulation that contains a point.
//
// A triangle is a child of another if it was created by either inserting a
// point into the parent (connecting the point to the parent's corners), or by
// an edge flip (the two resulting triangles are children of both triangles
// whose shared edge was flipped). So while it is meaningful to talk about the
// "root" (the triangle containing all others) and "leaves" (triangles with no
// children, which are exactly the triangles in the live mesh), it is not a
// tree: flips give nodes two parents.
//
// Nodes live in an arena and refer to each other by handle, never by pointer.
// Nodes are only ever appended, so handles stay valid for the lifetime of the
// hierarchy.
type SearchHierarchy struct {
	triangles []SearchTriangle
	// Index from quantized corner coordinates to handles, for lookup by
	// geometric equality.
	index map[triangleKey][]TriangleHandle
	root  TriangleHandle
}

type TriangleHandle int

type SearchTriangle struct {
	Triangle geom.Triangle
	// Vertex indices of the corners, in the same slot order as Triangle.
	Face     Face
	Children []TriangleHandle
	Parents  []TriangleHandle
}

func (st *SearchTriangle) IsLeaf() bool {
	return len(st.Children) == 0
}

// Lookup key: the sorted corners snapped to a grid the size of the equality
// tolerance.
type triangleKey [6]int64

var keyResolution = math.Sqrt(geom.EqualityTolerance)

func keyFor(t geom.Triangle) triangleKey {
	var key triangleKey
	for i, p := range t.SortedPoints() {
		key[2*i] = int64(math.Round(p.X / keyResolution))
		key[2*i+1] = int64(math.Round(p.Y / keyResolution))
	}
	return key
}

func NewSearchHierarchy(root geom.Triangle, face Face) *SearchHierarchy {
	h := &SearchHierarchy{index: make(map[triangleKey][]TriangleHandle)}
	h.root = h.insert(root, face)
	return h
}

func (h *SearchHierarchy) insert(t geom.Triangle, face Face) TriangleHandle {
	handle := TriangleHandle(len(h.triangles))
	h.triangles = append(h.triangles, SearchTriangle{Triangle: t, Face: face})
	key := keyFor(t)
	h.index[key] = append(h.index[key], handle)
	return handle
}

// Find the member geometrically equal to t.
func (h *SearchHierarchy) Find(t geom.Triangle) (TriangleHandle, bool) {
	for _, handle := range h.index[keyFor(t)] {
		if h.triangles[handle].Triangle.Equal(t) {
			return handle, true
		}
	}
	return 0, false
}

// Register a new triangle as a child of each of the given parents. Nothing is
// modified if the triangle is already a member or any parent is missing.
func (h *SearchHierarchy) Add(t geom.Triangle, face Face, parents ...geom.Triangle) (TriangleHandle, error) {
	if existing, ok := h.Find(t); ok {
		return existing, errors.Wrapf(ErrDuplicateTriangle, "%v", t)
	}

	parentHandles := make([]TriangleHandle, 0, len(parents))
	for _, parent := range parents {
		parentHandle, ok := h.Find(parent)
		if !ok {
			return 0, errors.Wrapf(ErrParentNotFound, "parent %v of %v", parent, t)
		}
		parentHandles = append(parentHandles, parentHandle)
	}

	handle := h.insert(t, face)
	for _, parentHandle := range parentHandles {
		parent := &h.triangles[parentHandle]
		parent.Children = append(parent.Children, handle)
	}
	h.triangles[handle].Parents = parentHandles
	return handle, nil
}

// Find some leaf triangle containing the point. The point must be inside the
// root.
//
// This is a depth first search where the most recently pushed child is
// visited first. Since children of a node can overlap on their boundaries (and
// since a node can be reached through several parents), more than one leaf
// can qualify for a point on an edge, and which one is returned depends on
// this order.
func (h *SearchHierarchy) ContainingLeaf(p geom.Point) (TriangleHandle, error) {
	if !h.triangles[h.root].Triangle.Contains(p) {
		return 0, errors.Wrapf(ErrPointOutsideRoot, "point %v", p)
	}

	stack := []TriangleHandle{h.root}
	seen := make(map[TriangleHandle]struct{})
	for len(stack) > 0 {
		handle := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := seen[handle]; ok {
			continue
		}
		seen[handle] = struct{}{}

		node := &h.triangles[handle]
		if node.IsLeaf() {
			return handle, nil
		}
		for _, child := range node.Children {
			if h.triangles[child].Triangle.Contains(p) {
				stack = append(stack, child)
			}
		}
	}

	return 0, errors.Wrapf(ErrNoContainingLeaf, "point %v", p)
}

func (h *SearchHierarchy) Root() TriangleHandle {
	return h.root
}

// Number of triangles ever added, including the root.
func (h *SearchHierarchy) Len() int {
	return len(h.triangles)
}

// The arena record for a handle. The record is owned by the hierarchy and must
// not be modified.
func (h *SearchHierarchy) Node(handle TriangleHandle) *SearchTriangle {
	return &h.triangles[handle]
}

func (h *SearchHierarchy) Triangle(handle TriangleHandle) geom.Triangle {
	return h.triangles[handle].Triangle
}

func (h *SearchHierarchy) Face(handle TriangleHandle) Face {
	return h.triangles[handle].Face
}

func (h *SearchHierarchy) Children(handle TriangleHandle) []TriangleHandle {
	return h.triangles[handle].Children
}

func (h *SearchHierarchy) Parents(handle TriangleHandle) []TriangleHandle {
	return h.triangles[handle].Parents
}

func (h *SearchHierarchy) IsLeaf(handle TriangleHandle) bool {
	return h.triangles[handle].IsLeaf()
}

// All leaves reachable from the root.
func (h *SearchHierarchy) Leaves() []TriangleHandle {
	var leaves []TriangleHandle
	iter := h.Iterate()
	for handle, ok := iter.Next(); ok; handle, ok = iter.Next() {
		if h.IsLeaf(handle) {
			leaves = append(leaves, handle)
		}
	}
	return leaves
}

// A graph iterator lets you loop over the nodes reachable from the root
// exactly once. Traversal order is not defined. Behavior is also undefined if
// you modify the hierarchy during iteration.
type GraphIterator struct {
	hierarchy *SearchHierarchy
	stack     []TriangleHandle
	seen      map[TriangleHandle]struct{}
}

func (h *SearchHierarchy) Iterate() *GraphIterator {
	return &GraphIterator{
		hierarchy: h,
		stack:     []TriangleHandle{h.root},
		seen:      make(map[TriangleHandle]struct{}),
	}
}

func (iter *GraphIterator) Next() (TriangleHandle, bool) {
	for len(iter.stack) > 0 {
		handle := iter.stack[len(iter.stack)-1]
		iter.stack = iter.stack[:len(iter.stack)-1]
		// Skip if we've seen the node before
		if _, ok := iter.seen[handle]; ok {
			continue
		}
		iter.seen[handle] = struct{}{}

		// Push the children onto the stack
		iter.stack = append(iter.stack, iter.hierarchy.Children(handle)...)
		return handle, true
	}
	return 0, false
}

type nodeName struct {
	hierarchy *SearchHierarchy
	handle    TriangleHandle
}

// Debug name of a node. The root is cyan, leaves are green and superseded
// triangles are red.
func (h *SearchHierarchy) DbgName(handle TriangleHandle) string {
	name := dbg.Name(nodeName{h, handle})
	switch {
	case handle == h.root:
		name = aurora.Cyan(name).String()
	case h.IsLeaf(handle):
		name = aurora.Green(name).String()
	default:
		name = aurora.Red(name).String()
	}
	return name
}

func (h *SearchHierarchy) Describe(handle TriangleHandle) string {
	node := h.Node(handle)
	return fmt.Sprintf("SearchTriangle %s %v %v <children: %s, parents: %s>",
		h.DbgName(handle),
		node.Face,
		node.Triangle,
		dbg.Dump(node.Children),
		dbg.Dump(node.Parents),
	)
}

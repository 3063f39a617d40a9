package internal

import (
	"testing"

	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tri(ax, ay, bx, by, cx, cy float64) geom.Triangle {
	return geom.Triangle{
		A: geom.Point{X: ax, Y: ay},
		B: geom.Point{X: bx, Y: by},
		C: geom.Point{X: cx, Y: cy},
	}
}

func TestSearchHierarchyAdd(t *testing.T) {
	root := tri(0, 0, 0, 1, 1, 0)
	child := tri(.1, .1, .1, .9, .9, .01)
	otherChild := tri(0, 0, 0, -1, -1, 0)

	h := NewSearchHierarchy(root, Face{0, 1, 2})
	assert.Equal(t, 1, h.Len())
	assert.True(t, h.Triangle(h.Root()).Equal(root))
	assert.True(t, h.IsLeaf(h.Root()))

	childHandle, err := h.Add(child, Face{3, 4, 5}, root)
	require.NoError(t, err)
	assert.Equal(t, 2, h.Len())
	require.Len(t, h.Children(h.Root()), 1)
	assert.Equal(t, childHandle, h.Children(h.Root())[0])
	assert.Equal(t, []TriangleHandle{h.Root()}, h.Parents(childHandle))
	assert.Equal(t, Face{3, 4, 5}, h.Face(childHandle))

	// Parents are found by geometry, regardless of corner order
	otherHandle, err := h.Add(otherChild, Face{0, 6, 7}, tri(1, 0, 0, 0, 0, 1), child)
	require.NoError(t, err)
	assert.Equal(t, 3, h.Len())
	assert.Len(t, h.Children(h.Root()), 2)
	assert.Equal(t, []TriangleHandle{otherHandle}, h.Children(childHandle))
	assert.ElementsMatch(t, []TriangleHandle{h.Root(), childHandle}, h.Parents(otherHandle))
	assert.False(t, h.IsLeaf(childHandle))
	assert.True(t, h.IsLeaf(otherHandle))

	found, ok := h.Find(tri(.9, .01, .1, .1, .1, .9))
	assert.True(t, ok)
	assert.Equal(t, childHandle, found)

	node := h.Node(childHandle)
	assert.Equal(t, Face{3, 4, 5}, node.Face)
	assert.False(t, node.IsLeaf())
	assert.Contains(t, h.Describe(childHandle), "[3 4 5]")
}

func TestSearchHierarchyAddErrors(t *testing.T) {
	root := tri(0, 0, 0, 1, 1, 0)
	h := NewSearchHierarchy(root, Face{0, 1, 2})

	t.Run("missing parent", func(t *testing.T) {
		_, err := h.Add(tri(.1, .1, .1, .2, .2, .1), Face{}, root, tri(5, 5, 6, 5, 5, 6))
		assert.True(t, errors.Is(err, ErrParentNotFound))
		// Nothing was modified
		assert.Equal(t, 1, h.Len())
		assert.Empty(t, h.Children(h.Root()))
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := h.Add(tri(1, 0, 0, 1, 0, 0), Face{}, root)
		assert.True(t, errors.Is(err, ErrDuplicateTriangle))
		assert.Equal(t, 1, h.Len())
	})
}

func TestSearchHierarchyContainingLeaf(t *testing.T) {
	// Split the root at its centroid, then split one of the children again, as
	// inserting two points would.
	root := tri(0, 0, 3, 0, 0, 3)
	h := NewSearchHierarchy(root, Face{0, 1, 2})

	bottom := tri(1, 1, 0, 0, 3, 0)
	right := tri(1, 1, 3, 0, 0, 3)
	left := tri(1, 1, 0, 3, 0, 0)
	for _, child := range []geom.Triangle{bottom, right, left} {
		_, err := h.Add(child, Face{}, root)
		require.NoError(t, err)
	}

	leafFor := func(x, y float64) geom.Triangle {
		handle, err := h.ContainingLeaf(geom.Point{X: x, Y: y})
		require.NoError(t, err)
		require.True(t, h.IsLeaf(handle))
		return h.Triangle(handle)
	}

	assert.True(t, leafFor(1, 0.5).Equal(bottom))
	assert.True(t, leafFor(1.5, 1).Equal(right))
	assert.True(t, leafFor(0.5, 1).Equal(left))

	// A point on a shared edge is in either of the triangles sharing it
	onEdge := leafFor(2, 0.5)
	assert.True(t, onEdge.Equal(bottom) || onEdge.Equal(right))

	p := geom.Point{X: 4.0 / 3, Y: 1.0 / 3}
	toward := tri(p.X, p.Y, 1, 1, 0, 0)
	below := tri(p.X, p.Y, 0, 0, 3, 0)
	beside := tri(p.X, p.Y, 3, 0, 1, 1)
	for _, child := range []geom.Triangle{toward, below, beside} {
		_, err := h.Add(child, Face{}, bottom)
		require.NoError(t, err)
	}

	assert.True(t, leafFor(1.1, 0.6).Equal(toward))
	assert.True(t, leafFor(1, 0.1).Equal(below))
	assert.True(t, leafFor(2, 0.4).Equal(beside))
	assert.True(t, leafFor(0.5, 1).Equal(left))

	leaves := h.Leaves()
	assert.Len(t, leaves, 5)
	for _, leaf := range leaves {
		assert.True(t, h.IsLeaf(leaf), h.Describe(leaf))
	}
}

func TestSearchHierarchyContainingLeafErrors(t *testing.T) {
	root := tri(0, 0, 3, 0, 0, 3)
	h := NewSearchHierarchy(root, Face{0, 1, 2})

	_, err := h.ContainingLeaf(geom.Point{X: 5, Y: 5})
	assert.True(t, errors.Is(err, ErrPointOutsideRoot))

	// Children that don't cover the root break the search
	_, err = h.Add(tri(0, 0, 1, 0, 0, 1), Face{}, root)
	require.NoError(t, err)
	_, err = h.ContainingLeaf(geom.Point{X: 2, Y: 0.5})
	assert.True(t, errors.Is(err, ErrNoContainingLeaf))

	handle, err := h.ContainingLeaf(geom.Point{X: 0.2, Y: 0.2})
	require.NoError(t, err)
	assert.True(t, h.Triangle(handle).Equal(tri(0, 0, 1, 0, 0, 1)))
}

func TestGraphIterator(t *testing.T) {
	root := tri(0, 0, 3, 0, 0, 3)
	h := NewSearchHierarchy(root, Face{0, 1, 2})
	a, _ := h.Add(tri(1, 1, 0, 0, 3, 0), Face{}, root)
	b, _ := h.Add(tri(1, 1, 3, 0, 0, 3), Face{}, root)
	// A node with two parents is still visited once
	c, _ := h.Add(tri(0, 0, 3, 0, 2, 0.5), Face{}, h.Triangle(a), h.Triangle(b))

	var visited []TriangleHandle
	iter := h.Iterate()
	for handle, ok := iter.Next(); ok; handle, ok = iter.Next() {
		visited = append(visited, handle)
	}
	assert.ElementsMatch(t, []TriangleHandle{h.Root(), a, b, c}, visited)
}

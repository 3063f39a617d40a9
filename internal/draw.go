package internal

import (
	"image"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/dbg"
	"go.uber.org/zap"
)

// Padding around the points, so that edges running off to the super triangle
// are visible as stubs.
const dbgDrawPadding = 100

type RenderOptions struct {
	// Pixels per unit.
	Scale float64
	// Line width in pixels.
	LineWidth float64
	// Label every vertex with its index.
	Labels bool
}

// Render the mesh to an image. The canvas is fit to the bounding box of the
// vertices, with y pointing up.
func RenderMesh(vertices []geom.Point, edges []Edge, options RenderOptions) image.Image {
	if options.Scale <= 0 {
		options.Scale = 1
	}
	if options.LineWidth <= 0 {
		options.LineWidth = 1
	}
	c := newCanvas(vertices, options.Scale)
	drawEdges(c, vertices, edges, options.LineWidth)
	drawVertices(c, vertices, options)
	return c.Image()
}

// Helper to draw the hierarchy's leaves and the mesh in the terminal (iTerm
// only) for debugging. Leaves are filled and labelled with their debug names.
func (t *Triangulator) dbgDraw(scale float64) {
	inputs := t.vertices[:t.inputCount]
	c := newCanvas(inputs, scale)

	for _, leaf := range t.hierarchy.Leaves() {
		tri := t.hierarchy.Triangle(leaf)
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.3)
		c.Fill()

		// Write the name of the triangle at its centroid. We have to go back to
		// identity to draw the text, so get the point in native coordinates.
		centerX, centerY := c.TransformPoint(
			(tri.A.X+tri.B.X+tri.C.X)/3,
			(tri.A.Y+tri.B.Y+tri.C.Y)/3,
		)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(dbg.Name(nodeName{t.hierarchy, leaf}), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	drawEdges(c, t.vertices, t.edges.Edges(), 2)
	drawVertices(c, inputs, RenderOptions{Scale: scale, Labels: true})

	path := filepath.Join(os.TempDir(), "delaunay.png")
	if err := c.SavePNG(path); err != nil {
		t.logger.Warn("debug draw failed", zap.Error(err))
		return
	}
	imgcat.CatFile(path, os.Stdout)
}

func newCanvas(points []geom.Point, scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)
	return c
}

func drawEdges(c *gg.Context, vertices []geom.Point, edges []Edge, lineWidth float64) {
	for _, e := range edges {
		if e.U >= len(vertices) || e.V >= len(vertices) {
			continue
		}
		u, v := vertices[e.U], vertices[e.V]
		c.MoveTo(u.X, u.Y)
		c.LineTo(v.X, v.Y)
	}
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(lineWidth)
	c.Stroke()
}

func drawVertices(c *gg.Context, vertices []geom.Point, options RenderOptions) {
	radius := 3 / options.Scale
	c.SetRGB(1, 0.5, 0)
	for _, p := range vertices {
		c.DrawCircle(p.X, p.Y, radius)
		c.Fill()
	}
	if !options.Labels {
		return
	}
	c.SetRGB(1, 1, 1)
	for i, p := range vertices {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(strconv.Itoa(i), x+6, y-6, 0, 0)
		c.Pop()
	}
}

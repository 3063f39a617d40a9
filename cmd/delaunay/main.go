package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/meshio"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line driver. Triangulates a point set read from a file (or stdin),
// writes the triangulation in the triangulation file format, and optionally
// renders it. Points are "x y" lines, or the circles and polygon vertices of
// an SVG file.

// Version indicates the current build version.
var Version = "dev"

const pipeName = "-"

var (
	app     = kingpin.New("delaunay", "Incremental Delaunay triangulation of planar point sets.")
	verbose = app.Flag("verbose", "Log construction progress.").Short('v').Envar("DELAUNAY_VERBOSE").Bool()

	triangulateCmd = app.Command("triangulate", "Triangulate a point set.").Default()
	input          = triangulateCmd.Flag("input", "Point file, or - for stdin.").Short('i').Default(pipeName).String()
	svgInput       = triangulateCmd.Flag("svg", "Read points from an SVG file (detected from a .svg extension otherwise).").Bool()
	output         = triangulateCmd.Flag("output", "Triangulation output file, or - for stdout.").Short('o').Default(pipeName).String()
	imagePath      = triangulateCmd.Flag("image", "Render the triangulation to an image file (format by extension).").String()
	show           = triangulateCmd.Flag("show", "Show the rendering inline (iTerm only).").Bool()
	scale          = triangulateCmd.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	labels         = triangulateCmd.Flag("labels", "Label vertices with their indices when rendering.").Bool()
	strict         = triangulateCmd.Flag("strict", "Fail on collinear vertices next to edges.").Bool()
	debugDraw      = triangulateCmd.Flag("debug-draw", "Draw the mesh after every insertion.").Bool()

	checkCmd  = app.Command("check", "Check whether a triangulation file is Delaunay.")
	checkFile = checkCmd.Arg("file", "Triangulation file, or - for stdin.").Default(pipeName).String()
)

func main() {
	app.Version(Version)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	colors := aurora.NewAurora(term.IsTerminal(int(os.Stderr.Fd())))

	switch command {
	case triangulateCmd.FullCommand():
		err = runTriangulate(logger, colors)
	case checkCmd.FullCommand():
		err = runCheck(logger, colors)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, colors.Red(fmt.Sprintf("error: %v", err)))
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	config.Encoding = "console"
	return config.Build()
}

func runTriangulate(logger *zap.Logger, colors aurora.Aurora) error {
	points, err := readPoints(*input, *svgInput)
	if err != nil {
		return err
	}
	logger.Info("read points", zap.Int("count", len(points)), zap.String("input", *input))

	options := []advanced.Option{advanced.WithLogger(logger)}
	if *strict {
		options = append(options, advanced.WithStrictOrientation())
	}
	if *debugDraw {
		options = append(options, advanced.WithDebugDraw(*scale))
	}

	mesh, err := delaunay.Triangulate(points, options...)
	if err != nil {
		return errors.Wrap(err, "triangulation failed")
	}

	if err := writeTo(*output, mesh.Write); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s %d vertices, %d edges, %d triangles\n",
		colors.Green("Triangulated"), len(mesh.Vertices), len(mesh.Edges), len(mesh.Faces))

	if *imagePath == "" && !*show {
		return nil
	}
	img := advanced.RenderMesh(mesh.Vertices, mesh.Edges, advanced.RenderOptions{
		Scale:     *scale,
		LineWidth: 2,
		Labels:    *labels,
	})
	path := *imagePath
	if path == "" {
		path = filepath.Join(os.TempDir(), "delaunay.png")
	}
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrapf(err, "saving image %s", path)
	}
	if *show && term.IsTerminal(int(os.Stdout.Fd())) {
		imgcat.CatFile(path, os.Stdout)
	}
	return nil
}

func runCheck(logger *zap.Logger, colors aurora.Aurora) error {
	var triangulator *advanced.Triangulator
	err := readFrom(*checkFile, func(r io.Reader) error {
		var err error
		triangulator, err = delaunay.LoadTriangulation(r, advanced.WithLogger(logger))
		return err
	})
	if err != nil {
		return err
	}

	if !triangulator.IsDelaunay() {
		return errors.Errorf("%s is not a Delaunay triangulation", *checkFile)
	}
	fmt.Fprintf(os.Stderr, "%s %d vertices, %d edges\n",
		colors.Green("Delaunay"), triangulator.VertexCount(), triangulator.EdgeCount())
	return nil
}

func readPoints(path string, svg bool) ([]geom.Point, error) {
	svg = svg || strings.EqualFold(filepath.Ext(path), ".svg")
	var points []geom.Point
	err := readFrom(path, func(r io.Reader) error {
		var err error
		if svg {
			points, err = meshio.ReadSVGPoints(r)
		} else {
			points, err = meshio.ReadPoints(r)
		}
		return err
	})
	return points, err
}

func readFrom(path string, read func(io.Reader) error) error {
	if path == pipeName {
		return read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return errors.Wrap(read(f), path)
}

func writeTo(path string, write func(io.Writer) error) error {
	if path == pipeName {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), path)
}

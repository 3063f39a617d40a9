package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

var ErrInvalidFormat = errors.New("invalid triangulation format")

// Write vertices and triangles (as vertex index triples) in the triangulation
// format.
func WriteTriangulation(w io.Writer, vertices []geom.Point, triangles [][3]int) error {
	for _, tri := range triangles {
		for _, index := range tri {
			if index < 0 || index >= len(vertices) {
				return errors.Errorf("triangle %v references vertex %d of %d", tri, index, len(vertices))
			}
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", len(vertices), len(triangles))
	for i, p := range vertices {
		fmt.Fprintf(bw, "%d %s %s\n", i, formatFloat(p.X), formatFloat(p.Y))
	}
	for _, tri := range triangles {
		fmt.Fprintf(bw, "%d %d %d\n", tri[0], tri[1], tri[2])
	}
	return errors.Wrap(bw.Flush(), "writing triangulation")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Read a file in the triangulation format. Blank lines are ignored.
func ReadTriangulation(r io.Reader) (vertices []geom.Point, triangles [][3]int, err error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	nextFields := func() ([]string, bool) {
		for scanner.Scan() {
			lineNumber++
			fields := strings.Fields(scanner.Text())
			if len(fields) > 0 {
				return fields, true
			}
		}
		return nil, false
	}
	invalid := func(format string, args ...interface{}) error {
		return errors.Wrapf(ErrInvalidFormat, "line %d: "+format, append([]interface{}{lineNumber}, args...)...)
	}

	header, ok := nextFields()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, nil, errors.Wrap(err, "reading triangulation")
		}
		return nil, nil, errors.Wrap(ErrInvalidFormat, "empty input")
	}
	if len(header) != 2 {
		return nil, nil, invalid("expected two integers in header, got %q", strings.Join(header, " "))
	}
	pointCount, err := strconv.Atoi(header[0])
	if err != nil || pointCount < 0 {
		return nil, nil, invalid("invalid point count %q", header[0])
	}
	triangleCount, err := strconv.Atoi(header[1])
	if err != nil || triangleCount < 0 {
		return nil, nil, invalid("invalid triangle count %q", header[1])
	}

	vertices = make([]geom.Point, 0, pointCount)
	for len(vertices) < pointCount {
		fields, ok := nextFields()
		if !ok {
			return nil, nil, invalid("expected %d points, got %d", pointCount, len(vertices))
		}
		if len(fields) != 3 {
			return nil, nil, invalid("expected \"<idx> <x> <y>\", got %q", strings.Join(fields, " "))
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil || index != len(vertices) {
			return nil, nil, invalid("expected point index %d, got %q", len(vertices), fields[0])
		}
		point, err := parsePoint(fields[1], fields[2])
		if err != nil {
			return nil, nil, invalid("%v", err)
		}
		vertices = append(vertices, point)
	}

	triangles = make([][3]int, 0, triangleCount)
	for len(triangles) < triangleCount {
		fields, ok := nextFields()
		if !ok {
			return nil, nil, invalid("expected %d triangles, got %d", triangleCount, len(triangles))
		}
		if len(fields) != 3 {
			return nil, nil, invalid("expected three vertex indices, got %q", strings.Join(fields, " "))
		}
		var tri [3]int
		for i, field := range fields {
			index, err := strconv.Atoi(field)
			if err != nil || index < 0 || index >= pointCount {
				return nil, nil, invalid("invalid vertex index %q", field)
			}
			tri[i] = index
		}
		triangles = append(triangles, tri)
	}

	if fields, ok := nextFields(); ok {
		return nil, nil, invalid("unexpected trailing data %q", strings.Join(fields, " "))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading triangulation")
	}
	return vertices, triangles, nil
}

package meshio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// Read points given as one "x y" pair per line. Blank lines and lines starting
// with # are skipped.
func ReadPoints(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		point, err := parsePoint(fields[0], fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(xString, yString string) (geom.Point, error) {
	x, err := strconv.ParseFloat(xString, 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", xString)
	}
	y, err := strconv.ParseFloat(yString, 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", yString)
	}
	return geom.Point{X: x, Y: y}, nil
}

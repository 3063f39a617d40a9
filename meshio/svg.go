package meshio

import (
	"io"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/delaunay/geom"
	"github.com/pkg/errors"
)

// Read points out of an SVG document. This is not a full (or even correct) SVG
// reader. The center of every <circle> element is a point, as is every vertex
// listed in a <polygon> or <polyline> points attribute. Transforms are
// ignored, and coordinates are taken as is (so y points down).
func ReadSVGPoints(r io.Reader) ([]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []geom.Point
	for _, circle := range root.FindAll("circle") {
		point, err := parsePoint(circle.Attributes["cx"], circle.Attributes["cy"])
		if err != nil {
			return nil, errors.Wrap(err, "circle center")
		}
		points = append(points, point)
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, element := range root.FindAll(name) {
			polyPoints, err := parsePointList(element.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "%s points", name)
			}
			points = append(points, polyPoints...)
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no points found in svg")
	}
	return points, nil
}

// Parse a points attribute, where coordinates are separated by commas and/or
// whitespace, e.g. "0,0 10,0 10,10".
func parsePointList(list string) ([]geom.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(list, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", list)
	}
	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i], fields[i+1])
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, nil
}

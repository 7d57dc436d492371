package aperture

import (
	"math"

	"github.com/ctessum/geom"
)

// XYPathLengths returns the x and y components of a shape's perimeter:
// the sums of |Δx| and |Δy| along the exterior rings, including the
// closing segment of each ring.
//
// Polygon exterior rings are walked directly; clockwise rings are holes
// and contribute nothing. MultiPolygon members are summed recursively.
// Members of a GeometryCollection that are not polygonal contribute
// nothing. An empty or nil shape yields (0, 0).
func XYPathLengths(shape geom.Geom) (x, y float64) {
	switch s := shape.(type) {
	case geom.Polygon:
		for _, ring := range s {
			if len(ring) < 2 || ringSignedArea(ring) < 0 {
				continue
			}
			rx, ry := ringPathLengths(ring)
			x += rx
			y += ry
		}
	case geom.MultiPolygon:
		for _, p := range s {
			px, py := XYPathLengths(p)
			x += px
			y += py
		}
	case geom.GeometryCollection:
		for _, member := range s {
			switch member.(type) {
			case geom.Polygon, geom.MultiPolygon, geom.GeometryCollection:
				px, py := XYPathLengths(member)
				x += px
				y += py
			}
		}
	}
	return x, y
}

// ringPathLengths sums |Δx| and |Δy| over consecutive ring vertices,
// closing the ring from the last vertex back to the first.
func ringPathLengths(ring []geom.Point) (x, y float64) {
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		x += math.Abs(next.X - p.X)
		y += math.Abs(next.Y - p.Y)
	}
	return x, y
}

// ringSignedArea returns the shoelace area of a ring: positive for
// counter-clockwise exteriors, negative for clockwise holes.
func ringSignedArea(ring []geom.Point) float64 {
	var sum float64
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

package aperture

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

// rect returns a counter-clockwise rectangle ring.
func rect(xMin, yMin, w, h float64) []geom.Point {
	return []geom.Point{
		{X: xMin, Y: yMin},
		{X: xMin + w, Y: yMin},
		{X: xMin + w, Y: yMin + h},
		{X: xMin, Y: yMin + h},
	}
}

func TestXYPathLengthsRectangle(t *testing.T) {
	tests := []struct {
		name  string
		w, h  float64
		wantX float64
		wantY float64
	}{
		{"square", 10, 10, 20, 20},
		{"wide", 40, 20, 80, 40},
		{"tall", 5, 100, 10, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := geom.Polygon{rect(0, 0, tt.w, tt.h)}
			x, y := XYPathLengths(p)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("XYPathLengths() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestXYPathLengthsDiagonal(t *testing.T) {
	// A right triangle: the hypotenuse contributes its x and y spans,
	// not its Euclidean length.
	p := geom.Polygon{{
		{X: 0, Y: 0},
		{X: 30, Y: 0},
		{X: 0, Y: 40},
	}}
	x, y := XYPathLengths(p)
	if math.Abs(x-60) > 1e-9 || math.Abs(y-80) > 1e-9 {
		t.Errorf("XYPathLengths() = (%v, %v), want (60, 80)", x, y)
	}
}

func TestXYPathLengthsMultiPolygon(t *testing.T) {
	single := geom.Polygon{rect(0, 0, 10, 20)}
	double := geom.MultiPolygon{
		geom.Polygon{rect(0, 0, 10, 20)},
		geom.Polygon{rect(100, 100, 10, 20)},
	}

	sx, sy := XYPathLengths(single)
	dx, dy := XYPathLengths(double)
	if math.Abs(dx-2*sx) > 1e-9 || math.Abs(dy-2*sy) > 1e-9 {
		t.Errorf("MultiPolygon = (%v, %v), want double of (%v, %v)", dx, dy, sx, sy)
	}
}

func TestXYPathLengthsGeometryCollection(t *testing.T) {
	poly := geom.Polygon{rect(0, 0, 10, 20)}
	collection := geom.GeometryCollection{
		poly,
		geom.Point{X: 5, Y: 5},
		geom.LineString{{X: 0, Y: 0}, {X: 100, Y: 100}},
	}

	px, py := XYPathLengths(poly)
	cx, cy := XYPathLengths(collection)
	if cx != px || cy != py {
		t.Errorf("GeometryCollection = (%v, %v), want (%v, %v): non-polygon members must contribute nothing", cx, cy, px, py)
	}
}

func TestXYPathLengthsEmpty(t *testing.T) {
	tests := []struct {
		name  string
		shape geom.Geom
	}{
		{"empty polygon", geom.Polygon{}},
		{"empty multipolygon", geom.MultiPolygon{}},
		{"empty collection", geom.GeometryCollection{}},
		{"point only", geom.Point{X: 1, Y: 2}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := XYPathLengths(tt.shape)
			if x != 0 || y != 0 {
				t.Errorf("XYPathLengths() = (%v, %v), want (0, 0)", x, y)
			}
		})
	}
}

func TestXYPathLengthsHoleExcluded(t *testing.T) {
	// Outer 40x40 ring with a clockwise 10x10 hole. Only the exterior
	// contributes, matching a walk of the exterior ring alone.
	hole := []geom.Point{
		{X: 10, Y: 10},
		{X: 10, Y: 20},
		{X: 20, Y: 20},
		{X: 20, Y: 10},
	}
	p := geom.Polygon{rect(0, 0, 40, 40), hole}

	x, y := XYPathLengths(p)
	if math.Abs(x-80) > 1e-9 || math.Abs(y-80) > 1e-9 {
		t.Errorf("XYPathLengths() = (%v, %v), want (80, 80)", x, y)
	}
}

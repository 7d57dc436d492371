// Package aperture builds 2D beam aperture shapes from multi-leaf
// collimator (MLC) and jaw positions, and decomposes their perimeters
// into x and y components.
//
// # Shapes
//
// An aperture is derived from a jaw rectangle and, optionally, the
// positions of two opposing MLC leaf banks:
//
//	shape, err := aperture.Build(jaws, leaves, boundaries)
//
// With no leaf data the aperture is the jaw rectangle itself. With leaf
// data, the leaf outline is constructed as a closed ring (bank A followed
// by bank B reversed), regularized to resolve self-intersections from
// crossed leaves, and intersected with the jaw rectangle. The result may
// be degenerate (zero area) when the jaws fully block the leaf opening;
// that is a valid aperture, not an error.
//
// # Perimeter Decomposition
//
// [XYPathLengths] walks a shape and sums |Δx| and |Δy| along exterior
// rings. The total is the orthogonal "city-block" path length rather than
// the Euclidean perimeter: leaf and jaw edges are axis-aligned, so this
// better reflects mechanical leaf travel. MultiPolygon members are summed;
// non-polygonal members of a GeometryCollection contribute nothing.
//
// Polygon algebra is provided by github.com/ctessum/geom.
package aperture

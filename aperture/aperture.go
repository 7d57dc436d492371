package aperture

import (
	"errors"
	"math"

	"github.com/ctessum/geom"
)

// Build-related errors.
var (
	ErrBankMismatch     = errors.New("aperture: leaf banks have different lengths")
	ErrBoundaryMismatch = errors.New("aperture: leaf boundary count does not match leaf count")
)

// Orientation identifies which axis the MLC leaves travel along.
type Orientation int

const (
	// None indicates a jaw-only aperture with no MLC data.
	None Orientation = iota
	// MLCX indicates leaves that move along the x-axis.
	MLCX
	// MLCY indicates leaves that move along the y-axis.
	MLCY
)

// String returns the DICOM device-type name for the orientation.
func (o Orientation) String() string {
	switch o {
	case MLCX:
		return "mlcx"
	case MLCY:
		return "mlcy"
	default:
		return "none"
	}
}

// Leaves holds the positions of two opposing MLC leaf banks for one
// control point. A and B have one entry per leaf. Orientation None means
// no leaf data was recorded.
type Leaves struct {
	Orientation Orientation
	A           []float64
	B           []float64
}

// IsZero reports whether no leaf data is present.
func (l Leaves) IsZero() bool {
	return l.Orientation == None || len(l.A) == 0
}

// Jaws describes the rectangular collimation boundary in mm.
// Invariant: XMin <= XMax and YMin <= YMax.
type Jaws struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewJaws creates a Jaws from two position pairs, ordering each pair so
// the invariant holds.
func NewJaws(x1, x2, y1, y2 float64) Jaws {
	return Jaws{
		XMin: math.Min(x1, x2),
		XMax: math.Max(x1, x2),
		YMin: math.Min(y1, y2),
		YMax: math.Max(y1, y2),
	}
}

// Width returns the x extent of the jaw opening.
func (j Jaws) Width() float64 {
	return j.XMax - j.XMin
}

// Height returns the y extent of the jaw opening.
func (j Jaws) Height() float64 {
	return j.YMax - j.YMin
}

// Rect returns the jaw opening as a closed counter-clockwise polygon.
func (j Jaws) Rect() geom.Polygon {
	return geom.Polygon{{
		{X: j.XMin, Y: j.YMin},
		{X: j.XMax, Y: j.YMin},
		{X: j.XMax, Y: j.YMax},
		{X: j.XMin, Y: j.YMax},
	}}
}

// Build constructs the aperture for one control point.
//
// With no leaf data the aperture is the jaw rectangle. Otherwise the leaf
// outline ring is built from bank A's segments followed by bank B's
// segments reversed, regularized by self-union to resolve the
// self-intersections that arise when opposing leaves cross, and
// intersected with the jaw rectangle. boundaries must hold one more entry
// than each bank: entry i and i+1 bound leaf i along the axis orthogonal
// to leaf travel.
//
// A crossed leaf pair encloses a negative-winding lobe between the
// banks; regularization keeps that lobe as open area, so overlapping
// leaves still contribute to the aperture.
//
// The result may be empty (zero area) when the jaws fully block the leaf
// opening.
func Build(jaws Jaws, leaves Leaves, boundaries []float64) (geom.Polygon, error) {
	rect := jaws.Rect()
	if leaves.IsZero() {
		return rect, nil
	}
	if len(leaves.A) != len(leaves.B) {
		return nil, ErrBankMismatch
	}
	if len(boundaries) != len(leaves.A)+1 {
		return nil, ErrBoundaryMismatch
	}

	ring := make([]geom.Point, 0, 4*len(leaves.A))
	for i, pos := range leaves.A {
		ring = append(ring,
			leafPoint(leaves.Orientation, pos, boundaries[i]),
			leafPoint(leaves.Orientation, pos, boundaries[i+1]),
		)
	}
	for i := len(leaves.B) - 1; i >= 0; i-- {
		ring = append(ring,
			leafPoint(leaves.Orientation, leaves.B[i], boundaries[i+1]),
			leafPoint(leaves.Orientation, leaves.B[i], boundaries[i]),
		)
	}

	outline := geom.Polygon{ring}
	// Self-union regularizes the ring: crossed leaf pairs produce a
	// self-intersecting outline that boolean ops require to be resolved.
	repaired := outline.Union(outline)

	return repaired.Intersection(rect).(geom.Polygon), nil
}

// leafPoint maps a leaf position and a boundary coordinate onto the
// plane. For MLCX leaves the leaf position is the x value; for MLCY it is
// the y value.
func leafPoint(o Orientation, pos, edge float64) geom.Point {
	if o == MLCY {
		return geom.Point{X: edge, Y: pos}
	}
	return geom.Point{X: pos, Y: edge}
}

// Area returns the area of an aperture shape, or 0 for an empty shape.
func Area(shape geom.Polygon) float64 {
	if len(shape) == 0 {
		return 0
	}
	return shape.Area()
}

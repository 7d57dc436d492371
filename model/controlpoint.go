package model

import (
	"math"

	"github.com/ctessum/geom"
	"github.com/tsawler/mlca/aperture"
)

// ControlPoint is one timestep in a beam's delivery sequence: a
// cumulative meterset weight plus the jaw and leaf positions in effect at
// that instant. The aperture shape and its perimeter decomposition are
// derived lazily on first access and cached.
//
// A ControlPoint is immutable after construction except for the fraction
// group's jaw-backfill pass, which runs before any derived geometry is
// read.
type ControlPoint struct {
	cumWeight  float64
	jaws       aperture.Jaws
	leaves     aperture.Leaves
	boundaries []float64

	gantry     *float64
	collimator *float64
	couch      *float64

	computed bool
	shape    geom.Polygon
	pathX    float64
	pathY    float64
}

// NewControlPoint builds a control point from its input record, the
// beam's leaf boundary array, and the analysis options. Axes without a
// recorded asymmetric jaw pair default to the halved maximum field size.
func NewControlPoint(data ControlPointData, boundaries []float64, opts Options) (*ControlPoint, error) {
	if !data.Leaves.IsZero() {
		if len(data.Leaves.A) != len(data.Leaves.B) {
			return nil, aperture.ErrBankMismatch
		}
		if len(boundaries) != len(data.Leaves.A)+1 {
			return nil, aperture.ErrBoundaryMismatch
		}
	}

	cp := &ControlPoint{
		cumWeight:  data.CumulativeWeight,
		leaves:     data.Leaves,
		boundaries: boundaries,
		gantry:     data.Gantry,
		collimator: data.Collimator,
		couch:      data.Couch,
	}
	cp.jaws = jawsFromPairs(data.AsymX, data.AsymY, opts)
	return cp, nil
}

// jawsFromPairs derives the jaw rectangle from optional asymmetric jaw
// position pairs. An absent pair defaults that axis to the symmetric
// maximum field size, halved.
func jawsFromPairs(asymX, asymY []float64, opts Options) aperture.Jaws {
	xMin, xMax := axisRange(asymX, opts.MaxFieldSizeX)
	yMin, yMax := axisRange(asymY, opts.MaxFieldSizeY)
	return aperture.Jaws{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

func axisRange(pair []float64, maxFieldSize float64) (min, max float64) {
	if len(pair) == 0 {
		half := maxFieldSize / 2
		return -half, half
	}
	min, max = pair[0], pair[0]
	for _, v := range pair[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	return min, max
}

// CumulativeWeight returns the cumulative meterset weight in [0, 1].
func (cp *ControlPoint) CumulativeWeight() float64 {
	return cp.cumWeight
}

// Jaws returns the jaw rectangle, post-backfill.
func (cp *ControlPoint) Jaws() aperture.Jaws {
	return cp.jaws
}

// Leaves returns the MLC bank positions; the zero value means a jaw-only
// control point.
func (cp *ControlPoint) Leaves() aperture.Leaves {
	return cp.leaves
}

// Gantry returns the gantry angle and whether the tag was recorded.
func (cp *ControlPoint) Gantry() (float64, bool) {
	return optAngle(cp.gantry)
}

// Collimator returns the collimator angle and whether the tag was recorded.
func (cp *ControlPoint) Collimator() (float64, bool) {
	return optAngle(cp.collimator)
}

// Couch returns the couch angle and whether the tag was recorded.
func (cp *ControlPoint) Couch() (float64, bool) {
	return optAngle(cp.couch)
}

func optAngle(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// Aperture returns the 2D aperture shape: the leaf outline intersected
// with the jaw rectangle, or the jaw rectangle alone for jaw-only points.
// The shape may be empty when the jaws fully block the leaf opening.
func (cp *ControlPoint) Aperture() geom.Polygon {
	cp.compute()
	return cp.shape
}

// Area returns the aperture area in mm².
func (cp *ControlPoint) Area() float64 {
	return aperture.Area(cp.Aperture())
}

// PerimeterX returns the x component of the aperture perimeter.
func (cp *ControlPoint) PerimeterX() float64 {
	cp.compute()
	return cp.pathX
}

// PerimeterY returns the y component of the aperture perimeter.
func (cp *ControlPoint) PerimeterY() float64 {
	cp.compute()
	return cp.pathY
}

// Perimeter returns the orthogonal path length of the aperture outline:
// the sum of the x and y perimeter components.
func (cp *ControlPoint) Perimeter() float64 {
	return cp.PerimeterX() + cp.PerimeterY()
}

func (cp *ControlPoint) compute() {
	if cp.computed {
		return
	}
	shape, err := aperture.Build(cp.jaws, cp.leaves, cp.boundaries)
	if err != nil {
		// Bank and boundary lengths were validated at construction.
		shape = geom.Polygon{}
	}
	cp.shape = shape
	cp.pathX, cp.pathY = aperture.XYPathLengths(shape)
	cp.computed = true
}

// setJaws replaces the jaw record during the fraction group's backfill
// pass, invalidating any derived geometry.
func (cp *ControlPoint) setJaws(j aperture.Jaws) {
	if cp.jaws == j {
		return
	}
	cp.jaws = j
	cp.computed = false
}

// Equal reports whether two control points deliver cumulative monitor
// units within ControlPointMUTolerance, given each point's beam meterset,
// and have every corresponding leaf position within
// ControlPointPositionTolerance. The tolerance applies to the scaled MU,
// not the raw weight, so points from beams with different metersets
// compare on what is actually delivered. It is a pure predicate; use
// CompareControlPoints for diagnostic detail.
func (cp *ControlPoint) Equal(other *ControlPoint, meterSet, otherMeterSet float64) bool {
	if math.Abs(cp.cumWeight*meterSet-other.cumWeight*otherMeterSet) > ControlPointMUTolerance {
		return false
	}
	return leavesWithin(cp.leaves, other.leaves, ControlPointPositionTolerance)
}

// leavesWithin reports whether two leaf records match in orientation and
// shape, with every paired position within tol.
func leavesWithin(a, b aperture.Leaves, tol float64) bool {
	if a.Orientation != b.Orientation {
		return false
	}
	if len(a.A) != len(b.A) || len(a.B) != len(b.B) {
		return false
	}
	for i := range a.A {
		if math.Abs(a.A[i]-b.A[i]) > tol {
			return false
		}
	}
	for i := range a.B {
		if math.Abs(a.B[i]-b.B[i]) > tol {
			return false
		}
	}
	return true
}

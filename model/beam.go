package model

import (
	"fmt"
	"math"
)

// Beam is an ordered sequence of control points delivered with a single
// meterset. Per-point arrays (cumulative MU, MU deltas, perimeters,
// areas, complexity scores) are derived from the control points in
// delivery order.
type Beam struct {
	name     string
	number   int
	meterSet float64
	cps      []*ControlPoint
	opts     Options
}

// NewBeam builds a beam from its input record and the meterset assigned
// by the fraction group.
func NewBeam(data BeamData, meterSet float64, opts Options) (*Beam, error) {
	name := data.Name
	if name == "" {
		name = "Unknown"
	}
	b := &Beam{
		name:     name,
		number:   data.Number,
		meterSet: meterSet,
		opts:     opts,
	}
	for i, cpd := range data.ControlPoints {
		cp, err := NewControlPoint(cpd, data.LeafBoundaries, opts)
		if err != nil {
			return nil, fmt.Errorf("beam %q control point %d: %w", name, i, err)
		}
		b.cps = append(b.cps, cp)
	}
	return b, nil
}

// Name returns the beam description or name, or "Unknown".
func (b *Beam) Name() string {
	return b.name
}

// Number returns the beam number used for fraction-group matching.
func (b *Beam) Number() int {
	return b.number
}

// MeterSet returns the beam's total monitor units.
func (b *Beam) MeterSet() float64 {
	return b.meterSet
}

// ControlPoints returns the control points in delivery order.
func (b *Beam) ControlPoints() []*ControlPoint {
	return b.cps
}

// ControlPointCount returns the number of control points.
func (b *Beam) ControlPointCount() int {
	return len(b.cps)
}

// CumulativeMU returns the cumulative monitor units at each control
// point: the cumulative weight scaled by the meterset.
func (b *Beam) CumulativeMU() []float64 {
	mu := make([]float64, len(b.cps))
	for i, cp := range b.cps {
		mu[i] = cp.CumulativeWeight() * b.meterSet
	}
	return mu
}

// ControlPointMU returns the monitor units delivered in the interval
// following each control point. No interval follows the final point, so
// the last entry is always 0.
func (b *Beam) ControlPointMU() []float64 {
	if len(b.cps) == 0 {
		return nil
	}
	cum := b.CumulativeMU()
	delta := make([]float64, len(cum))
	for i := 0; i < len(cum)-1; i++ {
		delta[i] = cum[i+1] - cum[i]
	}
	return delta
}

// PerimeterX returns the x perimeter component at each control point.
func (b *Beam) PerimeterX() []float64 {
	return b.perPoint((*ControlPoint).PerimeterX)
}

// PerimeterY returns the y perimeter component at each control point.
func (b *Beam) PerimeterY() []float64 {
	return b.perPoint((*ControlPoint).PerimeterY)
}

// Perimeters returns the total orthogonal perimeter at each control point.
func (b *Beam) Perimeters() []float64 {
	return b.perPoint((*ControlPoint).Perimeter)
}

// Areas returns the aperture area at each control point.
func (b *Beam) Areas() []float64 {
	return b.perPoint((*ControlPoint).Area)
}

func (b *Beam) perPoint(f func(*ControlPoint) float64) []float64 {
	out := make([]float64, len(b.cps))
	for i, cp := range b.cps {
		out[i] = f(cp)
	}
	return out
}

// GantryAngles returns the gantry angles of the control points that
// recorded one. Static beams typically record the angle on the first
// point only.
func (b *Beam) GantryAngles() []float64 {
	return b.angles((*ControlPoint).Gantry)
}

// CollimatorAngles returns the recorded collimator angles.
func (b *Beam) CollimatorAngles() []float64 {
	return b.angles((*ControlPoint).Collimator)
}

// CouchAngles returns the recorded couch (patient support) angles.
func (b *Beam) CouchAngles() []float64 {
	return b.angles((*ControlPoint).Couch)
}

func (b *Beam) angles(f func(*ControlPoint) (float64, bool)) []float64 {
	var out []float64
	for _, cp := range b.cps {
		if v, ok := f(cp); ok {
			out = append(out, v)
		}
	}
	return out
}

// ComplexityScores returns the Younge complexity score at each control
// point:
//
//	((Cx·perimeterX + Cy·perimeterY) · muDelta / area) / meterSet
//
// All scores are 0 when the meterset is not positive. A zero-area
// aperture (jaws fully blocking the leaf opening) contributes 0 rather
// than an undefined term.
func (b *Beam) ComplexityScores() []float64 {
	scores := make([]float64, len(b.cps))
	if b.meterSet <= 0 {
		return scores
	}
	mu := b.ControlPointMU()
	cx, cy := b.opts.ComplexityWeightX, b.opts.ComplexityWeightY
	for i, cp := range b.cps {
		area := cp.Area()
		if area == 0 {
			continue
		}
		scores[i] = (cx*cp.PerimeterX() + cy*cp.PerimeterY()) * mu[i] / area / b.meterSet
	}
	return scores
}

// ComplexityScore returns the sum of the per-point complexity scores.
func (b *Beam) ComplexityScore() float64 {
	var sum float64
	for _, s := range b.ComplexityScores() {
		sum += s
	}
	return sum
}

// Equal reports whether two beams have metersets within BeamMUTolerance
// and pairwise-equal control points: cumulative MU within
// ControlPointMUTolerance and leaf positions within
// ControlPointPositionTolerance. It is a pure predicate; use CompareBeams
// for diagnostic detail.
func (b *Beam) Equal(other *Beam) bool {
	if math.Abs(b.meterSet-other.meterSet) > BeamMUTolerance {
		return false
	}
	if len(b.cps) != len(other.cps) {
		return false
	}
	for i, cp := range b.cps {
		if !cp.Equal(other.cps[i], b.meterSet, other.meterSet) {
			return false
		}
	}
	return true
}

package model

import "math"

// Leaf bank labels used in comparison reports.
const (
	BankA = "A"
	BankB = "B"
)

// PositionMismatch records one leaf position differing beyond tolerance
// between two control points.
type PositionMismatch struct {
	Bank  string
	Index int
	Delta float64 // absolute difference in mm
}

// CompareControlPoints lists every leaf position differing by more than
// ControlPointPositionTolerance between two control points. An empty
// result means the leaf records match; orientation or bank-length
// mismatches are reported as a single mismatch at index -1.
func CompareControlPoints(a, b *ControlPoint) []PositionMismatch {
	if a.leaves.Orientation != b.leaves.Orientation ||
		len(a.leaves.A) != len(b.leaves.A) ||
		len(a.leaves.B) != len(b.leaves.B) {
		return []PositionMismatch{{Bank: BankA, Index: -1}}
	}
	var out []PositionMismatch
	for i := range a.leaves.A {
		if d := math.Abs(a.leaves.A[i] - b.leaves.A[i]); d > ControlPointPositionTolerance {
			out = append(out, PositionMismatch{Bank: BankA, Index: i, Delta: d})
		}
	}
	for i := range a.leaves.B {
		if d := math.Abs(a.leaves.B[i] - b.leaves.B[i]); d > ControlPointPositionTolerance {
			out = append(out, PositionMismatch{Bank: BankB, Index: i, Delta: d})
		}
	}
	return out
}

// BeamDiff summarizes how two beams differ.
type BeamDiff struct {
	// MeterSetDelta is the absolute meterset difference.
	MeterSetDelta float64
	// ControlPointCountDelta is the control-point count difference
	// (a minus b).
	ControlPointCountDelta int
	// FailedControlPoints lists indices of control-point pairs that do
	// not compare equal.
	FailedControlPoints []int
}

// InTolerance reports whether the diff is within the configured
// tolerances: equal counts, meterset within BeamMUTolerance, and no
// failed control points.
func (d BeamDiff) InTolerance() bool {
	return d.MeterSetDelta <= BeamMUTolerance &&
		d.ControlPointCountDelta == 0 &&
		len(d.FailedControlPoints) == 0
}

// CompareBeams reports where two beams differ. Unlike Beam.Equal it
// continues past the first failure so every mismatched control point is
// listed.
func CompareBeams(a, b *Beam) BeamDiff {
	d := BeamDiff{
		MeterSetDelta:          math.Abs(a.meterSet - b.meterSet),
		ControlPointCountDelta: len(a.cps) - len(b.cps),
	}
	n := len(a.cps)
	if len(b.cps) < n {
		n = len(b.cps)
	}
	for i := 0; i < n; i++ {
		if !a.cps[i].Equal(b.cps[i], a.meterSet, b.meterSet) {
			d.FailedControlPoints = append(d.FailedControlPoints, i)
		}
	}
	return d
}

// Package model provides the analyzed representation of an RT plan's
// delivery sequence.
//
// The hierarchy mirrors the plan structure, aggregated bottom-up:
//
//	Plan -> FxGroup -> Beam -> ControlPoint
//
// A [ControlPoint] owns one timestep's cumulative meterset weight and its
// jaw/leaf-derived aperture. A [Beam] orders control points, computes
// per-point MU deltas and complexity scores, and can drop zero-MU points
// for step-and-shoot beams. A [FxGroup] collects the beams a fraction
// group references, backfills missing jaw records, and sums MU and
// complexity across beams. A [Plan] carries identity metadata and emits
// one [SummaryRow] per fraction group.
//
// # Construction
//
// Plans are built from plain input records (see [PlanData]), typically
// produced by the rtplan package:
//
//	plan, err := model.NewPlan(data, model.DefaultOptions())
//
// All aggregation is a pure function of the input records and [Options];
// components are read-only after construction.
//
// # Complexity Score
//
// Per-point scores follow Younge et al. (2012): weighted x/y perimeter
// times the point's MU delta, divided by aperture area, normalized by the
// beam meterset. See [Beam.ComplexityScores].
//
// # Equality
//
// Equality predicates are pure and tolerance-based (see the tolerance
// constants). Diagnostic detail belongs to the comparison report
// functions such as [CompareControlPoints], never to the predicates.
package model

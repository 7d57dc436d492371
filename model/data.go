package model

import "github.com/tsawler/mlca/aperture"

// PlanData is the input record for one RT plan, as exposed by the record
// reader. All geometry and aggregation derives from these fields.
type PlanData struct {
	PlanName         string
	PatientName      string
	PatientID        string
	StudyInstanceUID string
	SOPInstanceUID   string
	// TPS identifies the treatment planning system (vendor and model).
	TPS string
	// Source identifies the file the record was read from.
	Source string

	FractionGroups []FxGroupData
	Beams          []BeamData
}

// FxGroupData is the input record for one fraction group.
type FxGroupData struct {
	// Fractions is the planned fraction count, or empty when the tag is
	// absent (reported as "UNKNOWN").
	Fractions string
	// ReferencedMU maps referenced beam numbers to their meterset. Beams
	// not present in this table are excluded from the group.
	ReferencedMU map[int]float64
}

// BeamData is the input record for one beam.
type BeamData struct {
	Number int
	// Name is the beam description or name; empty becomes "Unknown".
	Name string
	// LeafBoundaries holds N+1 edges bounding N leaf-width intervals
	// along the axis orthogonal to leaf travel. Nil for beams without an
	// MLC.
	LeafBoundaries []float64
	ControlPoints  []ControlPointData
}

// ControlPointData is the input record for one control point.
type ControlPointData struct {
	// CumulativeWeight is the cumulative meterset weight in [0, 1],
	// scaled by the beam meterset to obtain cumulative MU.
	CumulativeWeight float64

	// AsymX and AsymY are asymmetric jaw position pairs; nil when the
	// device was not recorded, in which case the axis defaults to the
	// halved maximum field size.
	AsymX []float64
	AsymY []float64

	// Leaves holds the MLC bank positions; the zero value means a
	// jaw-only control point.
	Leaves aperture.Leaves

	// Optional angle tags; nil when absent.
	Gantry     *float64
	Collimator *float64
	Couch      *float64
}

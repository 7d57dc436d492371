package model

import "github.com/tsawler/mlca/aperture"

// Tolerances for equality comparisons. All are absolute differences.
const (
	// BeamMUTolerance bounds the meterset difference between equal beams.
	BeamMUTolerance = 0.001
	// ControlPointMUTolerance bounds the cumulative MU difference between
	// equal control points.
	ControlPointMUTolerance = 0.00001
	// ControlPointPositionTolerance bounds the difference between
	// corresponding leaf positions of equal control points.
	ControlPointPositionTolerance = 0.0001
)

// Options configures plan analysis. Construct with DefaultOptions and
// adjust fields before building a Plan; Options is treated as immutable
// once analysis starts.
type Options struct {
	// MaxFieldSizeX and MaxFieldSizeY are the symmetric maximum field
	// sizes in mm. A control point with no recorded asymmetric jaw pair
	// defaults to the halved maximum on that axis.
	MaxFieldSizeX float64
	MaxFieldSizeY float64

	// ComplexityWeightX and ComplexityWeightY weight the x and y
	// perimeter components in the complexity score.
	ComplexityWeightX float64
	ComplexityWeightY float64

	// IgnoreZeroMU drops control points whose MU delta is exactly zero
	// from beam summaries, as for step-and-shoot beams where intermediate
	// accumulation is meaningless.
	IgnoreZeroMU bool
}

// DefaultOptions returns the standard analysis options: a 400 mm maximum
// field size per axis and unit complexity weights.
func DefaultOptions() Options {
	return Options{
		MaxFieldSizeX:     400.0,
		MaxFieldSizeY:     400.0,
		ComplexityWeightX: 1.0,
		ComplexityWeightY: 1.0,
	}
}

// maxFieldJaws returns the jaw rectangle a control point receives when no
// asymmetric jaw pair was recorded on either axis.
func (o Options) maxFieldJaws() aperture.Jaws {
	return aperture.Jaws{
		XMin: -o.MaxFieldSizeX / 2,
		XMax: o.MaxFieldSizeX / 2,
		YMin: -o.MaxFieldSizeY / 2,
		YMax: o.MaxFieldSizeY / 2,
	}
}

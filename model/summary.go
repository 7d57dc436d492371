package model

// BeamSummary is the per-control-point time series for one beam. All
// slices share the same length. Angle series recorded on only the first
// control point are broadcast to the full length; with IgnoreZeroMU set,
// rows whose MU delta is exactly zero are dropped.
type BeamSummary struct {
	ControlPoint     []int
	CumulativeWeight []float64
	CumulativeMU     []float64
	ControlPointMU   []float64
	Gantry           []float64
	Collimator       []float64
	Couch            []float64
	JawX1            []float64
	JawX2            []float64
	JawY1            []float64
	JawY2            []float64
	Area             []float64
	PerimeterX       []float64
	PerimeterY       []float64
	Perimeter        []float64
	ComplexityScore  []float64
}

// Summary returns the beam's per-control-point time series.
func (b *Beam) Summary() *BeamSummary {
	n := len(b.cps)
	s := &BeamSummary{
		ControlPoint:     make([]int, n),
		CumulativeWeight: make([]float64, n),
		CumulativeMU:     b.CumulativeMU(),
		ControlPointMU:   b.ControlPointMU(),
		Gantry:           broadcast(b.GantryAngles(), n),
		Collimator:       broadcast(b.CollimatorAngles(), n),
		Couch:            broadcast(b.CouchAngles(), n),
		JawX1:            make([]float64, n),
		JawX2:            make([]float64, n),
		JawY1:            make([]float64, n),
		JawY2:            make([]float64, n),
		Area:             b.Areas(),
		PerimeterX:       b.PerimeterX(),
		PerimeterY:       b.PerimeterY(),
		Perimeter:        b.Perimeters(),
		ComplexityScore:  b.ComplexityScores(),
	}
	for i, cp := range b.cps {
		s.ControlPoint[i] = i + 1
		s.CumulativeWeight[i] = cp.CumulativeWeight()
		j := cp.Jaws()
		s.JawX1[i], s.JawX2[i] = j.XMin, j.XMax
		s.JawY1[i], s.JawY2[i] = j.YMin, j.YMax
	}

	if b.opts.IgnoreZeroMU {
		s.filterZeroMU()
	}
	return s
}

// broadcast replicates a length-1 series to n entries; other lengths pass
// through unchanged.
func broadcast(v []float64, n int) []float64 {
	if len(v) != 1 || n <= 1 {
		return v
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = v[0]
	}
	return out
}

// filterZeroMU drops every row whose MU delta is exactly zero. Series
// whose length does not match the control-point count (absent angle tags)
// are left as-is.
func (s *BeamSummary) filterZeroMU() {
	n := len(s.ControlPointMU)
	keep := make([]int, 0, n)
	for i, mu := range s.ControlPointMU {
		if mu != 0 {
			keep = append(keep, i)
		}
	}

	ints := func(v []int) []int {
		if len(v) != n {
			return v
		}
		out := make([]int, 0, len(keep))
		for _, i := range keep {
			out = append(out, v[i])
		}
		return out
	}
	floats := func(v []float64) []float64 {
		if len(v) != n {
			return v
		}
		out := make([]float64, 0, len(keep))
		for _, i := range keep {
			out = append(out, v[i])
		}
		return out
	}

	s.ControlPoint = ints(s.ControlPoint)
	s.CumulativeWeight = floats(s.CumulativeWeight)
	s.CumulativeMU = floats(s.CumulativeMU)
	s.Gantry = floats(s.Gantry)
	s.Collimator = floats(s.Collimator)
	s.Couch = floats(s.Couch)
	s.JawX1 = floats(s.JawX1)
	s.JawX2 = floats(s.JawX2)
	s.JawY1 = floats(s.JawY1)
	s.JawY2 = floats(s.JawY2)
	s.Area = floats(s.Area)
	s.PerimeterX = floats(s.PerimeterX)
	s.PerimeterY = floats(s.PerimeterY)
	s.Perimeter = floats(s.Perimeter)
	s.ComplexityScore = floats(s.ComplexityScore)
	s.ControlPointMU = floats(s.ControlPointMU)
}

// SummaryRow is the flat per-fraction-group record emitted for a plan.
type SummaryRow struct {
	PatientName       string
	PatientID         string
	StudyInstanceUID  string
	SOPInstanceUID    string
	TPS               string
	PlanName          string
	FxGroupCount      int
	FxGroup           int // 1-based fraction group index
	Fractions         string
	PlanMU            float64
	BeamCount         int
	ControlPointCount int
	ComplexityScore   float64
	Source            string
}

package model

// FxGroup is the set of beams delivered together as one fraction group.
// Beams are matched to the group by beam-number lookup against the
// group's referenced-beam meterset table; unreferenced beams are
// excluded. The jaw-backfill pass runs once at construction.
type FxGroup struct {
	fractions string
	beams     []*Beam
	opts      Options
}

// NewFxGroup builds a fraction group from its input record and the plan's
// beam records, preserving beam-sequence order.
func NewFxGroup(data FxGroupData, beams []BeamData, opts Options) (*FxGroup, error) {
	fxs := data.Fractions
	if fxs == "" {
		fxs = "UNKNOWN"
	}
	g := &FxGroup{fractions: fxs, opts: opts}
	for _, bd := range beams {
		meterSet, ok := data.ReferencedMU[bd.Number]
		if !ok {
			continue
		}
		b, err := NewBeam(bd, meterSet, opts)
		if err != nil {
			return nil, err
		}
		g.beams = append(g.beams, b)
	}
	g.backfillJaws()
	return g, nil
}

// backfillJaws propagates each beam's first jaw record to control points
// that defaulted to the maximum field size. Plans with static jaws often
// record the jaw tags only on the first control point; the defaulted
// rectangle on later points marks the missing tag. Idempotent.
func (g *FxGroup) backfillJaws() {
	maxField := g.opts.maxFieldJaws()
	for _, b := range g.beams {
		if len(b.cps) == 0 {
			continue
		}
		first := b.cps[0].Jaws()
		for _, cp := range b.cps {
			if cp.Jaws() == maxField {
				cp.setJaws(first)
			}
		}
	}
}

// Fractions returns the planned fraction count, or "UNKNOWN".
func (g *FxGroup) Fractions() string {
	return g.fractions
}

// Beams returns the group's beams in beam-sequence order.
func (g *FxGroup) Beams() []*Beam {
	return g.beams
}

// BeamCount returns the number of referenced beams.
func (g *FxGroup) BeamCount() int {
	return len(g.beams)
}

// BeamNames returns the name of each beam.
func (g *FxGroup) BeamNames() []string {
	names := make([]string, len(g.beams))
	for i, b := range g.beams {
		names[i] = b.Name()
	}
	return names
}

// BeamMU returns the meterset of each beam.
func (g *FxGroup) BeamMU() []float64 {
	mu := make([]float64, len(g.beams))
	for i, b := range g.beams {
		mu[i] = b.MeterSet()
	}
	return mu
}

// MU returns the total monitor units for the group: the sum of the beam
// metersets.
func (g *FxGroup) MU() float64 {
	var sum float64
	for _, b := range g.beams {
		sum += b.MeterSet()
	}
	return sum
}

// ControlPointCounts returns the control-point count of each beam.
func (g *FxGroup) ControlPointCounts() []int {
	counts := make([]int, len(g.beams))
	for i, b := range g.beams {
		counts[i] = b.ControlPointCount()
	}
	return counts
}

// ControlPointCount returns the total control points across all beams.
func (g *FxGroup) ControlPointCount() int {
	var sum int
	for _, b := range g.beams {
		sum += b.ControlPointCount()
	}
	return sum
}

// ComplexityScore returns the group's Younge complexity score: the sum
// over beams of their per-point scores.
func (g *FxGroup) ComplexityScore() float64 {
	var sum float64
	for _, b := range g.beams {
		sum += b.ComplexityScore()
	}
	return sum
}

// Equal reports whether two fraction groups hold pairwise-equal beams
// with matching names. It is a pure predicate.
func (g *FxGroup) Equal(other *FxGroup) bool {
	if len(g.beams) != len(other.beams) {
		return false
	}
	for i, b := range g.beams {
		if b.Name() != other.beams[i].Name() {
			return false
		}
		if !b.Equal(other.beams[i]) {
			return false
		}
	}
	return true
}

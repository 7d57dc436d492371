package model

import (
	"math"
	"strings"
	"testing"
)

// twoGroupPlanData builds a plan record with two fraction groups sharing
// one referenced beam each.
func twoGroupPlanData() PlanData {
	beams := []BeamData{squareBeamData(0, 0.5, 1.0), squareBeamData(0, 1.0)}
	beams[0].Number, beams[0].Name = 1, "arc 1"
	beams[1].Number, beams[1].Name = 2, "arc 2"

	return PlanData{
		PlanName:         "prostate vmat",
		PatientName:      "ANON1234",
		PatientID:        "MRN-0042",
		StudyInstanceUID: "1.2.3.4",
		SOPInstanceUID:   "1.2.3.4.5",
		TPS:              "Vendor TPS 16.1",
		Source:           "rtplan.dcm",
		FractionGroups: []FxGroupData{
			{Fractions: "28", ReferencedMU: map[int]float64{1: 120.5}},
			{Fractions: "5", ReferencedMU: map[int]float64{2: 80}},
		},
		Beams: beams,
	}
}

func mustPlan(t *testing.T, data PlanData, opts Options) *Plan {
	t.Helper()
	p, err := NewPlan(data, opts)
	if err != nil {
		t.Fatalf("NewPlan() failed: %v", err)
	}
	return p
}

func TestPlanIdentity(t *testing.T) {
	p := mustPlan(t, twoGroupPlanData(), DefaultOptions())

	if p.Name() != "prostate vmat" {
		t.Errorf("Name() = %q, want %q", p.Name(), "prostate vmat")
	}
	if p.PatientName() != "ANON1234" {
		t.Errorf("PatientName() = %q, want %q", p.PatientName(), "ANON1234")
	}
	if p.PatientID() != "MRN-0042" {
		t.Errorf("PatientID() = %q, want %q", p.PatientID(), "MRN-0042")
	}
	if p.TPS() != "Vendor TPS 16.1" {
		t.Errorf("TPS() = %q, want %q", p.TPS(), "Vendor TPS 16.1")
	}
	if p.Source() != "rtplan.dcm" {
		t.Errorf("Source() = %q, want %q", p.Source(), "rtplan.dcm")
	}
	if len(p.FxGroups()) != 2 {
		t.Errorf("FxGroups() has %d entries, want 2", len(p.FxGroups()))
	}
}

func TestPlanSummary(t *testing.T) {
	p := mustPlan(t, twoGroupPlanData(), DefaultOptions())

	rows := p.Summary()
	if len(rows) != 2 {
		t.Fatalf("Summary() has %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.FxGroup != 1 || rows[1].FxGroup != 2 {
		t.Errorf("FxGroup indices = (%d, %d), want 1-based (1, 2)", first.FxGroup, rows[1].FxGroup)
	}
	if first.FxGroupCount != 2 {
		t.Errorf("FxGroupCount = %d, want 2", first.FxGroupCount)
	}
	if first.Fractions != "28" {
		t.Errorf("Fractions = %q, want \"28\"", first.Fractions)
	}
	if math.Abs(first.PlanMU-120.5) > 1e-9 {
		t.Errorf("PlanMU = %v, want 120.5", first.PlanMU)
	}
	if first.BeamCount != 1 || first.ControlPointCount != 3 {
		t.Errorf("counts = (%d, %d), want (1, 3)", first.BeamCount, first.ControlPointCount)
	}
	if first.PatientName != "ANON1234" || first.Source != "rtplan.dcm" {
		t.Errorf("identity = (%q, %q), want carried from the plan", first.PatientName, first.Source)
	}
	if first.ComplexityScore <= 0 {
		t.Errorf("ComplexityScore = %v, want > 0", first.ComplexityScore)
	}
}

func TestPlanComplexityScores(t *testing.T) {
	p := mustPlan(t, twoGroupPlanData(), DefaultOptions())

	scores := p.ComplexityScores()
	if len(scores) != 2 {
		t.Fatalf("ComplexityScores() has %d entries, want 2", len(scores))
	}
	for i, g := range p.FxGroups() {
		if scores[i] != g.ComplexityScore() {
			t.Errorf("ComplexityScores()[%d] = %v, want %v", i, scores[i], g.ComplexityScore())
		}
	}
}

func TestPlanEqual(t *testing.T) {
	data := twoGroupPlanData()
	p := mustPlan(t, data, DefaultOptions())

	t.Run("reflexive", func(t *testing.T) {
		if !p.Equal(p) {
			t.Error("Equal() with itself = false, want true")
		}
	})

	t.Run("same data", func(t *testing.T) {
		if !p.Equal(mustPlan(t, data, DefaultOptions())) {
			t.Error("Equal() with identical plan = false, want true")
		}
	})

	t.Run("identity change", func(t *testing.T) {
		other := twoGroupPlanData()
		other.PatientID = "MRN-0099"
		if p.Equal(mustPlan(t, other, DefaultOptions())) {
			t.Error("Equal() with different MRN = true, want false")
		}
	})

	t.Run("group order", func(t *testing.T) {
		other := twoGroupPlanData()
		other.FractionGroups[0], other.FractionGroups[1] = other.FractionGroups[1], other.FractionGroups[0]
		if p.Equal(mustPlan(t, other, DefaultOptions())) {
			t.Error("Equal() with swapped fraction groups = true, want false")
		}
	})

	t.Run("meterset change", func(t *testing.T) {
		other := twoGroupPlanData()
		other.FractionGroups[0].ReferencedMU[1] = 121.0
		if p.Equal(mustPlan(t, other, DefaultOptions())) {
			t.Error("Equal() with different beam meterset = true, want false")
		}
	})
}

func TestPlanString(t *testing.T) {
	p := mustPlan(t, twoGroupPlanData(), DefaultOptions())

	s := p.String()
	wantLines := []string{
		"Patient Name:        ANON1234",
		"Patient MRN:         MRN-0042",
		"Plan name:           prostate vmat",
		"# of Fx Group(s):    2",
		"Plan MUs:            120.5, 80.0",
	}
	for _, line := range wantLines {
		if !strings.Contains(s, line) {
			t.Errorf("String() missing line %q\ngot:\n%s", line, s)
		}
	}
	if !strings.Contains(s, "Complexity Score(s): ") {
		t.Errorf("String() missing complexity line\ngot:\n%s", s)
	}
}

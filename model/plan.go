package model

import (
	"fmt"
	"strings"
)

// Plan is the analyzed RT plan: identity metadata plus one FxGroup per
// fraction group record, in record order.
type Plan struct {
	planName         string
	patientName      string
	patientID        string
	studyInstanceUID string
	sopInstanceUID   string
	tps              string
	source           string

	groups []*FxGroup
}

// NewPlan builds a plan and all of its fraction groups from the input
// record.
func NewPlan(data PlanData, opts Options) (*Plan, error) {
	p := &Plan{
		planName:         data.PlanName,
		patientName:      data.PatientName,
		patientID:        data.PatientID,
		studyInstanceUID: data.StudyInstanceUID,
		sopInstanceUID:   data.SOPInstanceUID,
		tps:              data.TPS,
		source:           data.Source,
	}
	for i, fg := range data.FractionGroups {
		g, err := NewFxGroup(fg, data.Beams, opts)
		if err != nil {
			return nil, fmt.Errorf("fraction group %d: %w", i+1, err)
		}
		p.groups = append(p.groups, g)
	}
	return p, nil
}

// Name returns the plan label.
func (p *Plan) Name() string { return p.planName }

// PatientName returns the patient name.
func (p *Plan) PatientName() string { return p.patientName }

// PatientID returns the patient identifier (MRN).
func (p *Plan) PatientID() string { return p.patientID }

// StudyInstanceUID returns the study instance UID.
func (p *Plan) StudyInstanceUID() string { return p.studyInstanceUID }

// SOPInstanceUID returns the SOP instance UID.
func (p *Plan) SOPInstanceUID() string { return p.sopInstanceUID }

// TPS returns the treatment planning system vendor and model.
func (p *Plan) TPS() string { return p.tps }

// Source returns the identifier of the file the plan was read from.
func (p *Plan) Source() string { return p.source }

// FxGroups returns the fraction groups in record order.
func (p *Plan) FxGroups() []*FxGroup {
	return p.groups
}

// ComplexityScores returns the Younge complexity score of each fraction
// group.
func (p *Plan) ComplexityScores() []float64 {
	scores := make([]float64, len(p.groups))
	for i, g := range p.groups {
		scores[i] = g.ComplexityScore()
	}
	return scores
}

// Summary returns one row per fraction group, in record order.
func (p *Plan) Summary() []SummaryRow {
	rows := make([]SummaryRow, len(p.groups))
	for i, g := range p.groups {
		rows[i] = SummaryRow{
			PatientName:       p.patientName,
			PatientID:         p.patientID,
			StudyInstanceUID:  p.studyInstanceUID,
			SOPInstanceUID:    p.sopInstanceUID,
			TPS:               p.tps,
			PlanName:          p.planName,
			FxGroupCount:      len(p.groups),
			FxGroup:           i + 1,
			Fractions:         g.Fractions(),
			PlanMU:            g.MU(),
			BeamCount:         g.BeamCount(),
			ControlPointCount: g.ControlPointCount(),
			ComplexityScore:   g.ComplexityScore(),
			Source:            p.source,
		}
	}
	return rows
}

// Equal reports whether two plans have matching identity fields and
// pairwise-equal fraction groups. It is a pure predicate.
func (p *Plan) Equal(other *Plan) bool {
	if p.planName != other.planName ||
		p.patientName != other.patientName ||
		p.patientID != other.patientID ||
		p.studyInstanceUID != other.studyInstanceUID ||
		p.sopInstanceUID != other.sopInstanceUID ||
		p.tps != other.tps {
		return false
	}
	if len(p.groups) != len(other.groups) {
		return false
	}
	for i, g := range p.groups {
		if !g.Equal(other.groups[i]) {
			return false
		}
	}
	return true
}

// String returns a multi-line human-readable plan summary.
func (p *Plan) String() string {
	mu := make([]string, len(p.groups))
	beams := make([]string, len(p.groups))
	cps := make([]string, len(p.groups))
	scores := make([]string, len(p.groups))
	for i, g := range p.groups {
		mu[i] = fmt.Sprintf("%0.1f", g.MU())
		beams[i] = fmt.Sprintf("%d", g.BeamCount())
		cps[i] = fmt.Sprintf("%d", g.ControlPointCount())
		scores[i] = fmt.Sprintf("%0.3f", g.ComplexityScore())
	}
	lines := []string{
		"Patient Name:        " + p.patientName,
		"Patient MRN:         " + p.patientID,
		"Study Instance UID:  " + p.studyInstanceUID,
		"SOP Instance UID:    " + p.sopInstanceUID,
		"TPS:                 " + p.tps,
		"Plan name:           " + p.planName,
		fmt.Sprintf("# of Fx Group(s):    %d", len(p.groups)),
		"Plan MUs:            " + strings.Join(mu, ", "),
		"Beam Count(s):       " + strings.Join(beams, ", "),
		"Control Point(s):    " + strings.Join(cps, ", "),
		"Complexity Score(s): " + strings.Join(scores, ", "),
	}
	return strings.Join(lines, "\n")
}

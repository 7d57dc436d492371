package batch

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/tsawler/mlca/model"
)

// Columns is the fixed summary CSV header, one column set per
// fraction-group row.
var Columns = []string{
	"Patient Name",
	"Patient MRN",
	"Study Instance UID",
	"SOP Instance UID",
	"TPS",
	"Plan name",
	"# of Fx Group(s)",
	"Fx Group #",
	"Fractions",
	"Plan MUs",
	"Beam Count(s)",
	"Control Point(s)",
	"Complexity Score(s)",
	"File Name",
}

// WriteCSV serializes summary rows with the fixed header. Monitor units
// are formatted to 1 decimal and complexity scores to 3.
func WriteCSV(w io.Writer, rows []model.SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(record(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func record(r model.SummaryRow) []string {
	return []string{
		r.PatientName,
		r.PatientID,
		r.StudyInstanceUID,
		r.SOPInstanceUID,
		r.TPS,
		r.PlanName,
		strconv.Itoa(r.FxGroupCount),
		strconv.Itoa(r.FxGroup),
		r.Fractions,
		fmt.Sprintf("%0.1f", r.PlanMU),
		strconv.Itoa(r.BeamCount),
		strconv.Itoa(r.ControlPointCount),
		fmt.Sprintf("%0.3f", r.ComplexityScore),
		r.Source,
	}
}

// Package mlca derives aperture complexity metrics for radiotherapy
// treatment beams from multi-leaf collimator and jaw positions in
// DICOM-RT Plan files.
//
// Basic usage:
//
//	plan, err := mlca.Open("rtplan.dcm").Plan()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(plan.ComplexityScores())
//
// With options:
//
//	rows, err := mlca.Open("rtplan.dcm").
//	    MaxFieldSize(300, 300).
//	    Weights(0.5, 0.9).
//	    IgnoreZeroMU().
//	    Summary()
//
// For many files, the batch package runs the same pipeline across a
// worker pool; the lower-level model and rtplan packages are also
// available.
package mlca

import (
	"github.com/tsawler/mlca/model"
	"github.com/tsawler/mlca/rtplan"
)

// Version is the library version, used in the default CSV file name.
const Version = "1.0.0"

// Analyzer configures and runs the analysis of one RT plan file.
type Analyzer struct {
	path string
	opts model.Options
}

// Open prepares an analyzer for an RT plan file. The file is read when a
// terminal operation such as Plan or Summary is called.
func Open(path string) *Analyzer {
	return &Analyzer{
		path: path,
		opts: model.DefaultOptions(),
	}
}

// MaxFieldSize sets the symmetric maximum field size per axis in mm,
// used when a control point records no asymmetric jaw pair.
func (a *Analyzer) MaxFieldSize(x, y float64) *Analyzer {
	a.opts.MaxFieldSizeX = x
	a.opts.MaxFieldSizeY = y
	return a
}

// Weights sets the x and y perimeter weights of the complexity score.
func (a *Analyzer) Weights(x, y float64) *Analyzer {
	a.opts.ComplexityWeightX = x
	a.opts.ComplexityWeightY = y
	return a
}

// IgnoreZeroMU drops zero-MU control points from beam summaries, as for
// step-and-shoot beams.
func (a *Analyzer) IgnoreZeroMU() *Analyzer {
	a.opts.IgnoreZeroMU = true
	return a
}

// Options returns the analysis options as currently configured.
func (a *Analyzer) Options() model.Options {
	return a.opts
}

// Plan reads the file and builds the analyzed plan.
func (a *Analyzer) Plan() (*model.Plan, error) {
	return rtplan.ReadFile(a.path, a.opts)
}

// Summary reads the file and returns one row per fraction group.
func (a *Analyzer) Summary() ([]model.SummaryRow, error) {
	plan, err := a.Plan()
	if err != nil {
		return nil, err
	}
	return plan.Summary(), nil
}

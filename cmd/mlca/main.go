// Command mlca scans a directory for DICOM-RT Plan files, analyzes MLC
// aperture complexity, and writes one summary CSV row per fraction
// group.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/tsawler/mlca"
	"github.com/tsawler/mlca/batch"
	"github.com/tsawler/mlca/model"
	"github.com/tsawler/mlca/rtplan"
)

func main() {
	defaults := model.DefaultOptions()

	outputFile := flag.String("of", "", "output file name (default mlca_<version>_results_<timestamp>.csv)")
	weightX := flag.Float64("xw", defaults.ComplexityWeightX, "complexity weight for the x-dimension")
	weightY := flag.Float64("yw", defaults.ComplexityWeightY, "complexity weight for the y-dimension")
	fieldX := flag.Float64("xs", defaults.MaxFieldSizeX, "maximum field size in the x-dimension (mm)")
	fieldY := flag.Float64("ys", defaults.MaxFieldSizeY, "maximum field size in the y-dimension (mm)")
	workers := flag.Int("n", 1, "number of parallel processes")
	verbose := flag.Bool("v", false, "print per-file results as they are analyzed")
	printVersion := flag.Bool("ver", false, "print the version and exit")
	flag.Parse()

	if *printVersion {
		fmt.Printf("mlca v%s\n", mlca.Version)
		if flag.NArg() == 0 {
			return
		}
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "mlca: error: a directory containing DICOM-RT Plan files is required")
		flag.Usage()
		os.Exit(2)
	}
	initDir := flag.Arg(0)

	opts := defaults
	opts.ComplexityWeightX = *weightX
	opts.ComplexityWeightY = *weightY
	opts.MaxFieldSizeX = *fieldX
	opts.MaxFieldSizeY = *fieldY

	logger := log.New(os.Stderr, "", log.LstdFlags)

	files, err := findFiles(initDir)
	if err != nil {
		logger.Fatalf("scan %s: %v", initDir, err)
	}
	plans := filterDICOM(files)
	logger.Printf("found %d files, %d DICOM candidates", len(files), len(plans))

	cfg := batch.Config{
		Workers: *workers,
		Options: opts,
	}
	if *verbose {
		cfg.Logger = logger
	}
	report := batch.Run(context.Background(), plans, cfg)
	logger.Printf("run %s: %d valid plan files, %d failed, took %s",
		report.RunID, report.PlanCount(), report.FailureCount(),
		report.Finished.Sub(report.Started).Round(time.Millisecond))

	name := *outputFile
	if name == "" {
		name = defaultOutputName(time.Now())
	}
	out, err := os.Create(name)
	if err != nil {
		logger.Fatalf("create %s: %v", name, err)
	}
	defer out.Close()

	if err := batch.WriteCSV(out, report.Rows()); err != nil {
		logger.Fatalf("write %s: %v", name, err)
	}
	logger.Printf("summary written to %s", name)
}

// findFiles lists every regular file under root, recursively.
func findFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// filterDICOM keeps files carrying a DICOM preamble. Whether a candidate
// really is an RT plan is decided by the full parse in the batch run.
func filterDICOM(files []string) []string {
	var out []string
	for _, f := range files {
		if rtplan.Detect(f) {
			out = append(out, f)
		}
	}
	return out
}

func defaultOutputName(now time.Time) string {
	return fmt.Sprintf("mlca_%s_results_%s.csv", mlca.Version, now.Format("2006-01-02_15-04-05"))
}

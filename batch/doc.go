// Package batch analyzes many RT plan files concurrently and serializes
// the combined summary.
//
// Processing is embarrassingly parallel at file granularity: each worker
// owns one file path, runs the full parse, geometry and aggregation
// pipeline, and reports a per-file [Result]. A failing file never aborts
// the batch; it is recorded in the [Report] and skipped.
//
//	report := batch.Run(ctx, paths, batch.Config{Workers: 4})
//	err := batch.WriteCSV(w, report.Rows())
//
// Result order across files follows completion and is not significant;
// the fraction-group row order within each plan is preserved.
package batch

// Package rtplan reads DICOM-RT Plan files into the model package's
// input records.
//
// The package is a thin structured-record reader over a decoded DICOM
// dataset: it resolves the named sequences and scalar tags the analysis
// needs (fraction groups, referenced beam metersets, beams, leaf
// boundaries, control points, beam limiting device positions) and leaves
// everything else untouched. Optional tags are resolved once here, never
// probed during computation.
//
//	plan, err := rtplan.ReadFile("rtplan.dcm", model.DefaultOptions())
//
// Device types are matched case-insensitively; only "mlcx", "mlcy",
// "asymx" and "asymy" entries carrying a position array are consumed.
// Identity strings are decoded per the dataset's specific character set.
//
// [Detect] offers a cheap DICM-preamble sniff for directory scans.
//
// DICOM decoding is provided by github.com/suyashkumar/dicom.
package rtplan

// Package dataset loads labeled numeric tables from delimited text files
// into dense gonum matrices.
//
// What & Why:
//
//	Most teaching and benchmarking datasets (Iris, Wine, Seeds, …) ship as
//	plain text: one observation per line, real-valued feature columns, and
//	a class label tucked into one of the columns. Package dataset turns
//	such files into a Table — an N×D *mat.Dense plus per-row labels —
//	ready for scaling, decomposition, or clustering.
//
// Core model:
//
//   - Table — immutable-by-convention container: N observations, D features,
//     one optional string label per observation.
//   - Parse / Load — deterministic, single-pass readers with validated
//     functional options (delimiter, label column, comment prefix).
//   - Iris — the canonical 150×4 Iris table, embedded in the package so
//     examples and tests need no filesystem access.
//
// Guarantees:
//
//   - Row order of the source is preserved exactly.
//   - Every feature cell is a finite float64 unless WithAllowNonFinite().
//   - All errors are sentinel-based (ErrEmptyDataset, ErrRaggedRow, …) and
//     wrapped with the offending line number where applicable.
//
// Complexity: parsing is O(N·D) time, O(N·D) memory — one dense copy, no
// intermediate per-row allocations beyond the scanner's buffer.
//
// See example_test.go for runnable walkthroughs.
package dataset

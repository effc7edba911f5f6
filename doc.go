// Package tablediff compares two tabular datasets ("before" and "after")
// sharing a common column layout and classifies every row as deleted,
// added, or modified.
//
// Rows are matched across the two tables by a composite key built from a
// user-chosen ordered set of identifier columns. Matched rows are compared
// field by field over a user-chosen set of compare columns using string
// equality. The result is four tables (deleted, added, modified-before,
// modified-after), each projected to the union of the key and compare
// columns, which can be exported as a three-sheet Excel report.
//
// # Supported input formats
//
//   - CSV files (.csv)
//   - TSV files (.tsv)
//   - LTSV files (.ltsv)
//   - Parquet files (.parquet)
//   - Excel XLSX workbooks (.xlsx, first sheet)
//   - Compressed variants of the above (.gz, .bz2, .xz, .zst)
//
// # Basic Usage
//
//	result, err := tablediff.CompareFiles("before.csv", "after.csv",
//		[]string{"id"}, []string{"name", "val"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := tablediff.WriteReport("report.xlsx", result); err != nil {
//		log.Fatal(err)
//	}
//
// All cell values are treated as strings end to end: a numeric 5 and a
// textual "5" that render identically are considered equal. Typed sources
// such as Parquet are rendered with a fixed canonical formatting (booleans
// as 1/0, nulls as empty strings, base-10 integers, shortest round-trip
// floats) so comparisons stay deterministic.
package tablediff

package tablediff

import (
	"strconv"
	"strings"
)

// KeySeparator joins key-column values in the human-readable form of a
// composite key. It is used for display only; row matching relies on a
// length-prefixed encoding that cannot collide even when a field value
// contains the separator.
const KeySeparator = "||"

// Result holds the outcome of reconciling a before table against an
// after table. All four tables carry the same projected header: the key
// columns first, followed by the compare columns not already selected
// as keys.
type Result struct {
	// Deleted contains before rows whose composite key is absent from
	// the after table, in before-table order.
	Deleted *Table
	// Added contains after rows whose composite key is absent from the
	// before table, in after-table order.
	Added *Table
	// ModifiedBefore contains the before side of every modified pair,
	// ordered by first appearance in the before table.
	ModifiedBefore *Table
	// ModifiedAfter contains the after side of every modified pair,
	// row-aligned with ModifiedBefore.
	ModifiedAfter *Table
}

// Summary holds aggregate row counts for a reconciliation result.
type Summary struct {
	Deleted  int
	Added    int
	Modified int
}

// Summary returns the row counts of the result tables.
func (r *Result) Summary() Summary {
	return Summary{
		Deleted:  r.Deleted.Len(),
		Added:    r.Added.Len(),
		Modified: r.ModifiedBefore.Len(),
	}
}

// Empty reports whether the two tables were identical under the chosen
// key and compare columns.
func (r *Result) Empty() bool {
	s := r.Summary()
	return s.Deleted == 0 && s.Added == 0 && s.Modified == 0
}

// Reconcile compares two tables sharing the same column set and
// classifies rows as deleted, added, or modified.
//
// Rows are matched by a composite key built from keyColumns in the
// given order. Matched rows are compared field by field over
// compareColumns using string equality; a pair differing in at least
// one compare column becomes a modified pair. All output tables are
// projected to the union of key and compare columns.
//
// keyColumns and compareColumns must be non-empty and must reference
// existing columns, otherwise an ErrInvalidInput-wrapped error is
// returned. The two tables must share the same column set, otherwise a
// LayoutError is returned.
//
// If a composite key occurs more than once within one table, only the
// first occurrence participates in matching; later duplicates are
// ignored. Guaranteeing key uniqueness is the caller's responsibility.
func Reconcile(before, after *Table, keyColumns, compareColumns []string) (*Result, error) {
	if len(keyColumns) == 0 {
		return nil, invalidInputError("key columns must not be empty")
	}
	if len(compareColumns) == 0 {
		return nil, invalidInputError("compare columns must not be empty")
	}
	if layoutErr := LayoutDiff(before, after); layoutErr != nil {
		return nil, layoutErr
	}

	outputColumns := projectColumns(keyColumns, compareColumns)

	beforeKeyIdx, err := before.columnIndexes(keyColumns)
	if err != nil {
		return nil, err
	}
	afterKeyIdx, err := after.columnIndexes(keyColumns)
	if err != nil {
		return nil, err
	}
	beforeOutIdx, err := before.columnIndexes(outputColumns)
	if err != nil {
		return nil, err
	}
	afterOutIdx, err := after.columnIndexes(outputColumns)
	if err != nil {
		return nil, err
	}
	beforeCmpIdx, err := before.columnIndexes(compareColumns)
	if err != nil {
		return nil, err
	}
	afterCmpIdx, err := after.columnIndexes(compareColumns)
	if err != nil {
		return nil, err
	}

	// Hash index from composite key to first-occurrence row, so key
	// membership and row lookup stay O(1) per row.
	beforeIndex := buildKeyIndex(before, beforeKeyIdx)
	afterIndex := buildKeyIndex(after, afterKeyIdx)

	var deleted, added, modifiedBefore, modifiedAfter [][]string

	seenBefore := make(map[string]struct{}, len(before.records))
	for _, record := range before.records {
		key := compositeKey(record, beforeKeyIdx)
		if _, dup := seenBefore[key]; dup {
			continue
		}
		seenBefore[key] = struct{}{}

		afterRow, matched := afterIndex[key]
		if !matched {
			deleted = append(deleted, project(record, beforeOutIdx))
			continue
		}
		if !fieldsEqual(record, afterRow, beforeCmpIdx, afterCmpIdx) {
			modifiedBefore = append(modifiedBefore, project(record, beforeOutIdx))
			modifiedAfter = append(modifiedAfter, project(afterRow, afterOutIdx))
		}
	}

	seenAfter := make(map[string]struct{}, len(after.records))
	for _, record := range after.records {
		key := compositeKey(record, afterKeyIdx)
		if _, dup := seenAfter[key]; dup {
			continue
		}
		seenAfter[key] = struct{}{}

		if _, matched := beforeIndex[key]; !matched {
			added = append(added, project(record, afterOutIdx))
		}
	}

	return &Result{
		Deleted:        NewTable("deleted", outputColumns, deleted),
		Added:          NewTable("added", outputColumns, added),
		ModifiedBefore: NewTable("modified_before", outputColumns, modifiedBefore),
		ModifiedAfter:  NewTable("modified_after", outputColumns, modifiedAfter),
	}, nil
}

// projectColumns returns the key columns followed by the compare
// columns that are not already key columns, preserving selection order.
func projectColumns(keyColumns, compareColumns []string) []string {
	seen := make(map[string]struct{}, len(keyColumns)+len(compareColumns))
	columns := make([]string, 0, len(keyColumns)+len(compareColumns))
	for _, name := range keyColumns {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}
	for _, name := range compareColumns {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		columns = append(columns, name)
	}
	return columns
}

// buildKeyIndex maps each composite key to the first record bearing it.
func buildKeyIndex(t *Table, keyIdx []int) map[string]Record {
	index := make(map[string]Record, len(t.records))
	for _, record := range t.records {
		key := compositeKey(record, keyIdx)
		if _, ok := index[key]; !ok {
			index[key] = record
		}
	}
	return index
}

// compositeKey encodes the key-column values of a record into a single
// string. Each value is prefixed with its length so that two distinct
// key tuples can never encode to the same string, regardless of the
// characters the values contain.
func compositeKey(record Record, keyIdx []int) string {
	var b strings.Builder
	for _, idx := range keyIdx {
		value := record[idx]
		b.WriteString(strconv.Itoa(len(value)))
		b.WriteByte(':')
		b.WriteString(value)
	}
	return b.String()
}

// DisplayKey joins the key-column values of a row with KeySeparator.
// It is the human-readable composite key used in logs and reports; it
// may be ambiguous when a value itself contains the separator.
func DisplayKey(values []string) string {
	return strings.Join(values, KeySeparator)
}

// project extracts the cells at the given header positions, in order.
func project(record Record, outIdx []int) []string {
	row := make([]string, len(outIdx))
	for i, idx := range outIdx {
		row[i] = record[idx]
	}
	return row
}

// fieldsEqual compares two records over the selected compare columns
// using string equality.
func fieldsEqual(before, after Record, beforeIdx, afterIdx []int) bool {
	for i := range beforeIdx {
		if before[beforeIdx[i]] != after[afterIdx[i]] {
			return false
		}
	}
	return true
}

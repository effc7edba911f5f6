package tablediff

import (
	"fmt"
	"path/filepath"
	"strings"
)

// header is an ordered list of column names.
type header []string

// newHeader creates a new header.
func newHeader(h []string) header {
	return header(h)
}

// equal compares two headers element by element.
func (h header) equal(h2 header) bool {
	if len(h) != len(h2) {
		return false
	}
	for i, v := range h {
		if v != h2[i] {
			return false
		}
	}
	return true
}

// Record represents one table row as a slice of string fields,
// aligned with the table header.
type Record []string

// newRecord creates a new record.
func newRecord(r []string) Record {
	return Record(r)
}

// equal compares two records element by element.
func (r Record) equal(r2 Record) bool {
	if len(r) != len(r2) {
		return false
	}
	for i, v := range r {
		if v != r2[i] {
			return false
		}
	}
	return true
}

// Table represents an in-memory tabular dataset with named columns.
// All cell values are strings; comparison semantics are string equality.
type Table struct {
	// name is the table name, usually derived from the source file path.
	name string
	// header is the ordered column names shared by every record.
	header header
	// records are the table rows in source order.
	records []Record
}

// NewTable creates a table from a name, column names, and rows.
// Rows shorter than the header are padded with empty strings so every
// record has one field per column.
func NewTable(name string, columns []string, rows [][]string) *Table {
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		fields := make([]string, len(columns))
		for i := range columns {
			if i < len(row) {
				fields[i] = row[i]
			}
		}
		records = append(records, newRecord(fields))
	}
	return &Table{
		name:    name,
		header:  newHeader(columns),
		records: records,
	}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	return []string(t.header)
}

// Records returns the table rows in source order.
func (t *Table) Records() []Record {
	return t.records
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// equal compares two tables including name, header, and all records.
func (t *Table) equal(t2 *Table) bool {
	if t.name != t2.name {
		return false
	}
	if !t.header.equal(t2.header) {
		return false
	}
	if len(t.records) != len(t2.records) {
		return false
	}
	for i, record := range t.records {
		if !record.equal(t2.records[i]) {
			return false
		}
	}
	return true
}

// columnIndexes resolves column names to header positions.
// Unknown names are reported with an ErrInvalidInput-wrapped error.
func (t *Table) columnIndexes(columns []string) ([]int, error) {
	byName := make(map[string]int, len(t.header))
	for i, name := range t.header {
		byName[name] = i
	}

	indexes := make([]int, 0, len(columns))
	for _, name := range columns {
		idx, ok := byName[name]
		if !ok {
			return nil, invalidInputError("column %q not found in table %q", name, t.name)
		}
		indexes = append(indexes, idx)
	}
	return indexes, nil
}

// LayoutDiff compares the column sets of two tables, ignoring column order.
// It returns nil when both tables have the same columns, otherwise a
// LayoutError listing the symmetric differences.
func LayoutDiff(before, after *Table) *LayoutError {
	beforeSet := make(map[string]struct{}, len(before.header))
	for _, name := range before.header {
		beforeSet[name] = struct{}{}
	}
	afterSet := make(map[string]struct{}, len(after.header))
	for _, name := range after.header {
		afterSet[name] = struct{}{}
	}

	var onlyInBefore, onlyInAfter []string
	for name := range beforeSet {
		if _, ok := afterSet[name]; !ok {
			onlyInBefore = append(onlyInBefore, name)
		}
	}
	for name := range afterSet {
		if _, ok := beforeSet[name]; !ok {
			onlyInAfter = append(onlyInAfter, name)
		}
	}

	if len(onlyInBefore) == 0 && len(onlyInAfter) == 0 {
		return nil
	}
	return newLayoutError(onlyInBefore, onlyInAfter)
}

// validateColumnNames checks for duplicate column names and returns error if found.
// Column name comparison is case-sensitive.
func validateColumnNames(columns []string) error {
	columnsSeen := make(map[string]bool)
	for _, col := range columns {
		trimmedCol := strings.TrimSpace(col)
		if columnsSeen[trimmedCol] {
			return fmt.Errorf("%w: %s", errDuplicateColumnName, col)
		}
		columnsSeen[trimmedCol] = true
	}
	return nil
}

// tableNameFromPath creates a table name from a file path by stripping
// the compression extension (if any) and the format extension.
func tableNameFromPath(filePath string) string {
	fileName := filepath.Base(filePath)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(fileName, ext) {
			fileName = strings.TrimSuffix(fileName, ext)
			break
		}
	}
	return strings.TrimSuffix(fileName, filepath.Ext(fileName))
}

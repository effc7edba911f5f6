package tablediff

// CompareFiles loads the before and after files, verifies that both
// share the same column set, and reconciles them.
//
// keyColumns must name at least one column present in both tables. If
// compareColumns is empty, it defaults to every column that is not a
// key column, in before-table column order. A layout mismatch is
// reported as a *LayoutError before any selection is validated, so
// callers can surface the symmetric column differences to the user.
func CompareFiles(beforePath, afterPath string, keyColumns, compareColumns []string) (*Result, error) {
	before, err := Load(beforePath)
	if err != nil {
		return nil, err
	}
	after, err := Load(afterPath)
	if err != nil {
		return nil, err
	}
	return Compare(before, after, keyColumns, compareColumns)
}

// Compare verifies the layout of two already-loaded tables and
// reconciles them, applying the same compare-column defaulting as
// CompareFiles.
func Compare(before, after *Table, keyColumns, compareColumns []string) (*Result, error) {
	if layoutErr := LayoutDiff(before, after); layoutErr != nil {
		return nil, layoutErr
	}
	if len(compareColumns) == 0 {
		compareColumns = DefaultCompareColumns(before, keyColumns)
	}
	return Reconcile(before, after, keyColumns, compareColumns)
}

// DefaultCompareColumns returns every column of the table that is not a
// key column, preserving table column order. This mirrors the common
// selection of "compare everything except the identifiers".
func DefaultCompareColumns(t *Table, keyColumns []string) []string {
	keySet := make(map[string]struct{}, len(keyColumns))
	for _, name := range keyColumns {
		keySet[name] = struct{}{}
	}

	var columns []string
	for _, name := range t.Columns() {
		if _, ok := keySet[name]; !ok {
			columns = append(columns, name)
		}
	}
	return columns
}

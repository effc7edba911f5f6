package tablediff

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Report sheet names.
const (
	sheetDeleted  = "Deleted"
	sheetAdded    = "Added"
	sheetModified = "Modified"
)

// Placeholder texts written as a single unlabeled cell when a result
// table has no rows.
const (
	placeholderNoDeleted  = "No deleted rows"
	placeholderNoAdded    = "No added rows"
	placeholderNoModified = "No modified rows"
)

// Column name suffixes distinguishing the two sides of the Modified sheet.
const (
	suffixBefore = " (Before)"
	suffixAfter  = " (After)"
)

// WriteReport writes the comparison result as an XLSX workbook at path.
// The workbook has exactly three sheets: Deleted, Added, and Modified.
// The Modified sheet places the before-side columns (suffixed
// " (Before)") next to the after-side columns (suffixed " (After)"),
// row-aligned. Empty result tables produce a single placeholder cell
// instead of a header row.
func WriteReport(path string, result *Result) error {
	workbook, err := buildReportWorkbook(result)
	if err != nil {
		return err
	}
	defer func() {
		_ = workbook.Close() // Ignore close error
	}()
	return workbook.SaveAs(path)
}

// WriteReportTo writes the XLSX report to an arbitrary writer.
func WriteReportTo(w io.Writer, result *Result) error {
	workbook, err := buildReportWorkbook(result)
	if err != nil {
		return err
	}
	defer func() {
		_ = workbook.Close() // Ignore close error
	}()
	return workbook.Write(w)
}

// buildReportWorkbook assembles the three-sheet workbook in memory.
func buildReportWorkbook(result *Result) (*excelize.File, error) {
	workbook := excelize.NewFile()

	// The default sheet becomes the Deleted sheet so the workbook ends
	// up with exactly three sheets.
	if err := workbook.SetSheetName(workbook.GetSheetName(0), sheetDeleted); err != nil {
		return nil, err
	}
	if _, err := workbook.NewSheet(sheetAdded); err != nil {
		return nil, err
	}
	if _, err := workbook.NewSheet(sheetModified); err != nil {
		return nil, err
	}

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	if err := writeSheet(workbook, sheetDeleted, result.Deleted, placeholderNoDeleted, headerStyle); err != nil {
		return nil, err
	}
	if err := writeSheet(workbook, sheetAdded, result.Added, placeholderNoAdded, headerStyle); err != nil {
		return nil, err
	}
	if err := writeModifiedSheet(workbook, result.ModifiedBefore, result.ModifiedAfter, headerStyle); err != nil {
		return nil, err
	}

	return workbook, nil
}

// writeSheet writes one result table to a sheet, or the placeholder
// cell when the table has no rows.
func writeSheet(workbook *excelize.File, sheet string, table *Table, placeholder string, headerStyle int) error {
	if table.Len() == 0 {
		return workbook.SetCellValue(sheet, "A1", placeholder)
	}

	if err := writeHeaderRow(workbook, sheet, table.Columns(), headerStyle); err != nil {
		return err
	}
	for i, record := range table.Records() {
		if err := writeRow(workbook, sheet, i+2, record); err != nil {
			return err
		}
	}
	return nil
}

// writeModifiedSheet writes the column-wise concatenation of the
// modified-before and modified-after tables.
func writeModifiedSheet(workbook *excelize.File, before, after *Table, headerStyle int) error {
	if before.Len() == 0 {
		return workbook.SetCellValue(sheetModified, "A1", placeholderNoModified)
	}

	columns := make([]string, 0, len(before.Columns())+len(after.Columns()))
	for _, name := range before.Columns() {
		columns = append(columns, name+suffixBefore)
	}
	for _, name := range after.Columns() {
		columns = append(columns, name+suffixAfter)
	}
	if err := writeHeaderRow(workbook, sheetModified, columns, headerStyle); err != nil {
		return err
	}

	beforeRecords := before.Records()
	afterRecords := after.Records()
	for i := range beforeRecords {
		row := make([]string, 0, len(columns))
		row = append(row, beforeRecords[i]...)
		row = append(row, afterRecords[i]...)
		if err := writeRow(workbook, sheetModified, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

// writeHeaderRow writes the column names to row 1 and applies the bold
// header style across the used columns.
func writeHeaderRow(workbook *excelize.File, sheet string, columns []string, headerStyle int) error {
	if err := writeRow(workbook, sheet, 1, columns); err != nil {
		return err
	}
	lastCell, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	return workbook.SetCellStyle(sheet, "A1", lastCell, headerStyle)
}

// writeRow writes one row of string cells starting at column A.
func writeRow(workbook *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d to sheet %s: %w", rowNum, sheet, err)
	}
	return nil
}

package tablediff

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	t.Run("three sheets with rows", func(t *testing.T) {
		t.Parallel()

		before, after := employeeTables()
		result, err := Reconcile(before, after, []string{"id"}, []string{"name", "val"})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "report.xlsx")
		require.NoError(t, WriteReport(path, result))

		workbook, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() {
			_ = workbook.Close()
		}()

		assert.Equal(t, []string{"Deleted", "Added", "Modified"}, workbook.GetSheetList())

		deletedRows, err := workbook.GetRows("Deleted")
		require.NoError(t, err)
		require.Len(t, deletedRows, 2)
		assert.Equal(t, []string{"id", "name", "val"}, deletedRows[0])
		assert.Equal(t, []string{"2", "B", "20"}, deletedRows[1])

		addedRows, err := workbook.GetRows("Added")
		require.NoError(t, err)
		require.Len(t, addedRows, 2)
		assert.Equal(t, []string{"3", "C", "30"}, addedRows[1])

		modifiedRows, err := workbook.GetRows("Modified")
		require.NoError(t, err)
		require.Len(t, modifiedRows, 2)
		assert.Equal(t, []string{
			"id (Before)", "name (Before)", "val (Before)",
			"id (After)", "name (After)", "val (After)",
		}, modifiedRows[0])
		assert.Equal(t, []string{"1", "A", "10", "1", "A", "99"}, modifiedRows[1])
	})

	t.Run("placeholders when all results are empty", func(t *testing.T) {
		t.Parallel()

		before, _ := employeeTables()
		same := NewTable("after", before.Columns(), [][]string{
			{"1", "A", "10"},
			{"2", "B", "20"},
		})
		result, err := Reconcile(before, same, []string{"id"}, []string{"name", "val"})
		require.NoError(t, err)
		require.True(t, result.Empty())

		path := filepath.Join(t.TempDir(), "report.xlsx")
		require.NoError(t, WriteReport(path, result))

		workbook, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer func() {
			_ = workbook.Close()
		}()

		tests := []struct {
			sheet       string
			placeholder string
		}{
			{sheet: "Deleted", placeholder: "No deleted rows"},
			{sheet: "Added", placeholder: "No added rows"},
			{sheet: "Modified", placeholder: "No modified rows"},
		}
		for _, tt := range tests {
			rows, err := workbook.GetRows(tt.sheet)
			require.NoError(t, err)
			require.Len(t, rows, 1, "sheet %s should hold a single placeholder row", tt.sheet)
			assert.Equal(t, []string{tt.placeholder}, rows[0])
		}
	})
}

func TestWriteReportTo(t *testing.T) {
	t.Parallel()

	before, after := employeeTables()
	result, err := Reconcile(before, after, []string{"id"}, []string{"val"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReportTo(&buf, result))

	workbook, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() {
		_ = workbook.Close()
	}()
	assert.Equal(t, []string{"Deleted", "Added", "Modified"}, workbook.GetSheetList())
}

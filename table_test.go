package tablediff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("short rows are padded to header width", func(t *testing.T) {
		t.Parallel()

		table := NewTable("t", []string{"a", "b", "c"}, [][]string{
			{"1"},
			{"1", "2", "3"},
		})
		assert.Equal(t, Record{"1", "", ""}, table.Records()[0])
		assert.Equal(t, Record{"1", "2", "3"}, table.Records()[1])
	})

	t.Run("accessors", func(t *testing.T) {
		t.Parallel()

		table := NewTable("users", []string{"id", "name"}, [][]string{{"1", "A"}})
		assert.Equal(t, "users", table.Name())
		assert.Equal(t, []string{"id", "name"}, table.Columns())
		assert.Equal(t, 1, table.Len())
	})
}

func TestTableEqual(t *testing.T) {
	t.Parallel()

	base := func() *Table {
		return NewTable("users", []string{"id", "name"}, [][]string{
			{"1", "A"},
			{"2", "B"},
		})
	}

	tests := []struct {
		name  string
		other *Table
		want  bool
	}{
		{
			name:  "identical tables",
			other: base(),
			want:  true,
		},
		{
			name:  "different name",
			other: NewTable("accounts", []string{"id", "name"}, [][]string{{"1", "A"}, {"2", "B"}}),
			want:  false,
		},
		{
			name:  "different header",
			other: NewTable("users", []string{"id", "label"}, [][]string{{"1", "A"}, {"2", "B"}}),
			want:  false,
		},
		{
			name:  "different header length",
			other: NewTable("users", []string{"id"}, [][]string{{"1"}, {"2"}}),
			want:  false,
		},
		{
			name:  "different record value",
			other: NewTable("users", []string{"id", "name"}, [][]string{{"1", "A"}, {"2", "X"}}),
			want:  false,
		},
		{
			name:  "different row count",
			other: NewTable("users", []string{"id", "name"}, [][]string{{"1", "A"}}),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, base().equal(tt.other))
		})
	}
}

func TestLayoutDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		beforeCols   []string
		afterCols    []string
		wantNil      bool
		onlyInBefore []string
		onlyInAfter  []string
	}{
		{
			name:       "identical layouts",
			beforeCols: []string{"id", "name"},
			afterCols:  []string{"id", "name"},
			wantNil:    true,
		},
		{
			name:       "same columns different order",
			beforeCols: []string{"name", "id"},
			afterCols:  []string{"id", "name"},
			wantNil:    true,
		},
		{
			name:         "columns only in before",
			beforeCols:   []string{"id", "name", "extra"},
			afterCols:    []string{"id", "name"},
			onlyInBefore: []string{"extra"},
		},
		{
			name:        "columns only in after",
			beforeCols:  []string{"id"},
			afterCols:   []string{"id", "added"},
			onlyInAfter: []string{"added"},
		},
		{
			name:         "symmetric differences sorted",
			beforeCols:   []string{"id", "zeta", "alpha"},
			afterCols:    []string{"id", "omega", "beta"},
			onlyInBefore: []string{"alpha", "zeta"},
			onlyInAfter:  []string{"beta", "omega"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			before := NewTable("before", tt.beforeCols, nil)
			after := NewTable("after", tt.afterCols, nil)

			diff := LayoutDiff(before, after)
			if tt.wantNil {
				assert.Nil(t, diff)
				return
			}
			assert.NotNil(t, diff)
			assert.Equal(t, tt.onlyInBefore, diff.OnlyInBefore)
			assert.Equal(t, tt.onlyInAfter, diff.OnlyInAfter)
			assert.ErrorIs(t, diff, ErrLayoutMismatch)
			assert.Contains(t, diff.Error(), "do not match")
		})
	}
}

func TestValidateColumnNames(t *testing.T) {
	t.Parallel()

	t.Run("unique names pass", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validateColumnNames([]string{"id", "name", "val"}))
	})

	t.Run("duplicate names fail", func(t *testing.T) {
		t.Parallel()
		err := validateColumnNames([]string{"id", "name", "id"})
		assert.ErrorIs(t, err, errDuplicateColumnName)
	})

	t.Run("duplicates detected after trimming", func(t *testing.T) {
		t.Parallel()
		err := validateColumnNames([]string{"id", " id "})
		assert.ErrorIs(t, err, errDuplicateColumnName)
	})
}

func TestTableNameFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/data/users.csv", want: "users"},
		{path: "report.xlsx", want: "report"},
		{path: "/tmp/events.tsv.gz", want: "events"},
		{path: "metrics.parquet.zst", want: "metrics"},
		{path: "log.ltsv.xz", want: "log"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tableNameFromPath(tt.path))
		})
	}
}

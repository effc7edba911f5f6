package tablediff

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
)

// parseParquet parses a Parquet file into a Table. The whole file is
// read into memory because Parquet requires random access, which also
// keeps compressed variants working through the plain openReader path.
func (f *file) parseParquet() (*Table, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer closer()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, f.path)
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create parquet reader: %w", err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	arrowTable, err := arrowReader.ReadTable(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to read table: %w", err)
	}
	defer arrowTable.Release()

	schema := arrowTable.Schema()
	columns := make([]string, schema.NumFields())
	for i, field := range schema.Fields() {
		columns[i] = field.Name
	}
	if err := validateColumnNames(columns); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	tableReader := array.NewTableReader(arrowTable, 0)
	defer tableReader.Release()

	var rows [][]string
	for tableReader.Next() {
		batch := tableReader.Record()
		numRows := batch.NumRows()
		for i := int64(0); i < numRows; i++ {
			row := make([]string, batch.NumCols())
			for j, col := range batch.Columns() {
				row[j] = stringifyArrowValue(col, int(i))
			}
			rows = append(rows, row)
		}
	}
	if err := tableReader.Err(); err != nil {
		return nil, fmt.Errorf("error reading table records: %w", err)
	}

	return NewTable(tableNameFromPath(f.path), columns, rows), nil
}

// stringifyArrowValue renders a single Arrow cell in the canonical
// string form used for comparison: nulls become empty strings, booleans
// become "1"/"0", integers use base 10, and floats use the shortest
// representation that round-trips.
func stringifyArrowValue(col arrow.Array, row int) string {
	if col.IsNull(row) {
		return ""
	}

	switch arr := col.(type) {
	case *array.Boolean:
		if arr.Value(row) {
			return "1"
		}
		return "0"
	case *array.Int8:
		return strconv.FormatInt(int64(arr.Value(row)), 10)
	case *array.Int16:
		return strconv.FormatInt(int64(arr.Value(row)), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(arr.Value(row)), 10)
	case *array.Int64:
		return strconv.FormatInt(arr.Value(row), 10)
	case *array.Uint8:
		return strconv.FormatUint(uint64(arr.Value(row)), 10)
	case *array.Uint16:
		return strconv.FormatUint(uint64(arr.Value(row)), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(arr.Value(row)), 10)
	case *array.Uint64:
		return strconv.FormatUint(arr.Value(row), 10)
	case *array.Float32:
		return strconv.FormatFloat(float64(arr.Value(row)), 'g', -1, 32)
	case *array.Float64:
		return strconv.FormatFloat(arr.Value(row), 'g', -1, 64)
	case *array.String:
		return arr.Value(row)
	case *array.LargeString:
		return arr.Value(row)
	case *array.Binary:
		return string(arr.Value(row))
	default:
		return col.ValueStr(row)
	}
}

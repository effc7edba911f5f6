package tablediff

import (
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
)

// Format represents a supported tabular file format.
type Format int

const (
	// FormatCSV represents comma-separated values
	FormatCSV Format = iota
	// FormatTSV represents tab-separated values
	FormatTSV
	// FormatLTSV represents labeled tab-separated values
	FormatLTSV
	// FormatParquet represents Apache Parquet columnar files
	FormatParquet
	// FormatXLSX represents Excel XLSX workbooks (first sheet)
	FormatXLSX
	// FormatUnsupported represents an unrecognized format
	FormatUnsupported
)

// String returns the format extension without the leading dot.
func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	case FormatLTSV:
		return "ltsv"
	case FormatParquet:
		return "parquet"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unsupported"
	}
}

// Compression represents an optional compression layer on top of a format.
type Compression int

const (
	// CompressionNone represents no compression
	CompressionNone Compression = iota
	// CompressionGZ represents gzip compression
	CompressionGZ
	// CompressionBZ2 represents bzip2 compression
	CompressionBZ2
	// CompressionXZ represents xz compression
	CompressionXZ
	// CompressionZSTD represents zstandard compression
	CompressionZSTD
)

// File extensions
const (
	// extCSV is the CSV file extension
	extCSV = ".csv"
	// extTSV is the TSV file extension
	extTSV = ".tsv"
	// extLTSV is the LTSV file extension
	extLTSV = ".ltsv"
	// extParquet is the Parquet file extension
	extParquet = ".parquet"
	// extXLSX is the Excel XLSX file extension
	extXLSX = ".xlsx"
	// extGZ is the gzip compression extension
	extGZ = ".gz"
	// extBZ2 is the bzip2 compression extension
	extBZ2 = ".bz2"
	// extXZ is the xz compression extension
	extXZ = ".xz"
	// extZSTD is the zstd compression extension
	extZSTD = ".zst"
)

// File format delimiters
const (
	// csvDelimiter is the delimiter for CSV files
	csvDelimiter = ','
	// tsvDelimiter is the delimiter for TSV files
	tsvDelimiter = '\t'
)

// file represents a source file that can be loaded into a Table.
type file struct {
	path        string
	format      Format
	compression Compression
}

// newFile creates a new file with format and compression detected from
// the path extension.
func newFile(path string) *file {
	format, compression := detectFormat(path)
	return &file{
		path:        path,
		format:      format,
		compression: compression,
	}
}

// detectFormat detects the format and compression from a file path.
// Compression extensions stack on top of format extensions, e.g.
// "data.csv.gz" is gzip-compressed CSV.
func detectFormat(path string) (Format, Compression) {
	basePath := strings.ToLower(path)
	compression := CompressionNone

	switch {
	case strings.HasSuffix(basePath, extGZ):
		basePath = strings.TrimSuffix(basePath, extGZ)
		compression = CompressionGZ
	case strings.HasSuffix(basePath, extBZ2):
		basePath = strings.TrimSuffix(basePath, extBZ2)
		compression = CompressionBZ2
	case strings.HasSuffix(basePath, extXZ):
		basePath = strings.TrimSuffix(basePath, extXZ)
		compression = CompressionXZ
	case strings.HasSuffix(basePath, extZSTD):
		basePath = strings.TrimSuffix(basePath, extZSTD)
		compression = CompressionZSTD
	}

	switch filepath.Ext(basePath) {
	case extCSV:
		return FormatCSV, compression
	case extTSV:
		return FormatTSV, compression
	case extLTSV:
		return FormatLTSV, compression
	case extParquet:
		return FormatParquet, compression
	case extXLSX:
		return FormatXLSX, compression
	default:
		return FormatUnsupported, compression
	}
}

// IsSupportedFile checks whether the file name has a supported format
// extension, with or without a compression extension.
func IsSupportedFile(fileName string) bool {
	format, _ := detectFormat(fileName)
	return format != FormatUnsupported
}

// Load parses the file at path into a Table. The format is detected
// from the extension; gzip, bzip2, xz, and zstd compressed variants are
// decompressed transparently. Unknown extensions yield an error that
// wraps ErrUnsupportedFormat.
func Load(path string) (*Table, error) {
	f := newFile(path)
	switch f.format {
	case FormatCSV:
		return f.parseDelimited(csvDelimiter)
	case FormatTSV:
		return f.parseDelimited(tsvDelimiter)
	case FormatLTSV:
		return f.parseLTSV()
	case FormatParquet:
		return f.parseParquet()
	case FormatXLSX:
		return f.parseXLSX()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// openReader opens the file and returns a reader that handles decompression.
func (f *file) openReader() (io.Reader, func() error, error) {
	osFile, err := os.Open(f.path)
	if err != nil {
		return nil, nil, err
	}

	var reader io.Reader = osFile
	closer := osFile.Close

	switch f.compression {
	case CompressionGZ:
		gzReader, err := gzip.NewReader(osFile)
		if err != nil {
			_ = osFile.Close()
			return nil, nil, err
		}
		reader = gzReader
		closer = func() error {
			_ = gzReader.Close()
			return osFile.Close()
		}
	case CompressionBZ2:
		reader = bzip2.NewReader(osFile)
	case CompressionXZ:
		xzReader, err := xz.NewReader(osFile)
		if err != nil {
			_ = osFile.Close()
			return nil, nil, err
		}
		reader = xzReader
	case CompressionZSTD:
		decoder, err := zstd.NewReader(osFile)
		if err != nil {
			_ = osFile.Close()
			return nil, nil, err
		}
		reader = decoder
		closer = func() error {
			decoder.Close()
			return osFile.Close()
		}
	}

	return reader, closer, nil
}

// parseDelimited parses CSV or TSV content with the given delimiter.
func (f *file) parseDelimited(delimiter rune) (*Table, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer closer()

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	// Ragged rows are padded to header width, not rejected.
	csvReader.FieldsPerRecord = -1
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", f.path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, f.path)
	}
	if err := validateColumnNames(rows[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	return NewTable(tableNameFromPath(f.path), rows[0], rows[1:]), nil
}

// parseLTSV parses LTSV content. The column set is the union of all
// labels seen across lines; missing labels are filled with empty strings.
func (f *file) parseLTSV() (*Table, error) {
	reader, closer, err := f.openReader()
	if err != nil {
		return nil, err
	}
	defer closer()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	var columns []string
	seen := make(map[string]bool)
	var rowMaps []map[string]string

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row := make(map[string]string)
		for _, pair := range strings.Split(line, "\t") {
			kv := strings.SplitN(pair, ":", 2)
			if len(kv) != 2 {
				continue
			}
			key := strings.TrimSpace(kv[0])
			row[key] = strings.TrimSpace(kv[1])
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
		if len(row) > 0 {
			rowMaps = append(rowMaps, row)
		}
	}

	if len(rowMaps) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyData, f.path)
	}

	rows := make([][]string, 0, len(rowMaps))
	for _, rowMap := range rowMaps {
		row := make([]string, len(columns))
		for i, key := range columns {
			row[i] = rowMap[key]
		}
		rows = append(rows, row)
	}

	return NewTable(tableNameFromPath(f.path), columns, rows), nil
}

// parseXLSX parses the first sheet of an XLSX workbook. Compressed
// workbooks are read into memory first because excelize needs random
// access.
func (f *file) parseXLSX() (*Table, error) {
	var xlsxFile *excelize.File

	if f.compression != CompressionNone {
		reader, closer, err := f.openReader()
		if err != nil {
			return nil, err
		}
		defer closer()

		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, err
		}
		xlsxFile, err = excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		xlsxFile, err = excelize.OpenFile(f.path)
		if err != nil {
			return nil, err
		}
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file: %s", f.path)
	}

	rows, err := xlsxFile.GetRows(sheetNames[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetNames[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s in %s", ErrEmptyData, sheetNames[0], f.path)
	}
	if err := validateColumnNames(rows[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	return NewTable(tableNameFromPath(f.path), rows[0], rows[1:]), nil
}

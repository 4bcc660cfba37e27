package csvrepl

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	pqfile "github.com/apache/arrow/go/v18/parquet/file"
	"github.com/apache/arrow/go/v18/parquet/pqarrow"
	"github.com/xuri/excelize/v2"

	"github.com/nao1215/csvrepl/domain/model"
)

const (
	// csvDelimiter is the field separator of CSV files
	csvDelimiter = ','
	// tsvDelimiter is the field separator of TSV files
	tsvDelimiter = '\t'
	// utf8BOM is stripped from the first header field
	utf8BOM = "\ufeff"
)

// decodeFile reads the header and data rows of f.
// Every format ends up as text fields positionally aligned with the header.
func decodeFile(ctx context.Context, f *model.File) (model.Header, []model.Record, error) {
	reader, closer, err := openReader(f)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = closer() // Ignore close error, the file is only read
	}()

	switch f.Type() {
	case model.FileTypeTSV:
		return parseDelimited(reader, tsvDelimiter)
	case model.FileTypeLTSV:
		return parseLTSV(reader)
	case model.FileTypeXLSX:
		return parseXLSX(reader)
	case model.FileTypeParquet:
		return parseParquet(ctx, reader)
	default:
		return parseDelimited(reader, csvDelimiter)
	}
}

// parseDelimited parses CSV or TSV data with the specified delimiter.
// Data rows must have as many fields as the header.
func parseDelimited(reader io.Reader, delimiter rune) (model.Header, []model.Record, error) {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	header := model.NewHeader(rows[0])
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.NewRecord(row))
	}
	return header, records, nil
}

// parseLTSV parses LTSV data. Labels become the header in first-seen order
// and a record missing a label gets an empty field for it.
func parseLTSV(reader io.Reader) (model.Header, []model.Record, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read LTSV: %w", err)
	}

	var (
		header  model.Header
		index   = make(map[string]int)
		entries []map[string]string
	)
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		entry := make(map[string]string)
		for _, pair := range strings.Split(line, "\t") {
			label, value, ok := strings.Cut(pair, ":")
			if !ok {
				continue
			}
			label = strings.TrimSpace(label)
			entry[label] = strings.TrimSpace(value)
			if _, seen := index[label]; !seen {
				index[label] = len(header)
				header = append(header, label)
			}
		}
		if len(entry) > 0 {
			entries = append(entries, entry)
		}
	}

	if len(entries) == 0 {
		return nil, nil, ErrEmptyData
	}

	records := make([]model.Record, 0, len(entries))
	for _, entry := range entries {
		record := make(model.Record, len(header))
		for label, value := range entry {
			record[index[label]] = value
		}
		records = append(records, record)
	}
	return header, records, nil
}

// parseXLSX parses the first sheet of an Excel workbook.
// Leading empty rows are skipped; the first non-empty row is the header.
func parseXLSX(reader io.Reader) (model.Header, []model.Record, error) {
	xlsxFile, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to open XLSX file: %w", ErrUnsupportedFormat, err)
	}
	defer func() {
		_ = xlsxFile.Close() // Ignore close error
	}()

	sheetNames := xlsxFile.GetSheetList()
	if len(sheetNames) == 0 {
		return nil, nil, ErrEmptyData
	}

	sheetName := sheetNames[0]
	rows, err := xlsxFile.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}
	for len(rows) > 0 && len(rows[0]) == 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyData
	}

	header, records := convertXLSXRows(rows)
	return header, records, nil
}

// convertXLSXRows converts XLSX rows to a header and records.
// excelize trims trailing empty cells, so short rows are padded and long rows cut to the header.
func convertXLSXRows(rows [][]string) (model.Header, []model.Record) {
	header := make(model.Header, len(rows[0]))
	copy(header, rows[0])

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(model.Record, len(header))
		copy(record, row)
		records = append(records, record)
	}
	return header, records
}

// parseParquet parses Parquet data. Field names are the header,
// values are rendered as text and NULL becomes an empty field.
func parseParquet(ctx context.Context, reader io.Reader) (model.Header, []model.Record, error) {
	// Parquet requires random access
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read parquet data: %w", err)
	}
	if len(data) == 0 {
		return nil, nil, ErrEmptyData
	}

	pqReader, err := pqfile.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: failed to create parquet reader: %w", ErrUnsupportedFormat, err)
	}
	defer pqReader.Close()

	arrowReader, err := pqarrow.NewFileReader(pqReader, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create arrow reader: %w", err)
	}

	table, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table: %w", err)
	}
	defer table.Release()

	schema := table.Schema()
	header := make(model.Header, schema.NumFields())
	for i, field := range schema.Fields() {
		header[i] = field.Name
	}

	tableReader := array.NewTableReader(table, 0)
	defer tableReader.Release()

	records := make([]model.Record, 0, table.NumRows())
	for tableReader.Next() {
		batch := tableReader.Record()
		for i := range int(batch.NumRows()) {
			record := make(model.Record, batch.NumCols())
			for j, col := range batch.Columns() {
				if !col.IsNull(i) {
					record[j] = col.ValueStr(i)
				}
			}
			records = append(records, record)
		}
	}
	if err := tableReader.Err(); err != nil && !errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("error reading table records: %w", err)
	}

	return header, records, nil
}

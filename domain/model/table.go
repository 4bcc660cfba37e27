package model

import "strconv"

// Table represents decoded file contents ready to be loaded into the store.
type Table struct {
	// name is the target table name (t, t1, t2, ...).
	name string
	// header is the raw header as found in the file.
	header Header
	// columns are the normalized column names, aligned with header.
	columns []string
	// records are the data rows in file order.
	records []Record
}

// NewTable create new Table. Column names are derived from header.
func NewTable(
	name string,
	header Header,
	records []Record,
) *Table {
	return &Table{
		name:    name,
		header:  header,
		columns: header.Normalize(),
		records: records,
	}
}

// Name return table name.
func (t *Table) Name() string {
	return t.name
}

// Header return the raw table header.
func (t *Table) Header() Header {
	return t.header
}

// Columns returns the normalized column names.
func (t *Table) Columns() []string {
	return t.columns
}

// Records return table records.
func (t *Table) Records() []Record {
	return t.records
}

// Validate reports whether the table can be created as-is.
func (t *Table) Validate() error {
	return ValidateColumnNames(t.header, t.columns)
}

// SingleTableName is the table name used when exactly one file is loaded.
const SingleTableName = "t"

// Source is a file given on the command line and the table it loads into.
type Source struct {
	Path      string
	TableName string
}

// TableName returns the table name for the file at index (0-based) out of count files.
// A lone file becomes "t"; otherwise files become "t1".."tN" in argument order.
func TableName(index, count int) string {
	if count == 1 {
		return SingleTableName
	}
	return SingleTableName + strconv.Itoa(index+1)
}

// NewSources resolves file paths into sources with their table names.
func NewSources(paths []string) []Source {
	sources := make([]Source, len(paths))
	for i, p := range paths {
		sources[i] = Source{Path: p, TableName: TableName(i, len(paths))}
	}
	return sources
}

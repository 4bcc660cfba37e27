package model

// Header is file header.
type Header []string

// NewHeader create new Header.
func NewHeader(h []string) Header {
	return Header(h)
}

// Normalize returns the normalized column names of the header, in order.
func (h Header) Normalize() []string {
	cols := make([]string, len(h))
	for i, raw := range h {
		cols[i] = NormalizeColumnName(raw)
	}
	return cols
}

// Record is one data row, positionally aligned with the header.
type Record []string

// NewRecord create new Record.
func NewRecord(r []string) Record {
	return Record(r)
}

// Values returns the record as positional arguments for a prepared statement.
func (r Record) Values() []any {
	args := make([]any, len(r))
	for i, v := range r {
		args[i] = v
	}
	return args
}

// ColumnType is the SQL type every loaded column gets.
const ColumnType = "VARCHAR"

package csvrepl

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// ResultTable is a fully consumed query result, ready to be printed.
type ResultTable struct {
	header []string
	rows   [][]string
}

// newResultTable creates an empty result with the given column names.
func newResultTable(header []string) *ResultTable {
	return &ResultTable{header: header}
}

// Header returns the result column names.
func (t *ResultTable) Header() []string {
	return t.header
}

// Rows returns the rendered cells of every result row.
func (t *ResultTable) Rows() [][]string {
	return t.rows
}

func (t *ResultTable) appendRow(values []any) {
	row := make([]string, len(values))
	for i, v := range values {
		row[i] = formatValue(v)
	}
	t.rows = append(t.rows, row)
}

// widths returns the display width of every column, header included.
func (t *ResultTable) widths() []int {
	widths := make([]int, len(t.header))
	for i, h := range t.header {
		widths[i] = uniseg.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := uniseg.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// Render writes the table to w:
//
//	+----------+
//	| count(*) |
//	+----------+
//	| 3        |
//	+----------+
func (t *ResultTable) Render(w io.Writer) error {
	widths := t.widths()

	var sb strings.Builder
	border := borderLine(widths)
	sb.WriteString(border)
	writeRow(&sb, t.header, widths)
	sb.WriteString(border)
	for _, row := range t.rows {
		writeRow(&sb, row, widths)
	}
	sb.WriteString(border)

	_, err := io.WriteString(w, sb.String())
	return err
}

func borderLine(widths []int) string {
	var sb strings.Builder
	sb.WriteByte('+')
	for _, w := range widths {
		sb.WriteString(strings.Repeat("-", w+2))
		sb.WriteByte('+')
	}
	sb.WriteByte('\n')
	return sb.String()
}

func writeRow(sb *strings.Builder, cells []string, widths []int) {
	sb.WriteByte('|')
	for i, cell := range cells {
		sb.WriteByte(' ')
		sb.WriteString(cell)
		sb.WriteString(strings.Repeat(" ", widths[i]-uniseg.StringWidth(cell)))
		sb.WriteString(" |")
	}
	sb.WriteByte('\n')
}

// formatValue renders a scanned column value as text. NULL is the empty string.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(val)
	}
}

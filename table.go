package csvrepl

import (
	"fmt"
	"strings"

	"github.com/nao1215/csvrepl/domain/model"
)

// createTableQuery returns the CREATE TABLE statement for t.
// Every column gets the same generic text type.
func createTableQuery(t *model.Table) string {
	columns := make([]string, 0, len(t.Columns()))
	for _, col := range t.Columns() {
		columns = append(columns, model.QuoteIdentifier(col)+" "+model.ColumnType)
	}
	return fmt.Sprintf(
		"CREATE TABLE %s (%s)",
		model.QuoteIdentifier(t.Name()),
		strings.Join(columns, ", "),
	)
}

// insertQuery returns the INSERT statement for t with one placeholder per column.
func insertQuery(t *model.Table) string {
	placeholders := make([]string, len(t.Columns()))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf(
		"INSERT INTO %s VALUES (%s)",
		model.QuoteIdentifier(t.Name()),
		strings.Join(placeholders, ", "),
	)
}

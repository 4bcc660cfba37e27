package csvrepl

import (
	"context"
	"strings"

	"github.com/fatih/color"
)

// diagnostic colors query errors; fatih/color turns itself off when stdout is not a terminal.
var diagnostic = color.New(color.FgRed)

// Query runs query against the store and reads the whole result.
// Statements that produce no columns, such as INSERT, return an empty header.
func (s *Store) Query(ctx context.Context, query string) (*ResultTable, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := newResultTable(columns)
	values := make([]any, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		result.appendRow(values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ExecuteAndPrint runs query and prints the result table to the store output.
// It never fails: an engine error is printed as a single diagnostic line instead.
func (s *Store) ExecuteAndPrint(ctx context.Context, query string) {
	result, err := s.Query(ctx, query)
	if err != nil {
		s.logger.Debug("query failed", "query", query, "error", err)
		s.printDiagnostic(err)
		return
	}
	if len(result.Header()) == 0 {
		return
	}
	if err := result.Render(s.output); err != nil {
		s.logger.Error("failed to write result", "error", err)
	}
}

func (s *Store) printDiagnostic(err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	if _, werr := diagnostic.Fprintln(s.output, msg); werr != nil {
		s.logger.Error("failed to write diagnostic", "error", werr)
	}
}

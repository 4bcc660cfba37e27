package csvrepl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nao1215/csvrepl/domain/model"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrDuplicateColumnName is returned when two headers normalize to the same column name
	ErrDuplicateColumnName = model.ErrDuplicateColumnName

	// ErrEmptyData indicates that the file has no header row
	ErrEmptyData = errors.New("csvrepl: empty data source")

	// ErrUnsupportedFormat indicates a file whose contents cannot be decoded as its extension says
	ErrUnsupportedFormat = errors.New("csvrepl: unsupported file format")

	// ErrInvalidData indicates malformed or invalid data
	ErrInvalidData = errors.New("csvrepl: invalid data format")

	// ErrFileNotFound indicates file not found
	ErrFileNotFound = errors.New("csvrepl: file not found")

	// ErrInvalidPath indicates an empty path or a directory where a file was expected
	ErrInvalidPath = errors.New("csvrepl: invalid path")

	// ErrCreateTable indicates that the CREATE TABLE statement for a file failed
	ErrCreateTable = errors.New("csvrepl: create table failed")

	// ErrInsertRow indicates that inserting a data row failed
	ErrInsertRow = errors.New("csvrepl: insert row failed")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	TableName string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithTable adds table context to the error
func (ec *ErrorContext) WithTable(tableName string) *ErrorContext {
	ec.TableName = tableName
	return ec
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context.
// Every non-nil error passed in stays reachable through errors.Is.
func (ec *ErrorContext) Error(errs ...error) error {
	parts := []string{fmt.Sprintf("csvrepl: %s failed", ec.Operation)}
	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}
	if ec.TableName != "" {
		parts = append(parts, "table: "+ec.TableName)
	}
	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}
	context := strings.Join(parts, ", ")

	format := "%s"
	args := []any{context}
	for _, err := range errs {
		if err != nil {
			format += ": %w"
			args = append(args, err)
		}
	}
	return fmt.Errorf(format, args...)
}

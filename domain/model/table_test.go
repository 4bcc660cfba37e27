package model

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	header := NewHeader([]string{"Name", "Age (Years)"})
	records := []Record{
		NewRecord([]string{"Al", "30"}),
		NewRecord([]string{"Bo", "40"}),
	}

	table := NewTable("t", header, records)

	if table.Name() != "t" {
		t.Errorf("expected name 't', got %s", table.Name())
	}
	if !reflect.DeepEqual(table.Header(), header) {
		t.Errorf("expected header %v, got %v", header, table.Header())
	}
	if want := []string{"name", "age_"}; !reflect.DeepEqual(table.Columns(), want) {
		t.Errorf("expected columns %v, got %v", want, table.Columns())
	}
	if len(table.Records()) != 2 {
		t.Errorf("expected 2 records, got %d", len(table.Records()))
	}
	if err := table.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestTable_Validate(t *testing.T) {
	t.Parallel()

	t.Run("Duplicate normalized columns", func(t *testing.T) {
		t.Parallel()

		table := NewTable("t", NewHeader([]string{"First Name", "first name?"}), nil)
		err := table.Validate()
		if !errors.Is(err, ErrDuplicateColumnName) {
			t.Fatalf("expected ErrDuplicateColumnName, got %v", err)
		}
	})

	t.Run("No columns", func(t *testing.T) {
		t.Parallel()

		table := NewTable("t", NewHeader(nil), nil)
		if err := table.Validate(); !errors.Is(err, ErrNoColumns) {
			t.Fatalf("expected ErrNoColumns, got %v", err)
		}
	})
}

func TestTableName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		index    int
		count    int
		expected string
	}{
		{name: "Single file", index: 0, count: 1, expected: "t"},
		{name: "First of two", index: 0, count: 2, expected: "t1"},
		{name: "Second of two", index: 1, count: 2, expected: "t2"},
		{name: "Tenth of ten", index: 9, count: 10, expected: "t10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := TableName(tt.index, tt.count); got != tt.expected {
				t.Errorf("TableName(%d, %d) = %s, want %s", tt.index, tt.count, got, tt.expected)
			}
		})
	}
}

func TestNewSources(t *testing.T) {
	t.Parallel()

	if got := NewSources(nil); len(got) != 0 {
		t.Errorf("expected no sources, got %v", got)
	}

	got := NewSources([]string{"a.csv", "b.csv"})
	want := []Source{{Path: "a.csv", TableName: "t1"}, {Path: "b.csv", TableName: "t2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewSources() = %v, want %v", got, want)
	}

	got = NewSources([]string{"only.csv"})
	if got[0].TableName != "t" {
		t.Errorf("expected table t for a single file, got %s", got[0].TableName)
	}
}

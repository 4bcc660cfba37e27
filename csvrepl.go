package csvrepl

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/nao1215/csvrepl/domain/model"
)

const (
	// driverName is the database/sql driver backing the store
	driverName = "sqlite"
	// memoryDSN opens a private in-memory database
	memoryDSN = ":memory:"
)

// Store is the in-memory relational store that loaded files live in.
//
// A Store holds exactly one SQLite connection: each connection to ":memory:"
// is its own database, so the pool must never open a second one.
// A Store is meant to be driven by a single goroutine.
type Store struct {
	db     *sql.DB
	output io.Writer
	logger *slog.Logger
}

// Open creates an empty in-memory store.
func Open(ctx context.Context, opts ...Option) (*Store, error) {
	o := newOptions(opts...)

	db, err := sql.Open(driverName, memoryDSN)
	if err != nil {
		return nil, NewErrorContext("open store", "").Error(err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close() // Ignore close error during error handling
		return nil, NewErrorContext("open store", "").Error(err)
	}

	return &Store{
		db:     db,
		output: o.output,
		logger: o.logger,
	}, nil
}

// DB returns the underlying database handle.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the store and every table in it.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadFiles loads every path into its own table: "t" for a single path,
// "t1".."tN" in argument order otherwise. It returns the normalized column
// names of each file, in the same order as paths. The first failure stops
// the whole load.
func (s *Store) LoadFiles(ctx context.Context, paths []string) ([][]string, error) {
	sources := model.NewSources(paths)
	columns := make([][]string, 0, len(sources))
	for _, src := range sources {
		cols, err := s.Load(ctx, src.TableName, src.Path)
		if err != nil {
			return nil, err
		}
		columns = append(columns, cols)
	}
	return columns, nil
}

// Load reads the file at path into a new table named tableName and returns
// its normalized column names in header order.
//
// The table is created and filled inside one transaction, so either every
// row is stored or the table does not exist afterwards. On success a line
// "Loaded <n> rows into <table>(<cols>)" is written to the store output.
func (s *Store) Load(ctx context.Context, tableName, path string) ([]string, error) {
	ec := NewErrorContext("load", path).WithTable(tableName)

	if err := validatePath(path); err != nil {
		return nil, ec.Error(err)
	}

	f := model.NewFile(path)
	header, records, err := decodeFile(ctx, f)
	if err != nil {
		return nil, ec.WithDetails(f.Type().String()).Error(err)
	}

	table := model.NewTable(tableName, header, records)
	if err := table.Validate(); err != nil {
		return nil, ec.Error(err)
	}

	if err := s.insertTable(ctx, table); err != nil {
		return nil, ec.Error(err)
	}

	log := s.logger.With("table", tableName, "path", path)
	if len(records) == 0 {
		log.Warn("file has a header but no data rows")
	}
	log.Debug("file loaded",
		"type", f.Type().String(),
		"compression", f.Compression().String(),
		"rows", len(records),
		"columns", table.Columns(),
	)

	fmt.Fprintf(s.output, "Loaded %d rows into %s(%s)\n",
		len(records), tableName, strings.Join(table.Columns(), ", "))

	return table.Columns(), nil
}

// insertTable creates t and inserts all its records in a single transaction.
func (s *Store) insertTable(ctx context.Context, t *model.Table) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error("rollback failed", "table", t.Name(), "error", rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, createTableQuery(t)); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateTable, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery(t))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInsertRow, err)
	}
	defer stmt.Close()

	for i, record := range t.Records() {
		if _, err = stmt.ExecContext(ctx, record.Values()...); err != nil {
			return fmt.Errorf("%w: data row %d: %w", ErrInsertRow, i+1, err)
		}
	}

	return tx.Commit()
}

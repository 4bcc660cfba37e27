package csvrepl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile writes content to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// openTestStore opens a store that writes to the returned buffer and logs nowhere.
func openTestStore(t *testing.T) (*Store, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	store, err := Open(context.Background(),
		WithOutput(&out),
		WithLogger(NewLogger(io.Discard, slog.LevelDebug)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})
	return store, &out
}

// tableNames lists the user tables of store in name order.
func tableNames(t *testing.T, store *Store) []string {
	t.Helper()

	rows, err := store.DB().Query("SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("Normalized columns and rows in insertion order", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		path := writeFile(t, "people.csv", "Name,Age (Years)\nAl,30\nBo,40\n")

		cols, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)
		assert.Equal(t, []string{"name", "age_"}, cols)
		assert.Equal(t, "Loaded 2 rows into t(name, age_)\n", out.String())

		rows, err := store.DB().Query(`SELECT name, age_ FROM t ORDER BY rowid`)
		require.NoError(t, err)
		defer rows.Close()

		var got [][]string
		for rows.Next() {
			var name, age string
			require.NoError(t, rows.Scan(&name, &age))
			got = append(got, []string{name, age})
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, [][]string{{"Al", "30"}, {"Bo", "40"}}, got)
	})

	t.Run("Values are bound, not interpolated", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		path := writeFile(t, "quotes.csv", "note\n\"it's \"\"quoted\"\"\"\n\"'); DROP TABLE t; --\"\n")

		_, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)

		var count int
		require.NoError(t, store.DB().QueryRow(`SELECT count(*) FROM t WHERE note = ?`, `it's "quoted"`).Scan(&count))
		assert.Equal(t, 1, count)
		require.NoError(t, store.DB().QueryRow(`SELECT count(*) FROM t`).Scan(&count))
		assert.Equal(t, 2, count)
	})

	t.Run("Residual quote in a header stays one identifier", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		path := writeFile(t, "odd.csv", "\"a\"\"b\",c\n1,2\n")

		cols, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)
		assert.Equal(t, []string{`a"b`, "c"}, cols)

		var v string
		require.NoError(t, store.DB().QueryRow(`SELECT "a""b" FROM t`).Scan(&v))
		assert.Equal(t, "1", v)
	})

	t.Run("Header only file creates an empty table", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		path := writeFile(t, "empty.csv", "id,name\n")

		cols, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, cols)
		assert.Equal(t, "Loaded 0 rows into t(id, name)\n", out.String())
		assert.Equal(t, []string{"t"}, tableNames(t, store))
	})

	t.Run("Header that normalizes to nothing is still a column", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		path := writeFile(t, "blank.csv", "(only),b
1,2
")

		cols, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)
		assert.Equal(t, []string{"", "b"}, cols)
		assert.Equal(t, "Loaded 1 rows into t(, b)\n", out.String())

		var count int
		require.NoError(t, store.DB().QueryRow(`SELECT count(*) FROM t`).Scan(&count))
		assert.Equal(t, 1, count)

		out.Reset()
		store.ExecuteAndPrint(context.Background(), "select * from t")
		want := "+---+---+\n" +
			"|   | b |\n" +
			"+---+---+\n" +
			"| 1 | 2 |\n" +
			"+---+---+\n"
		assert.Equal(t, want, out.String())
	})

	t.Run("Duplicate normalized columns fail before the table is created", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		path := writeFile(t, "dup.csv", "First Name,first name?\nA,B\n")

		_, err := store.Load(context.Background(), "t", path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateColumnName)
		assert.Empty(t, out.String())
		assert.Empty(t, tableNames(t, store))
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		_, err := store.Load(context.Background(), "t", filepath.Join(t.TempDir(), "nope.csv"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("Directory is rejected", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		_, err := store.Load(context.Background(), "t", t.TempDir())
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("Ragged row is a decode error", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		path := writeFile(t, "ragged.csv", "a,b\n1,2\n3\n")

		_, err := store.Load(context.Background(), "t", path)
		assert.ErrorIs(t, err, ErrInvalidData)
		assert.Empty(t, tableNames(t, store))
	})

	t.Run("Existing table name fails table creation", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		path := writeFile(t, "a.csv", "x\n1\n")

		_, err := store.Load(context.Background(), "t", path)
		require.NoError(t, err)
		_, err = store.Load(context.Background(), "t", path)
		assert.ErrorIs(t, err, ErrCreateTable)

		var count int
		require.NoError(t, store.DB().QueryRow(`SELECT count(*) FROM t`).Scan(&count))
		assert.Equal(t, 1, count, "failed load must not add rows")
	})
}

func TestStore_LoadFiles(t *testing.T) {
	t.Parallel()

	t.Run("Single file is table t", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		cols, err := store.LoadFiles(context.Background(), []string{writeFile(t, "a.csv", "x\n1\n")})
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"x"}}, cols)
		assert.Equal(t, []string{"t"}, tableNames(t, store))
	})

	t.Run("Several files are t1..tN in argument order", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		paths := []string{
			writeFile(t, "first.csv", "Col A\n1\n"),
			writeFile(t, "second.tsv", "Col B\tCol C\n2\t3\n"),
		}

		cols, err := store.LoadFiles(context.Background(), paths)
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"col_a"}, {"col_b", "col_c"}}, cols)
		assert.Equal(t, []string{"t1", "t2"}, tableNames(t, store))
		assert.Equal(t,
			"Loaded 1 rows into t1(col_a)\nLoaded 1 rows into t2(col_b, col_c)\n",
			out.String())
	})

	t.Run("No files loads nothing", func(t *testing.T) {
		t.Parallel()

		store, out := openTestStore(t)
		cols, err := store.LoadFiles(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, cols)
		assert.Empty(t, out.String())
		assert.Empty(t, tableNames(t, store))
	})

	t.Run("First failure stops loading", func(t *testing.T) {
		t.Parallel()

		store, _ := openTestStore(t)
		paths := []string{
			filepath.Join(t.TempDir(), "missing.csv"),
			writeFile(t, "b.csv", "x\n1\n"),
		}

		_, err := store.LoadFiles(context.Background(), paths)
		require.ErrorIs(t, err, ErrFileNotFound)
		assert.Contains(t, err.Error(), "table: t1")
		assert.Empty(t, tableNames(t, store))
	})
}

// Package csvrepl loads delimited text files into an in-memory SQLite
// database and runs ad-hoc SQL against them.
//
// Each file becomes one table. A single file is loaded as table "t";
// several files become "t1", "t2", ... in the order they are given.
// Every column is VARCHAR and named after its header field:
//
//	"Revenue (USD)" -> revenue_
//	"First Name"    -> first_name
//	"Valid?"        -> valid
//
// Parenthesized text is dropped, the rest is lower-cased, spaces become
// underscores and '.' and '?' are removed.
//
// # Basic Usage
//
//	ctx := context.Background()
//	store, err := csvrepl.Open(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	if _, err := store.LoadFiles(ctx, []string{"sales.csv"}); err != nil {
//	    log.Fatal(err)
//	}
//	store.ExecuteAndPrint(ctx, "SELECT count(*) FROM t")
//
// # Supported Files
//
// CSV is the default for any extension. ".tsv", ".ltsv", ".xlsx" (first
// sheet) and ".parquet" files are decoded accordingly, and a trailing
// ".gz", ".bz2", ".xz" or ".zst" is decompressed transparently.
//
// # SQL Syntax
//
// Queries are passed verbatim to SQLite, so the SQLite dialect applies.
// For complete SQL syntax documentation, see: https://www.sqlite.org/lang.html
package csvrepl

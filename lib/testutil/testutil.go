package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupDB opens an in-memory sqlite database and execs the given
// schema into it. The cleanup function closes the database.
func SetupDB(t testing.TB, schema string) (*sql.DB, func()) {
	database, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	_, err = database.Exec(schema)
	if err != nil {
		t.Fatal(err)
	}
	return database, func() {
		err := database.Close()
		if err != nil {
			t.Fatal(err)
		}
	}
}

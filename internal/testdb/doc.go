//go:build integration

// Package testdb provides helpers for database integration tests.
//
// Tests run against the database named by TASKR_TEST_DATABASE_URL (or
// DATABASE_URL) and are skipped when neither is set. The schema is brought up
// to date once per test binary with the embedded goose migrations, and each
// test runs inside a transaction that is rolled back when it finishes:
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb

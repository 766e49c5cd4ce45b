//go:build integration

// Package testdb provides utilities for database integration tests.
//
// Each test runs in its own transaction which is rolled back when the test
// completes, so tests can run in parallel against one database:
//
//	func TestMyFeature(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t) // skips when DATABASE_URL is unset
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        userID := testdb.MustInsertUser(t, tx, "anna@example.com", domain.RoleStudent)
//	        ...
//	    })
//	}
//
// The connection string is read from DATABASE_URL, falling back to
// FLASHCARDS_TEST_DB_URL.
package testdb

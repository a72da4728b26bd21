// Package statetest provides reusable store contract tests for
// statecore.Store implementations.
//
// Driver modules can use this package from their own tests without
// importing root test helpers.
//
// Example pattern (driver module test):
//
//	func TestSQLiteStoreContract(t *testing.T) {
//		store, err := sqlitestate.New(sqlitestate.Config{
//			DSN: "file:" + filepath.Join(t.TempDir(), "state.db"),
//		})
//		if err != nil {
//			t.Fatalf("new sqlite store: %v", err)
//		}
//
//		// Namespace names per test so suites can share a backend.
//		statetest.RunStoreContract(t, store, statetest.Options{
//			CaseName: t.Name(),
//		})
//	}
package statetest

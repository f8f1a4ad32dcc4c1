package store

import "errors"

// Sentinel errors returned by journal methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoAccount is returned when a record or query names no account.
	ErrNoAccount = errors.New("account id is empty")

	// ErrNilDB is returned when a repository is built without a connection.
	ErrNilDB = errors.New("db is nil")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the journal fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan journal rows")
)

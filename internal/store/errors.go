package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrVersionConflict is returned when a conditional write fails: the
	// version hash supplied by the client does not match the current hash
	// stored in the database, meaning another client has modified the blob
	// since this one last synchronized.
	ErrVersionConflict = errors.New("blob version conflict occurred")

	// ErrBlobNotSaved is returned when a write completes without a driver
	// error but affects zero rows for a reason other than a hash mismatch.
	ErrBlobNotSaved = errors.New("blob was not saved")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan blob row")
)

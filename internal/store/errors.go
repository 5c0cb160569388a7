package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email address (compared
	// case-insensitively) already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly one
	// user record produces an empty result set, or when a conditional update
	// finds no row matching both the user id and the expected credential.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrVaultAlreadyExists is returned when an attempt to create a vault
	// fails because the user already owns one. Each user has at most one
	// vault.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrNoVaultWasFound is returned when a query targets a vault that does
	// not exist for the given user.
	ErrNoVaultWasFound = errors.New("no vault was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)

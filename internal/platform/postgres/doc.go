// Package postgres provides the PostgreSQL implementation of the storage
// interfaces defined in internal/store. It owns the SQL, the mapping between
// rows and domain.Task values, and the classification of driver errors into
// store errors.
//
// Schema changes live in the migrations subpackage and are applied with goose
// at process start, never from inside a request.
package postgres

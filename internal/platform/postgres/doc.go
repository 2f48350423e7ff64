// Package postgres provides PostgreSQL implementations of the store
// interfaces, along with the embedded goose migrations that create the
// schema they depend on.
package postgres

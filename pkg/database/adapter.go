// Package database provides a generic adapter interface over mock database
// backends. This allows different backend implementations (MySQL-like,
// PostgreSQL-like, SQLite-like) to be used interchangeably by the processor.
package database

import (
	"context"
	"io"

	"github.com/patternworks/patterns/pkg/errors"
)

// Adapter is the common capability every backend is adapted to.
// The stub backends never fail, but the error returns let a real client
// (connection refused, query error) slot in behind the same interface.
type Adapter interface {
	// Connect establishes the backend connection.
	Connect(ctx context.Context) error

	// ExecuteQuery runs query against the backend.
	ExecuteQuery(ctx context.Context, query string) error
}

// Kind identifies one of the known backend variants.
type Kind string

const (
	KindMySQL    Kind = "mysql"
	KindPostgres Kind = "postgres"
	KindSQLite   Kind = "sqlite"
)

// NewAdapter builds the adapter (and its backend) for kind, writing
// acknowledgments to out. Unknown kinds yield a validation error.
func NewAdapter(kind Kind, out io.Writer) (Adapter, error) {
	switch kind {
	case KindMySQL:
		return NewMySQLAdapter(out), nil
	case KindPostgres:
		return NewPostgresAdapter(out), nil
	case KindSQLite:
		return NewSQLiteAdapter(out), nil
	default:
		return nil, errors.NewValidationError("kind", "unknown database backend", string(kind))
	}
}

// MySQLAdapter adapts MySQLBackend to the Adapter interface.
type MySQLAdapter struct {
	backend *MySQLBackend
}

// NewMySQLAdapter creates an adapter owning a fresh MySQL backend.
func NewMySQLAdapter(out io.Writer) *MySQLAdapter {
	return &MySQLAdapter{backend: NewMySQLBackend(out)}
}

// Connect forwards to the backend session open.
func (a *MySQLAdapter) Connect(ctx context.Context) error {
	a.backend.OpenSession()
	return nil
}

// ExecuteQuery forwards the query unchanged.
func (a *MySQLAdapter) ExecuteQuery(ctx context.Context, query string) error {
	a.backend.RunStatement(query)
	return nil
}

// PostgresAdapter adapts PostgresBackend to the Adapter interface.
type PostgresAdapter struct {
	backend *PostgresBackend
}

// NewPostgresAdapter creates an adapter owning a fresh PostgreSQL backend.
func NewPostgresAdapter(out io.Writer) *PostgresAdapter {
	return &PostgresAdapter{backend: NewPostgresBackend(out)}
}

// Connect forwards to the backend connection.
func (a *PostgresAdapter) Connect(ctx context.Context) error {
	a.backend.EstablishConn()
	return nil
}

// ExecuteQuery forwards the query unchanged.
func (a *PostgresAdapter) ExecuteQuery(ctx context.Context, query string) error {
	a.backend.Submit(query)
	return nil
}

// SQLiteAdapter adapts SQLiteBackend to the Adapter interface.
type SQLiteAdapter struct {
	backend *SQLiteBackend
}

// NewSQLiteAdapter creates an adapter owning a fresh SQLite backend.
func NewSQLiteAdapter(out io.Writer) *SQLiteAdapter {
	return &SQLiteAdapter{backend: NewSQLiteBackend(out)}
}

// Connect forwards to the backend attach.
func (a *SQLiteAdapter) Connect(ctx context.Context) error {
	a.backend.Attach()
	return nil
}

// ExecuteQuery forwards the query unchanged.
func (a *SQLiteAdapter) ExecuteQuery(ctx context.Context, query string) error {
	a.backend.Evaluate(query)
	return nil
}

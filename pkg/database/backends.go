package database

import (
	"fmt"
	"io"
)

// The backend stubs stand in for real database clients. Each one has its own
// native method surface, which is what the adapters in adapter.go translate
// into the common Adapter interface. Instead of performing I/O they write
// acknowledgment lines to their sink.

// MySQLBackend mimics a MySQL client.
type MySQLBackend struct {
	out io.Writer
}

// NewMySQLBackend creates a MySQL backend stub writing acknowledgments to out.
func NewMySQLBackend(out io.Writer) *MySQLBackend {
	return &MySQLBackend{out: out}
}

// OpenSession acknowledges a MySQL connection.
func (b *MySQLBackend) OpenSession() {
	fmt.Fprintln(b.out, "Connected to MySQL database")
}

// RunStatement acknowledges execution of stmt against MySQL.
func (b *MySQLBackend) RunStatement(stmt string) {
	fmt.Fprintf(b.out, "MySQL executing query: %s\n", stmt)
}

// PostgresBackend mimics a PostgreSQL client.
type PostgresBackend struct {
	out io.Writer
}

// NewPostgresBackend creates a PostgreSQL backend stub writing acknowledgments to out.
func NewPostgresBackend(out io.Writer) *PostgresBackend {
	return &PostgresBackend{out: out}
}

// EstablishConn acknowledges a PostgreSQL connection.
func (b *PostgresBackend) EstablishConn() {
	fmt.Fprintln(b.out, "Connected to PostgreSQL database")
}

// Submit acknowledges execution of query against PostgreSQL.
func (b *PostgresBackend) Submit(query string) {
	fmt.Fprintf(b.out, "PostgreSQL executing query: %s\n", query)
}

// SQLiteBackend mimics an embedded SQLite handle.
type SQLiteBackend struct {
	out io.Writer
}

// NewSQLiteBackend creates a SQLite backend stub writing acknowledgments to out.
func NewSQLiteBackend(out io.Writer) *SQLiteBackend {
	return &SQLiteBackend{out: out}
}

// Attach acknowledges opening the SQLite database.
func (b *SQLiteBackend) Attach() {
	fmt.Fprintln(b.out, "Connected to SQLite database")
}

// Evaluate acknowledges execution of query against SQLite.
func (b *SQLiteBackend) Evaluate(query string) {
	fmt.Fprintf(b.out, "SQLite executing query: %s\n", query)
}

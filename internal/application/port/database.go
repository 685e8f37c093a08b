package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the database connection.
// Implementations may initialize the database lazily on first access.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// IsInitialized returns true if the database has been initialized.
	IsInitialized() bool
}

package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager defines database transaction handling for SQL backed stores.
// Not to be confused with the domain Transaction record.
type TxManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction; rolling back a finished one is not an error
	Rollback(ctx context.Context, tx pgx.Tx) error

	// LockXact takes an advisory lock held until tx ends
	LockXact(ctx context.Context, tx pgx.Tx, key int64) error
}

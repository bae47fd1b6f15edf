// Package repo contains all database access logic for the travel agency API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test,
// which gives per-test isolation without cleanup SQL.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// beginner is satisfied by *pgxpool.Pool and pgx.Tx. On a pgx.Tx, Begin
// creates a savepoint, so a TxRunner also works inside a test transaction.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// uniqueViolation is the Postgres SQLSTATE for a unique or primary key conflict.
const uniqueViolation = "23505"

// Repos bundles every repository bound to the same connection or transaction.
type Repos struct {
	Trips         TripRepo
	Clients       ClientRepo
	Registrations RegistrationRepo
}

// NewRepos builds all repositories on top of db.
func NewRepos(db db) Repos {
	return Repos{
		Trips:         NewTripRepo(db),
		Clients:       NewClientRepo(db),
		Registrations: NewRegistrationRepo(db),
	}
}

// TxRunner runs a unit of work inside a single database transaction.
type TxRunner interface {
	// InTx begins a transaction, calls fn with repositories bound to it, and
	// commits when fn returns nil. Any error from fn rolls the transaction back
	// and is returned unchanged.
	InTx(ctx context.Context, fn func(Repos) error) error
}

type pgTxRunner struct {
	db beginner
}

// NewTxRunner constructs a TxRunner. In production pass *pgxpool.Pool.
func NewTxRunner(db beginner) TxRunner {
	return &pgTxRunner{db: db}
}

func (r *pgTxRunner) InTx(ctx context.Context, fn func(Repos) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepos(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.TxRunner.InTx: commit: %w", err)
	}
	return nil
}

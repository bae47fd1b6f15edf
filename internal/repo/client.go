package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// ClientRepo defines the persistence operations for Clients.
type ClientRepo interface {
	// Create inserts a new client and returns the DB-generated id.
	// No uniqueness is enforced on email or pesel.
	Create(ctx context.Context, client domain.Client) (int, error)

	// GetByID retrieves a single client.
	// Returns domain.ErrNotFound if no client with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Client, error)

	// Exists reports whether a client row with that ID exists.
	Exists(ctx context.Context, id int) (bool, error)
}

// pgClientRepo is the Postgres implementation of ClientRepo.
type pgClientRepo struct {
	db db
}

// NewClientRepo constructs a ClientRepo backed by the provided db connection.
func NewClientRepo(db db) ClientRepo {
	return &pgClientRepo{db: db}
}

// Create inserts a client row and returns its id.
func (r *pgClientRepo) Create(ctx context.Context, client domain.Client) (int, error) {
	const q = `
		INSERT INTO Client (FirstName, LastName, Email, Telephone, Pesel)
		VALUES (@first_name, @last_name, @email, @telephone, @pesel)
		RETURNING IdClient`

	args := pgx.NamedArgs{
		"first_name": client.FirstName,
		"last_name":  client.LastName,
		"email":      client.Email,
		"telephone":  client.Telephone,
		"pesel":      client.Pesel,
	}

	var id int
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		return 0, fmt.Errorf("repo.ClientRepo.Create: %w", err)
	}
	return id, nil
}

// GetByID retrieves a client by primary key.
func (r *pgClientRepo) GetByID(ctx context.Context, id int) (domain.Client, error) {
	const q = `
		SELECT IdClient, FirstName, LastName, Email, Telephone, Pesel
		FROM Client
		WHERE IdClient = @id`

	var c domain.Client
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", domain.ErrNotFound)
		}
		return domain.Client{}, fmt.Errorf("repo.ClientRepo.GetByID: %w", err)
	}
	return c, nil
}

// Exists checks for the client row without reading it.
func (r *pgClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM Client WHERE IdClient = @id)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.ClientRepo.Exists: %w", err)
	}
	return exists, nil
}

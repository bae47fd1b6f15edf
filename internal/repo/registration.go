package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// RegistrationRepo defines the persistence operations for the Client_Trip join table.
type RegistrationRepo interface {
	// Create inserts a registration. Returns domain.ErrAlreadyRegistered if the
	// (client, trip) pair already exists.
	Create(ctx context.Context, reg domain.Registration) error

	// Delete removes the registration for the pair.
	// Returns domain.ErrNotFound if there is none; nothing is deleted then.
	Delete(ctx context.Context, clientID, tripID int) error

	// CountByTrip returns the number of registrations held by a trip.
	CountByTrip(ctx context.Context, tripID int) (int, error)

	// ListByClient returns the client's registrations with trip details,
	// ordered by RegisteredAt ascending, then trip id.
	ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// pgRegistrationRepo is the Postgres implementation of RegistrationRepo.
type pgRegistrationRepo struct {
	db db
}

// NewRegistrationRepo constructs a RegistrationRepo backed by the provided db connection.
func NewRegistrationRepo(db db) RegistrationRepo {
	return &pgRegistrationRepo{db: db}
}

// Create inserts one Client_Trip row. A nil PaymentDate becomes NULL.
// Dates that are not real YYYYMMDD calendar days are rejected before the insert.
func (r *pgRegistrationRepo) Create(ctx context.Context, reg domain.Registration) error {
	const q = `
		INSERT INTO Client_Trip (IdClient, IdTrip, RegisteredAt, PaymentDate)
		VALUES (@client_id, @trip_id, @registered_at, @payment_date)`

	if !reg.RegisteredAt.Valid() {
		return fmt.Errorf("repo.RegistrationRepo.Create: %w: registeredAt %d is not a date", domain.ErrValidation, reg.RegisteredAt)
	}
	if reg.PaymentDate != nil && !reg.PaymentDate.Valid() {
		return fmt.Errorf("repo.RegistrationRepo.Create: %w: paymentDate %d is not a date", domain.ErrValidation, *reg.PaymentDate)
	}

	var payment pgtype.Int4
	if reg.PaymentDate != nil {
		payment = pgtype.Int4{Int32: int32(*reg.PaymentDate), Valid: true}
	}

	args := pgx.NamedArgs{
		"client_id":     reg.ClientID,
		"trip_id":       reg.TripID,
		"registered_at": int(reg.RegisteredAt),
		"payment_date":  payment,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("repo.RegistrationRepo.Create: %w", domain.ErrAlreadyRegistered)
		}
		return fmt.Errorf("repo.RegistrationRepo.Create: %w", err)
	}
	return nil
}

// Delete removes a registration; the affected row count decides ErrNotFound.
func (r *pgRegistrationRepo) Delete(ctx context.Context, clientID, tripID int) error {
	const q = `DELETE FROM Client_Trip WHERE IdClient = @client_id AND IdTrip = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"client_id": clientID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.RegistrationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.RegistrationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// CountByTrip counts Client_Trip rows for the trip.
func (r *pgRegistrationRepo) CountByTrip(ctx context.Context, tripID int) (int, error) {
	const q = `SELECT COUNT(*) FROM Client_Trip WHERE IdTrip = @trip_id`

	var n int
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}).Scan(&n); err != nil {
		return 0, fmt.Errorf("repo.RegistrationRepo.CountByTrip: %w", err)
	}
	return n, nil
}

// ListByClient joins the client's registrations with their trips.
func (r *pgRegistrationRepo) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	const q = `
		SELECT t.IdTrip, t.Name, t.Description, t.DateFrom, t.DateTo, t.MaxPeople,
		       ct.RegisteredAt, ct.PaymentDate
		FROM Client_Trip AS ct
		JOIN Trip        AS t ON t.IdTrip = ct.IdTrip
		WHERE ct.IdClient = @client_id
		ORDER BY ct.RegisteredAt, t.IdTrip`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"client_id": clientID})
	if err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: %w", err)
	}
	defer rows.Close()

	trips := []domain.ClientTrip{}
	for rows.Next() {
		ct, err := scanClientTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: scan: %w", err)
		}
		trips = append(trips, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RegistrationRepo.ListByClient: rows: %w", err)
	}
	return trips, nil
}

// scanClientTrip maps one registration row, handling the nullable PaymentDate.
func scanClientTrip(s scanner) (domain.ClientTrip, error) {
	var (
		ct           domain.ClientTrip
		dateFrom     pgtype.Date
		dateTo       pgtype.Date
		registeredAt int
		paymentDate  pgtype.Int4
	)

	err := s.Scan(
		&ct.Trip.ID, &ct.Trip.Name, &ct.Trip.Description, &dateFrom, &dateTo, &ct.Trip.MaxPeople,
		&registeredAt, &paymentDate,
	)
	if err != nil {
		return domain.ClientTrip{}, err
	}

	ct.Trip.DateFrom = dateFrom.Time
	ct.Trip.DateTo = dateTo.Time
	ct.RegisteredAt = domain.DateInt(registeredAt)
	if paymentDate.Valid {
		pd := domain.DateInt(paymentDate.Int32)
		ct.PaymentDate = &pd
	}
	return ct, nil
}

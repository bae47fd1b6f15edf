package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// TripRepo defines the read operations for Trips. Trips are pre-seeded, so
// there is no create, update or delete.
type TripRepo interface {
	// List returns every trip with its countries, ordered by trip id.
	List(ctx context.Context) ([]domain.Trip, error)

	// GetByID retrieves a single trip with its countries.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id int) (domain.Trip, error)

	// LockCapacity reads MaxPeople for the trip and takes a row lock on it
	// until the surrounding transaction ends. Concurrent callers for the same
	// trip block here, which serializes capacity checks.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	LockCapacity(ctx context.Context, id int) (int, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// tripWithCountriesQuery yields one row per (trip, country) pair and one row
// with NULL country columns for trips that have no countries.
const tripWithCountriesQuery = `
		SELECT t.IdTrip, t.Name, t.Description, t.DateFrom, t.DateTo, t.MaxPeople,
		       c.IdCountry, c.Name
		FROM Trip AS t
		LEFT JOIN Country_Trip AS ct ON ct.IdTrip = t.IdTrip
		LEFT JOIN Country      AS c  ON c.IdCountry = ct.IdCountry`

// List returns all trips ordered by id, each with its countries ordered by id.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = tripWithCountriesQuery + `
		ORDER BY t.IdTrip, c.IdCountry`

	trips, err := r.queryTrips(ctx, q, nil)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// GetByID retrieves one trip and its countries.
func (r *pgTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	const q = tripWithCountriesQuery + `
		WHERE t.IdTrip = @id
		ORDER BY c.IdCountry`

	trips, err := r.queryTrips(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	if len(trips) == 0 {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return trips[0], nil
}

// LockCapacity selects the trip's capacity FOR UPDATE.
func (r *pgTripRepo) LockCapacity(ctx context.Context, id int) (int, error) {
	const q = `SELECT MaxPeople FROM Trip WHERE IdTrip = @id FOR UPDATE`

	var maxPeople int
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}).Scan(&maxPeople)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("repo.TripRepo.LockCapacity: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("repo.TripRepo.LockCapacity: %w", err)
	}
	return maxPeople, nil
}

// queryTrips runs a tripWithCountriesQuery variant and groups the flat rows.
// A nil args value runs the query without parameters.
func (r *pgTripRepo) queryTrips(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.Trip, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if args == nil {
		rows, err = r.db.Query(ctx, q)
	} else {
		rows, err = r.db.Query(ctx, q, args)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var flat []tripRow
	for rows.Next() {
		tr, err := scanTripRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		flat = append(flat, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return groupTripRows(flat), nil
}

// tripRow is one row of the trip/country join. country is nil when the trip
// has no countries.
type tripRow struct {
	trip    domain.Trip
	country *domain.Country
}

// scanTripRow maps one joined row, handling the nullable country columns.
func scanTripRow(s scanner) (tripRow, error) {
	var (
		tr          tripRow
		dateFrom    pgtype.Date
		dateTo      pgtype.Date
		countryID   pgtype.Int4
		countryName pgtype.Text
	)

	err := s.Scan(
		&tr.trip.ID, &tr.trip.Name, &tr.trip.Description, &dateFrom, &dateTo, &tr.trip.MaxPeople,
		&countryID, &countryName,
	)
	if err != nil {
		return tripRow{}, err
	}

	tr.trip.DateFrom = dateFrom.Time
	tr.trip.DateTo = dateTo.Time
	if countryID.Valid {
		tr.country = &domain.Country{ID: int(countryID.Int32), Name: countryName.String}
	}
	return tr, nil
}

// groupTripRows folds flat join rows into trips, keeping the order in which
// each trip id first appears. Every returned trip has a non-nil Countries slice.
func groupTripRows(rows []tripRow) []domain.Trip {
	trips := []domain.Trip{}
	index := make(map[int]int, len(rows))

	for _, row := range rows {
		i, ok := index[row.trip.ID]
		if !ok {
			t := row.trip
			t.Countries = []domain.Country{}
			trips = append(trips, t)
			i = len(trips) - 1
			index[t.ID] = i
		}
		if row.country != nil {
			trips[i].Countries = append(trips[i].Countries, *row.country)
		}
	}
	return trips
}

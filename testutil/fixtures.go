package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripFixture describes a Trip row to insert. The API cannot create trips, so
// tests insert them directly.
type TripFixture struct {
	Name        string
	Description string
	DateFrom    time.Time
	DateTo      time.Time
	MaxPeople   int
}

// DefaultTrip returns a one-week trip with room for maxPeople.
func DefaultTrip(maxPeople int) TripFixture {
	return TripFixture{
		Name:        "Test Trip",
		Description: "Inserted by a test",
		DateFrom:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2026, 7, 8, 0, 0, 0, 0, time.UTC),
		MaxPeople:   maxPeople,
	}
}

// InsertTrip inserts a Trip row and returns its id.
func InsertTrip(t *testing.T, q Querier, f TripFixture) int {
	t.Helper()
	var id int
	err := q.QueryRow(context.Background(), `
		INSERT INTO Trip (Name, Description, DateFrom, DateTo, MaxPeople)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING IdTrip`,
		f.Name, f.Description, f.DateFrom, f.DateTo, f.MaxPeople,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertTrip: %v", err)
	}
	return id
}

// InsertCountry inserts a Country row and returns its id.
func InsertCountry(t *testing.T, q Querier, name string) int {
	t.Helper()
	var id int
	err := q.QueryRow(context.Background(),
		`INSERT INTO Country (Name) VALUES ($1) RETURNING IdCountry`, name,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertCountry: %v", err)
	}
	return id
}

// LinkCountry attaches a country to a trip through Country_Trip.
func LinkCountry(t *testing.T, q Querier, countryID, tripID int) {
	t.Helper()
	_, err := q.Exec(context.Background(),
		`INSERT INTO Country_Trip (IdCountry, IdTrip) VALUES ($1, $2)`, countryID, tripID,
	)
	if err != nil {
		t.Fatalf("testutil.LinkCountry: %v", err)
	}
}

// InsertClient inserts a Client row with placeholder contact data and
// returns its id.
func InsertClient(t *testing.T, q Querier, firstName string) int {
	t.Helper()
	var id int
	err := q.QueryRow(context.Background(), `
		INSERT INTO Client (FirstName, LastName, Email, Telephone, Pesel)
		VALUES ($1, 'Kowalski', 'test@example.com', '+48 600 100 200', '90010112345')
		RETURNING IdClient`, firstName,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testutil.InsertClient: %v", err)
	}
	return id
}

// CountRegistrations returns the number of Client_Trip rows for a trip.
func CountRegistrations(t *testing.T, q Querier, tripID int) int {
	t.Helper()
	var n int
	err := q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM Client_Trip WHERE IdTrip = $1`, tripID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testutil.CountRegistrations: %v", err)
	}
	return n
}

// Package handler implements the HTTP handlers for the travel agency API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource files (health.go, trip.go, client.go,
// registration.go) but all share the same Server struct.
package handler

import (
	"context"
	"log/slog"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// TripServicer defines the trip queries the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	ListTrips(ctx context.Context) ([]domain.Trip, error)
	GetTrip(ctx context.Context, tripID int) (domain.Trip, error)
	ListClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

// ClientServicer defines the client operations the handlers depend on.
type ClientServicer interface {
	Create(ctx context.Context, client domain.Client) (int, error)
	GetByID(ctx context.Context, id int) (domain.Client, error)
}

// RegistrationServicer defines the booking operations the handlers depend on.
type RegistrationServicer interface {
	Register(ctx context.Context, clientID, tripID int) error
	Unregister(ctx context.Context, clientID, tripID int) error
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via Routes.
type Server struct {
	trips         TripServicer
	clients       ClientServicer
	registrations RegistrationServicer
	db            Pinger
	log           *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// A nil logger falls back to slog.Default().
func NewServer(trips TripServicer, clients ClientServicer, registrations RegistrationServicer, db Pinger, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{trips: trips, clients: clients, registrations: registrations, db: db, log: log}
}

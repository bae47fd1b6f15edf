// Package service contains the business logic for the travel agency API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// TripService answers read-only questions about trips and a client's bookings.
type TripService struct {
	trips         repo.TripRepo
	clients       repo.ClientRepo
	registrations repo.RegistrationRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, clients repo.ClientRepo, registrations repo.RegistrationRepo) *TripService {
	return &TripService{trips: trips, clients: clients, registrations: registrations}
}

// ListTrips returns every trip with its countries.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListTrips: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// GetTrip returns one trip with its countries.
// Returns domain.ErrTripNotFound if no trip has that id.
func (s *TripService) GetTrip(ctx context.Context, tripID int) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetTrip: %w", domain.ErrTripNotFound)
	}
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetTrip: %w", err)
	}
	return trip, nil
}

// ListClientTrips returns the trips a client is registered for, oldest
// registration first. Returns domain.ErrClientNotFound for an unknown client;
// a known client with no registrations gets an empty slice.
func (s *TripService) ListClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	exists, err := s.clients.Exists(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListClientTrips: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("service.TripService.ListClientTrips: %w", domain.ErrClientNotFound)
	}

	trips, err := s.registrations.ListByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListClientTrips: %w", err)
	}
	if trips == nil {
		return []domain.ClientTrip{}, nil
	}
	return trips, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// RegistrationService books clients onto trips and cancels bookings.
type RegistrationService struct {
	tx            repo.TxRunner
	registrations repo.RegistrationRepo
	now           func() time.Time
}

// NewRegistrationService constructs a RegistrationService.
// now supplies the registration date; nil means time.Now.
func NewRegistrationService(tx repo.TxRunner, registrations repo.RegistrationRepo, now func() time.Time) *RegistrationService {
	if now == nil {
		now = time.Now
	}
	return &RegistrationService{tx: tx, registrations: registrations, now: now}
}

// Register books clientID onto tripID, dated today and unpaid.
//
// All checks and the insert run in one transaction. The trip row is locked
// while its registrations are counted, so concurrent bookings for the same
// trip queue behind each other and MaxPeople cannot be exceeded.
//
// Errors, in check order: domain.ErrClientNotFound, domain.ErrTripNotFound,
// domain.ErrTripFull, domain.ErrAlreadyRegistered.
func (s *RegistrationService) Register(ctx context.Context, clientID, tripID int) error {
	err := s.tx.InTx(ctx, func(r repo.Repos) error {
		exists, err := r.Clients.Exists(ctx, clientID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrClientNotFound
		}

		maxPeople, err := r.Trips.LockCapacity(ctx, tripID)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrTripNotFound
		}
		if err != nil {
			return err
		}

		count, err := r.Registrations.CountByTrip(ctx, tripID)
		if err != nil {
			return err
		}
		if count >= maxPeople {
			return domain.ErrTripFull
		}

		return r.Registrations.Create(ctx, domain.Registration{
			ClientID:     clientID,
			TripID:       tripID,
			RegisteredAt: domain.DateIntOf(s.now()),
		})
	})
	if err != nil {
		return fmt.Errorf("service.RegistrationService.Register: %w", err)
	}
	return nil
}

// Unregister cancels clientID's booking of tripID.
// Returns domain.ErrRegistrationNotFound if there is no such booking.
func (s *RegistrationService) Unregister(ctx context.Context, clientID, tripID int) error {
	err := s.registrations.Delete(ctx, clientID, tripID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.RegistrationService.Unregister: %w", domain.ErrRegistrationNotFound)
	}
	if err != nil {
		return fmt.Errorf("service.RegistrationService.Unregister: %w", err)
	}
	return nil
}

package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// ---- GET /clients/{clientId}/trips -----------------------------------------

func TestListClientTrips_200(t *testing.T) {
	paid := domain.DateInt(20260120)
	trip := tripFixture()
	svc := &mockTripServicer{listClientTrips: func(_ context.Context, clientID int) ([]domain.ClientTrip, error) {
		assert.Equal(t, 5, clientID)
		return []domain.ClientTrip{
			{Trip: trip, RegisteredAt: 20260110},
			{Trip: trip, RegisteredAt: 20260111, PaymentDate: &paid},
		}, nil
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/clients/5/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"id":3,"name":"Alps Crossing","description":"Hut to hut","dateFrom":"2026-08-01","dateTo":"2026-08-10","maxPeople":12,"registeredAt":20260110,"paymentDate":null},
		{"id":3,"name":"Alps Crossing","description":"Hut to hut","dateFrom":"2026-08-01","dateTo":"2026-08-10","maxPeople":12,"registeredAt":20260111,"paymentDate":20260120}
	]`, rec.Body.String())
}

func TestListClientTrips_200_Empty(t *testing.T) {
	svc := &mockTripServicer{listClientTrips: func(context.Context, int) ([]domain.ClientTrip, error) {
		return []domain.ClientTrip{}, nil
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/clients/5/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListClientTrips_400_IDOutOfRange(t *testing.T) {
	called := false
	svc := &mockTripServicer{listClientTrips: func(context.Context, int) ([]domain.ClientTrip, error) {
		called = true
		return nil, nil
	}}

	// Ids are int4 in the database; one past that range never reaches the service.
	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/clients/99999999999/trips", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "invalid_parameter", got.Code)
	assert.Contains(t, got.Message, "clientId")
	assert.False(t, called)
}

func TestListClientTrips_404(t *testing.T) {
	svc := &mockTripServicer{listClientTrips: func(context.Context, int) ([]domain.ClientTrip, error) {
		return nil, fmt.Errorf("service.TripService.ListClientTrips: %w", domain.ErrClientNotFound)
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/clients/5/trips", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "client_not_found", decodeError(t, rec).Code)
}

// ---- PUT /clients/{clientId}/trips/{tripId} --------------------------------

func TestRegisterClientForTrip_204(t *testing.T) {
	var gotClient, gotTrip int
	svc := &mockRegistrationServicer{register: func(_ context.Context, clientID, tripID int) error {
		gotClient, gotTrip = clientID, tripID
		return nil
	}}

	rec := do(t, newHTTPHandler(deps{registrations: svc}), http.MethodPut, "/clients/5/trips/3", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, 5, gotClient)
	assert.Equal(t, 3, gotTrip)
}

func TestRegisterClientForTrip_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"unknown client", domain.ErrClientNotFound, http.StatusNotFound, "client_not_found"},
		{"unknown trip", domain.ErrTripNotFound, http.StatusNotFound, "trip_not_found"},
		{"trip full", domain.ErrTripFull, http.StatusConflict, "trip_full"},
		{"already registered", domain.ErrAlreadyRegistered, http.StatusConflict, "already_registered"},
		{"unexpected", errors.New("deadlock detected"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRegistrationServicer{register: func(context.Context, int, int) error {
				return fmt.Errorf("service.RegistrationService.Register: %w", tt.err)
			}}

			rec := do(t, newHTTPHandler(deps{registrations: svc}), http.MethodPut, "/clients/5/trips/3", nil)

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestRegisterClientForTrip_400_NonIntegerID(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodPut, "/clients/x/trips/3", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "clientId")
}

func TestRegisterClientForTrip_400_TripIDOutOfRange(t *testing.T) {
	called := false
	svc := &mockRegistrationServicer{register: func(context.Context, int, int) error {
		called = true
		return nil
	}}

	rec := do(t, newHTTPHandler(deps{registrations: svc}), http.MethodPut, "/clients/5/trips/2147483648", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	got := decodeError(t, rec)
	assert.Equal(t, "invalid_parameter", got.Code)
	assert.Contains(t, got.Message, "tripId")
	assert.False(t, called)
}

// ---- DELETE /clients/{clientId}/trips/{tripId} -----------------------------

func TestUnregisterClientFromTrip_204(t *testing.T) {
	svc := &mockRegistrationServicer{unregister: func(context.Context, int, int) error { return nil }}

	rec := do(t, newHTTPHandler(deps{registrations: svc}), http.MethodDelete, "/clients/5/trips/3", nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestUnregisterClientFromTrip_404(t *testing.T) {
	svc := &mockRegistrationServicer{unregister: func(context.Context, int, int) error {
		return fmt.Errorf("service.RegistrationService.Unregister: %w", domain.ErrRegistrationNotFound)
	}}

	rec := do(t, newHTTPHandler(deps{registrations: svc}), http.MethodDelete, "/clients/5/trips/3", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "registration_not_found", decodeError(t, rec).Code)
}

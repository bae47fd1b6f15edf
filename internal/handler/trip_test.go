package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          3,
		Name:        "Alps Crossing",
		Description: "Hut to hut",
		DateFrom:    time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DateTo:      time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		MaxPeople:   12,
		Countries:   []domain.Country{{ID: 2, Name: "Germany"}, {ID: 3, Name: "Italy"}},
	}
}

// ---- GET /trips ------------------------------------------------------------

func TestListTrips_200(t *testing.T) {
	bare := tripFixture()
	bare.ID = 4
	bare.Countries = []domain.Country{}
	svc := &mockTripServicer{listTrips: func(context.Context) ([]domain.Trip, error) {
		return []domain.Trip{tripFixture(), bare}, nil
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "2026-08-01", resp[0]["dateFrom"])
	assert.Equal(t, "2026-08-10", resp[0]["dateTo"])
	assert.Equal(t, float64(12), resp[0]["maxPeople"])
	assert.Equal(t, []any{
		map[string]any{"id": float64(2), "name": "Germany"},
		map[string]any{"id": float64(3), "name": "Italy"},
	}, resp[0]["countries"])
	assert.Equal(t, []any{}, resp[1]["countries"], "countries must be [] not null")
}

func TestListTrips_200_Empty(t *testing.T) {
	svc := &mockTripServicer{listTrips: func(context.Context) ([]domain.Trip, error) {
		return []domain.Trip{}, nil
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTrips_500_HidesCause(t *testing.T) {
	var logs bytes.Buffer
	svc := &mockTripServicer{listTrips: func(context.Context) ([]domain.Trip, error) {
		return nil, errors.New("pq: password authentication failed")
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc, logs: &logs}), http.MethodGet, "/trips", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "internal_error", detail.Code)
	assert.NotContains(t, detail.Message, "password")
	assert.Contains(t, logs.String(), "password authentication failed", "cause must be logged")
}

// ---- GET /trips/{tripId} ---------------------------------------------------

func TestGetTrip_200(t *testing.T) {
	var gotID int
	svc := &mockTripServicer{getTrip: func(_ context.Context, id int) (domain.Trip, error) {
		gotID = id
		return tripFixture(), nil
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/trips/3", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, gotID)
	assert.Contains(t, rec.Body.String(), `"name":"Alps Crossing"`)
}

func TestGetTrip_404(t *testing.T) {
	svc := &mockTripServicer{getTrip: func(context.Context, int) (domain.Trip, error) {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetTrip: %w", domain.ErrTripNotFound)
	}}

	rec := do(t, newHTTPHandler(deps{trips: svc}), http.MethodGet, "/trips/99", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "trip_not_found", decodeError(t, rec).Code)
}

func TestGetTrip_400_NonIntegerID(t *testing.T) {
	rec := do(t, newHTTPHandler(deps{}), http.MethodGet, "/trips/abc", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "invalid_parameter", detail.Code)
	assert.Contains(t, detail.Message, "tripId")
}

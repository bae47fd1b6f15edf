package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	listTrips       func(ctx context.Context) ([]domain.Trip, error)
	getTrip         func(ctx context.Context, id int) (domain.Trip, error)
	listClientTrips func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

func (m *mockTripServicer) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return m.listTrips(ctx)
}
func (m *mockTripServicer) GetTrip(ctx context.Context, id int) (domain.Trip, error) {
	return m.getTrip(ctx, id)
}
func (m *mockTripServicer) ListClientTrips(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listClientTrips(ctx, clientID)
}

type mockClientServicer struct {
	create  func(ctx context.Context, c domain.Client) (int, error)
	getByID func(ctx context.Context, id int) (domain.Client, error)
}

func (m *mockClientServicer) Create(ctx context.Context, c domain.Client) (int, error) {
	return m.create(ctx, c)
}
func (m *mockClientServicer) GetByID(ctx context.Context, id int) (domain.Client, error) {
	return m.getByID(ctx, id)
}

type mockRegistrationServicer struct {
	register   func(ctx context.Context, clientID, tripID int) error
	unregister func(ctx context.Context, clientID, tripID int) error
}

func (m *mockRegistrationServicer) Register(ctx context.Context, clientID, tripID int) error {
	return m.register(ctx, clientID, tripID)
}
func (m *mockRegistrationServicer) Unregister(ctx context.Context, clientID, tripID int) error {
	return m.unregister(ctx, clientID, tripID)
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer         = (*mockTripServicer)(nil)
	_ handler.ClientServicer       = (*mockClientServicer)(nil)
	_ handler.RegistrationServicer = (*mockRegistrationServicer)(nil)
	_ handler.Pinger               = pingerFunc(nil)
)

// ---- helpers ---------------------------------------------------------------

// deps groups the mocks one test wires. Nil fields get empty mocks whose
// methods panic if called, which fails the test loudly.
type deps struct {
	trips         *mockTripServicer
	clients       *mockClientServicer
	registrations *mockRegistrationServicer
	db            handler.Pinger
	logs          io.Writer
}

// newHTTPHandler wires a Server with the given mocks into a chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	if d.trips == nil {
		d.trips = &mockTripServicer{}
	}
	if d.clients == nil {
		d.clients = &mockClientServicer{}
	}
	if d.registrations == nil {
		d.registrations = &mockRegistrationServicer{}
	}
	if d.logs == nil {
		d.logs = io.Discard
	}
	logger := slog.New(slog.NewJSONHandler(d.logs, nil))
	srv := handler.NewServer(d.trips, d.clients, d.registrations, d.db, logger)
	return srv.Routes(chi.NewRouter())
}

func do(t *testing.T, h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

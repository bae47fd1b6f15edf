package service_test

import (
	"context"
	"sort"
	"sync"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	list         func(ctx context.Context) ([]domain.Trip, error)
	getByID      func(ctx context.Context, id int) (domain.Trip, error)
	lockCapacity func(ctx context.Context, id int) (int, error)
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) { return m.list(ctx) }
func (m *mockTripRepo) GetByID(ctx context.Context, id int) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) LockCapacity(ctx context.Context, id int) (int, error) {
	return m.lockCapacity(ctx, id)
}

type mockClientRepo struct {
	create  func(ctx context.Context, c domain.Client) (int, error)
	getByID func(ctx context.Context, id int) (domain.Client, error)
	exists  func(ctx context.Context, id int) (bool, error)
}

func (m *mockClientRepo) Create(ctx context.Context, c domain.Client) (int, error) {
	return m.create(ctx, c)
}
func (m *mockClientRepo) GetByID(ctx context.Context, id int) (domain.Client, error) {
	return m.getByID(ctx, id)
}
func (m *mockClientRepo) Exists(ctx context.Context, id int) (bool, error) { return m.exists(ctx, id) }

type mockRegistrationRepo struct {
	create       func(ctx context.Context, r domain.Registration) error
	delete       func(ctx context.Context, clientID, tripID int) error
	countByTrip  func(ctx context.Context, tripID int) (int, error)
	listByClient func(ctx context.Context, clientID int) ([]domain.ClientTrip, error)
}

func (m *mockRegistrationRepo) Create(ctx context.Context, r domain.Registration) error {
	return m.create(ctx, r)
}
func (m *mockRegistrationRepo) Delete(ctx context.Context, clientID, tripID int) error {
	return m.delete(ctx, clientID, tripID)
}
func (m *mockRegistrationRepo) CountByTrip(ctx context.Context, tripID int) (int, error) {
	return m.countByTrip(ctx, tripID)
}
func (m *mockRegistrationRepo) ListByClient(ctx context.Context, clientID int) ([]domain.ClientTrip, error) {
	return m.listByClient(ctx, clientID)
}

// stubTx runs fn against a fixed set of repos without any transaction.
type stubTx struct {
	repos repo.Repos
}

func (s stubTx) InTx(_ context.Context, fn func(repo.Repos) error) error { return fn(s.repos) }

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.TripRepo         = (*mockTripRepo)(nil)
	_ repo.ClientRepo       = (*mockClientRepo)(nil)
	_ repo.RegistrationRepo = (*mockRegistrationRepo)(nil)
	_ repo.TxRunner         = (*memStore)(nil)
	_ repo.TxRunner         = stubTx{}
)

// ---- in-memory store -------------------------------------------------------

// memStore is an in-memory implementation of every repo plus repo.TxRunner.
// InTx holds the store lock for the whole unit of work and restores the
// previous state when fn fails, which mirrors a serialized transaction.
// Direct (non-InTx) repo calls are not synchronized; tests make them from a
// single goroutine.
type memStore struct {
	mu           sync.Mutex
	trips        map[int]domain.Trip
	clients      map[int]domain.Client
	regs         []domain.Registration
	nextClientID int
}

func newMemStore(trips ...domain.Trip) *memStore {
	s := &memStore{trips: map[int]domain.Trip{}, clients: map[int]domain.Client{}, nextClientID: 1}
	for _, t := range trips {
		s.trips[t.ID] = t
	}
	return s
}

func (s *memStore) repos() repo.Repos {
	return repo.Repos{Trips: memTrips{s}, Clients: memClients{s}, Registrations: memRegs{s}}
}

func (s *memStore) InTx(_ context.Context, fn func(repo.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	savedRegs := append([]domain.Registration(nil), s.regs...)
	savedClients := make(map[int]domain.Client, len(s.clients))
	for k, v := range s.clients {
		savedClients[k] = v
	}
	savedNext := s.nextClientID

	if err := fn(s.repos()); err != nil {
		s.regs, s.clients, s.nextClientID = savedRegs, savedClients, savedNext
		return err
	}
	return nil
}

func (s *memStore) count(tripID int) int {
	n := 0
	for _, r := range s.regs {
		if r.TripID == tripID {
			n++
		}
	}
	return n
}

type memTrips struct{ s *memStore }

func (m memTrips) List(_ context.Context) ([]domain.Trip, error) {
	out := make([]domain.Trip, 0, len(m.s.trips))
	for _, t := range m.s.trips {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memTrips) GetByID(_ context.Context, id int) (domain.Trip, error) {
	t, ok := m.s.trips[id]
	if !ok {
		return domain.Trip{}, domain.ErrNotFound
	}
	return t, nil
}

func (m memTrips) LockCapacity(_ context.Context, id int) (int, error) {
	t, ok := m.s.trips[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return t.MaxPeople, nil
}

type memClients struct{ s *memStore }

func (m memClients) Create(_ context.Context, c domain.Client) (int, error) {
	c.ID = m.s.nextClientID
	m.s.nextClientID++
	m.s.clients[c.ID] = c
	return c.ID, nil
}

func (m memClients) GetByID(_ context.Context, id int) (domain.Client, error) {
	c, ok := m.s.clients[id]
	if !ok {
		return domain.Client{}, domain.ErrNotFound
	}
	return c, nil
}

func (m memClients) Exists(_ context.Context, id int) (bool, error) {
	_, ok := m.s.clients[id]
	return ok, nil
}

type memRegs struct{ s *memStore }

func (m memRegs) Create(_ context.Context, r domain.Registration) error {
	for _, existing := range m.s.regs {
		if existing.ClientID == r.ClientID && existing.TripID == r.TripID {
			return domain.ErrAlreadyRegistered
		}
	}
	m.s.regs = append(m.s.regs, r)
	return nil
}

func (m memRegs) Delete(_ context.Context, clientID, tripID int) error {
	for i, r := range m.s.regs {
		if r.ClientID == clientID && r.TripID == tripID {
			m.s.regs = append(m.s.regs[:i], m.s.regs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m memRegs) CountByTrip(_ context.Context, tripID int) (int, error) {
	return m.s.count(tripID), nil
}

func (m memRegs) ListByClient(_ context.Context, clientID int) ([]domain.ClientTrip, error) {
	out := []domain.ClientTrip{}
	for _, r := range m.s.regs {
		if r.ClientID != clientID {
			continue
		}
		trip := m.s.trips[r.TripID]
		trip.Countries = nil
		out = append(out, domain.ClientTrip{Trip: trip, RegisteredAt: r.RegisteredAt, PaymentDate: r.PaymentDate})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].RegisteredAt != out[j].RegisteredAt {
			return out[i].RegisteredAt < out[j].RegisteredAt
		}
		return out[i].Trip.ID < out[j].Trip.ID
	})
	return out, nil
}

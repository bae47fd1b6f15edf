package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/repo"
)

// ClientService creates and reads clients.
type ClientService struct {
	clients repo.ClientRepo
}

// NewClientService constructs a ClientService backed by the provided ClientRepo.
func NewClientService(clients repo.ClientRepo) *ClientService {
	return &ClientService{clients: clients}
}

// Create validates the client and persists it, returning the generated id.
// Surrounding whitespace is trimmed from every field before validation, so a
// whitespace-only value counts as missing.
// Returns a *domain.ValidationError (matching domain.ErrValidation) without
// touching the database when any field is invalid.
func (s *ClientService) Create(ctx context.Context, client domain.Client) (int, error) {
	client = normalizeClient(client)
	if err := validateClient(client); err != nil {
		return 0, err
	}

	id, err := s.clients.Create(ctx, client)
	if err != nil {
		return 0, fmt.Errorf("service.ClientService.Create: %w", err)
	}
	return id, nil
}

// GetByID returns a single client.
// Returns domain.ErrClientNotFound if no client has that id.
func (s *ClientService) GetByID(ctx context.Context, id int) (domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", domain.ErrClientNotFound)
	}
	if err != nil {
		return domain.Client{}, fmt.Errorf("service.ClientService.GetByID: %w", err)
	}
	return client, nil
}

func normalizeClient(c domain.Client) domain.Client {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Email = strings.TrimSpace(c.Email)
	c.Telephone = strings.TrimSpace(c.Telephone)
	c.Pesel = strings.TrimSpace(c.Pesel)
	return c
}

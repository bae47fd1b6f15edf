package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// CreateClient handles POST /clients.
// On success the Location header points at GET /clients/{id}.
func (s *Server) CreateClient(ctx context.Context, req gen.CreateClientRequestObject) (gen.CreateClientResponseObject, error) {
	var body gen.CreateClientRequest
	if req.Body != nil {
		body = *req.Body
	}

	id, err := s.clients.Create(ctx, domain.Client{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Telephone: body.Telephone,
		Pesel:     body.Pesel,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateClient400JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateClient201JSONResponse{
		Body:    gen.CreatedClient{IdClient: id},
		Headers: gen.CreateClient201ResponseHeaders{Location: fmt.Sprintf("/clients/%d", id)},
	}, nil
}

// GetClient handles GET /clients/{clientId}.
func (s *Server) GetClient(ctx context.Context, req gen.GetClientRequestObject) (gen.GetClientResponseObject, error) {
	client, err := s.clients.GetByID(ctx, int(req.ClientId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetClient404JSONResponse(notFoundBody(err)), nil
		}
		return nil, err
	}

	return gen.GetClient200JSONResponse{
		Id:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		Telephone: client.Telephone,
		Pesel:     client.Pesel,
	}, nil
}

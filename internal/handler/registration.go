package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// ListClientTrips handles GET /clients/{clientId}/trips.
func (s *Server) ListClientTrips(ctx context.Context, req gen.ListClientTripsRequestObject) (gen.ListClientTripsResponseObject, error) {
	trips, err := s.trips.ListClientTrips(ctx, int(req.ClientId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListClientTrips404JSONResponse(notFoundBody(err)), nil
		}
		return nil, err
	}

	data := make([]gen.ClientTrip, len(trips))
	for i, ct := range trips {
		data[i] = clientTripToResponse(ct)
	}
	return gen.ListClientTrips200JSONResponse(data), nil
}

// RegisterClientForTrip handles PUT /clients/{clientId}/trips/{tripId}.
func (s *Server) RegisterClientForTrip(ctx context.Context, req gen.RegisterClientForTripRequestObject) (gen.RegisterClientForTripResponseObject, error) {
	err := s.registrations.Register(ctx, int(req.ClientId), int(req.TripId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RegisterClientForTrip404JSONResponse(notFoundBody(err)), nil
		}
		if body, ok := conflictBody(err); ok {
			return gen.RegisterClientForTrip409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.RegisterClientForTrip204Response{}, nil
}

// UnregisterClientFromTrip handles DELETE /clients/{clientId}/trips/{tripId}.
func (s *Server) UnregisterClientFromTrip(ctx context.Context, req gen.UnregisterClientFromTripRequestObject) (gen.UnregisterClientFromTripResponseObject, error) {
	err := s.registrations.Unregister(ctx, int(req.ClientId), int(req.TripId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UnregisterClientFromTrip404JSONResponse(notFoundBody(err)), nil
		}
		return nil, err
	}
	return gen.UnregisterClientFromTrip204Response{}, nil
}

func clientTripToResponse(ct domain.ClientTrip) gen.ClientTrip {
	var paid *int
	if ct.PaymentDate != nil {
		v := int(*ct.PaymentDate)
		paid = &v
	}
	return gen.ClientTrip{
		Id:           ct.Trip.ID,
		Name:         ct.Trip.Name,
		Description:  ct.Trip.Description,
		DateFrom:     openapi_types.Date{Time: ct.Trip.DateFrom},
		DateTo:       openapi_types.Date{Time: ct.Trip.DateTo},
		MaxPeople:    ct.Trip.MaxPeople,
		RegisteredAt: int(ct.RegisteredAt),
		PaymentDate:  paid,
	}
}

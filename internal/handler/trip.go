package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// ListTrips handles GET /trips.
func (s *Server) ListTrips(ctx context.Context, _ gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	trips, err := s.trips.ListTrips(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Trip, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	return gen.ListTrips200JSONResponse(data), nil
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetTrip(ctx, int(req.TripId))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody(err)), nil
		}
		return nil, err
	}
	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// tripToResponse converts a domain.Trip to the generated gen.Trip response type.
// Countries is always a JSON array, never null.
func tripToResponse(t domain.Trip) gen.Trip {
	countries := make([]gen.Country, len(t.Countries))
	for i, c := range t.Countries {
		countries[i] = gen.Country{Id: c.ID, Name: c.Name}
	}
	return gen.Trip{
		Id:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		DateFrom:    openapi_types.Date{Time: t.DateFrom},
		DateTo:      openapi_types.Date{Time: t.DateTo},
		MaxPeople:   t.MaxPeople,
		Countries:   countries,
	}
}

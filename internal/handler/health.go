package handler

import (
	"context"
	"time"

	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

const pingTimeout = 2 * time.Second

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the database answers a ping,
// and 503 with {"status":"unavailable"} when it does not.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			s.log.WarnContext(ctx, "health check failed", "error", err)
			return gen.GetHealth503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

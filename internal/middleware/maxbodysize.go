package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

// tooLargeBody is the envelope the API handlers write for a body that passes
// the limit while streaming.
var tooLargeBody = gen.ErrorResponse{Error: gen.ErrorDetail{
	Code:    "payload_too_large",
	Message: "request body is too large",
}}

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes.
//
// A request whose Content-Length already exceeds the limit is rejected with
// 413 before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader, so a streaming body fails with *http.MaxBytesError once
// it passes the limit and the decoding handler turns that into a 413.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_ = json.NewEncoder(w).Encode(tooLargeBody)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

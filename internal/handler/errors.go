package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/travel-agency/backend/internal/domain"
	"github.com/pkordes/travel-agency/backend/internal/handler/gen"
)

func errorBody(code, message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: code, Message: message}}
}

// notFoundBody names which resource was missing. Every kind it checks wraps
// domain.ErrNotFound, so callers test that first.
func notFoundBody(err error) gen.ErrorResponse {
	switch {
	case errors.Is(err, domain.ErrClientNotFound):
		return errorBody("client_not_found", domain.ErrClientNotFound.Error())
	case errors.Is(err, domain.ErrTripNotFound):
		return errorBody("trip_not_found", domain.ErrTripNotFound.Error())
	case errors.Is(err, domain.ErrRegistrationNotFound):
		return errorBody("registration_not_found", domain.ErrRegistrationNotFound.Error())
	default:
		return errorBody("not_found", domain.ErrNotFound.Error())
	}
}

// conflictBody returns the body for a 409, or false when err is not a conflict.
func conflictBody(err error) (gen.ErrorResponse, bool) {
	switch {
	case errors.Is(err, domain.ErrTripFull):
		return errorBody("trip_full", domain.ErrTripFull.Error()), true
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return errorBody("already_registered", domain.ErrAlreadyRegistered.Error()), true
	default:
		return gen.ErrorResponse{}, false
	}
}

// validationBody lists every rejected field. err must match domain.ErrValidation.
func validationBody(err error) gen.ErrorResponse {
	body := errorBody("validation_error", "request failed validation")

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return body
	}
	fields := make([]gen.FieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		fields[i] = gen.FieldError{Field: f.Field, Error: f.Message}
	}
	body.Error.Fields = &fields
	return body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestError handles bodies the strict handler could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("payload_too_large", "request body is too large"))
		return
	}
	writeJSON(w, http.StatusBadRequest, errorBody("invalid_request", "request body must be valid JSON"))
}

// paramError handles path parameters that fail to bind, e.g. /trips/abc.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusBadRequest, errorBody("invalid_parameter", err.Error()))
}

// responseError handles every error a handler returned instead of a typed
// response. The cause is logged; clients only see a generic message.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "unhandled error",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", chimiddleware.GetReqID(r.Context()),
		"error", err,
	)
	writeJSON(w, http.StatusInternalServerError, errorBody("internal_error", "internal server error"))
}

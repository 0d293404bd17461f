package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/blaisecz/shift-coach/pkg/problem"
)

// errorDetails are the problem details used when a service call fails.
// Empty fields fall back to generic wording.
type errorDetails struct {
	notFound string
	invalid  string
	failure  string
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// pathUUID parses a UUID path parameter, writing a 400 when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		problem.BadRequest("Invalid " + label + " format").At(r).Write(w)
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps a service error to a problem response. Unexpected errors
// are logged and reported as 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, d errorDetails) {
	var inputErr *engine.InputError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound(orDefault(d.notFound, "User not found")).At(r).Write(w)
	case errors.As(err, &inputErr):
		problem.InvalidField(inputErr.Field, inputErr.Reason).At(r).Write(w)
	case errors.Is(err, domain.ErrNoSleepData):
		problem.NoData("Log at least one main sleep to get this score").At(r).Write(w)
	case errors.Is(err, domain.ErrOverlappingSleep):
		problem.Conflict("Overlapping sleep period detected").At(r).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest(orDefault(d.invalid, "Invalid request parameters")).At(r).Write(w)
	default:
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		problem.InternalError(orDefault(d.failure, "An unexpected error occurred")).At(r).Write(w)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func loggerOrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/examprep/backend/internal/analytics"
	"github.com/examprep/backend/internal/service"
	"github.com/examprep/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	store    store.Store
	progress *service.ProgressService
	grading  *service.GradingService // nil when no grader is configured
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies. grading may be nil.
func NewHandler(s store.Store, progress *service.ProgressService, grading *service.GradingService, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		progress: progress,
		grading:  grading,
		logger:   logger,
	}
}

var validate = validator.New()

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg}.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// handleError maps domain and store errors to HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, analytics.ErrUnknownTopic):
		respondError(w, http.StatusNotFound, "topic not found")
	case errors.Is(err, analytics.ErrInvalidWindow):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrAlreadyEvaluated):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// validatable is implemented by requests with rules beyond struct tags.
type validatable interface {
	Validate() error
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

// decodeAndValidate decodes the body into v and runs the struct-tag rules
// followed by v.Validate when present.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v any) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := validate.Struct(v); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	if vv, ok := v.(validatable); ok {
		if err := vv.Validate(); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return false
		}
	}
	return true
}

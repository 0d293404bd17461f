package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/api/validation"
	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/service"
	"github.com/blaisecz/shift-coach/pkg/problem"
)

type ShiftHandler struct {
	service service.ShiftService
	logger  *zap.Logger
}

func NewShiftHandler(service service.ShiftService, logger *zap.Logger) *ShiftHandler {
	return &ShiftHandler{service: service, logger: loggerOrNop(logger).Named("shifts")}
}

// Create handles POST /v1/users/{userId}/shifts
// @Summary Roster a shift
// @Description Record the shift for a local calendar date, replacing any earlier entry for that date. When type is omitted it is derived from the label, the start time and the recent roster.
// @Tags shifts
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateShiftRequest true "Shift"
// @Success 201 {object} domain.Shift
// @Failure 400 {object} problem.Problem "Invalid body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/shifts [post]
func (h *ShiftHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}

	var req domain.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").At(r).Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).At(r).Write(w)
		return
	}

	shift, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{
			invalid: "Shift date or times are invalid",
			failure: "Failed to record shift",
		})
		return
	}
	writeJSON(w, http.StatusCreated, shift)
}

// List handles GET /v1/users/{userId}/shifts
// @Summary List shifts
// @Description Rostered shifts between two local dates, inclusive, ordered by date. The range may span at most 62 days.
// @Tags shifts
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param from query string true "First date (YYYY-MM-DD)" example(2024-01-01)
// @Param to query string true "Last date (YYYY-MM-DD)" example(2024-01-31)
// @Success 200 {object} domain.ShiftListResponse
// @Failure 400 {object} problem.Problem "Invalid date range"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/shifts [get]
func (h *ShiftHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}

	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		problem.BadRequest("from and to are required").At(r).Write(w)
		return
	}

	shifts, err := h.service.List(r.Context(), userID, from, to)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{
			invalid: "from and to must be YYYY-MM-DD dates at most 62 days apart",
			failure: "Failed to list shifts",
		})
		return
	}
	if shifts == nil {
		shifts = []domain.Shift{}
	}
	writeJSON(w, http.StatusOK, domain.ShiftListResponse{Data: shifts})
}

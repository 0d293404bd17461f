package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/api/validation"
	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/service"
	"github.com/blaisecz/shift-coach/pkg/problem"
)

type SleepLogHandler struct {
	service service.SleepLogService
	logger  *zap.Logger
}

func NewSleepLogHandler(service service.SleepLogService, logger *zap.Logger) *SleepLogHandler {
	return &SleepLogHandler{service: service, logger: loggerOrNop(logger).Named("sleep_logs")}
}

var sleepLogErrors = errorDetails{
	notFound: "Sleep log not found",
	invalid:  "Sleep period is invalid",
	failure:  "Failed to process sleep log",
}

// Create handles POST /v1/users/{userId}/sleep-logs
// @Summary Record sleep
// @Description Log a main sleep or nap. Use client_request_id for safe retries (idempotency). Returns 200 if duplicate request, 201 if new. Main sleeps may not overlap any sleep; naps may not overlap a main sleep.
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateSleepLogRequest true "Sleep session data"
// @Success 201 {object} domain.SleepLogResponse "New sleep log created"
// @Success 200 {object} domain.SleepLogResponse "Existing log returned (idempotent duplicate)"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 409 {object} problem.Problem "Sleep period overlaps with existing log"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [post]
func (h *SleepLogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}

	var req domain.CreateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").At(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).At(r).Write(w)
		return
	}

	log, isExisting, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{notFound: "User not found", failure: "Failed to create sleep log"})
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK // idempotent duplicate
	}
	writeJSON(w, status, log.ToResponse())
}

// Get handles GET /v1/users/{userId}/sleep-logs/{logId}
// @Summary Get a sleep log
// @Tags sleep-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param logId path string true "Sleep log UUID" format(uuid)
// @Success 200 {object} domain.SleepLogResponse
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "User or sleep log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs/{logId} [get]
func (h *SleepLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	logID, ok := pathUUID(w, r, "logId", "sleep log ID")
	if !ok {
		return
	}

	log, err := h.service.Get(r.Context(), userID, logID)
	if err != nil {
		writeError(w, r, h.logger, err, sleepLogErrors)
		return
	}
	writeJSON(w, http.StatusOK, log.ToResponse())
}

// Update handles PATCH /v1/users/{userId}/sleep-logs/{logId}
// @Summary Update a sleep log
// @Description Partially update a sleep session. Overlap rules are checked against the updated period.
// @Tags sleep-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param logId path string true "Sleep log UUID" format(uuid)
// @Param request body domain.UpdateSleepLogRequest true "Fields to change"
// @Success 200 {object} domain.SleepLogResponse
// @Failure 400 {object} problem.Problem "Invalid body or end before start"
// @Failure 404 {object} problem.Problem "User or sleep log not found"
// @Failure 409 {object} problem.Problem "Sleep period overlaps with existing log"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs/{logId} [patch]
func (h *SleepLogHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	logID, ok := pathUUID(w, r, "logId", "sleep log ID")
	if !ok {
		return
	}

	var req domain.UpdateSleepLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").At(r).Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).At(r).Write(w)
		return
	}

	log, err := h.service.Update(r.Context(), userID, logID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, sleepLogErrors)
		return
	}
	writeJSON(w, http.StatusOK, log.ToResponse())
}

// List handles GET /v1/users/{userId}/sleep-logs
// @Summary List sleep logs
// @Description Fetch paginated sleep history. Filter by date range. Results sorted by start_at descending (newest first).
// @Tags sleep-logs
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339, UTC recommended for consistent filtering)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SleepLogListResponse "Sleep logs with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs [get]
func (h *SleepLogHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).At(r).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{
			notFound: "User not found",
			invalid:  "Invalid cursor",
			failure:  "Failed to list sleep logs",
		})
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.SleepLogFilter, []problem.FieldError) {
	var filter domain.SleepLogFilter
	var fieldErrors []problem.FieldError

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}

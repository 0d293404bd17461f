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

type DailyLogHandler struct {
	service service.DailyLogService
	logger  *zap.Logger
}

func NewDailyLogHandler(service service.DailyLogService, logger *zap.Logger) *DailyLogHandler {
	return &DailyLogHandler{service: service, logger: loggerOrNop(logger).Named("daily_logs")}
}

// decodeValid decodes and validates a request body, writing the problem on failure.
func decodeValid(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		problem.BadRequest("Invalid JSON body").At(r).Write(w)
		return false
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).At(r).Write(w)
		return false
	}
	return true
}

// LogMood handles POST /v1/users/{userId}/mood-logs
// @Summary Record a mood check-in
// @Tags daily-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateMoodLogRequest true "Mood and focus"
// @Success 201 {object} domain.MoodLog
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/mood-logs [post]
func (h *DailyLogHandler) LogMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	var req domain.CreateMoodLogRequest
	if !decodeValid(w, r, &req) {
		return
	}

	log, err := h.service.LogMood(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to record mood"})
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// LogWater handles POST /v1/users/{userId}/water-logs
// @Summary Record water intake
// @Tags daily-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateWaterLogRequest true "Water in ml"
// @Success 201 {object} domain.WaterLog
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/water-logs [post]
func (h *DailyLogHandler) LogWater(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	var req domain.CreateWaterLogRequest
	if !decodeValid(w, r, &req) {
		return
	}

	log, err := h.service.LogWater(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to record water"})
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

// LogCaffeine handles POST /v1/users/{userId}/caffeine-logs
// @Summary Record caffeine intake
// @Tags daily-logs
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.CreateCaffeineLogRequest true "Caffeine in mg"
// @Success 201 {object} domain.CaffeineLog
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Router /users/{userId}/caffeine-logs [post]
func (h *DailyLogHandler) LogCaffeine(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	var req domain.CreateCaffeineLogRequest
	if !decodeValid(w, r, &req) {
		return
	}

	log, err := h.service.LogCaffeine(r.Context(), userID, &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to record caffeine"})
		return
	}
	writeJSON(w, http.StatusCreated, log)
}

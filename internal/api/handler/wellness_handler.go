package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/service"
)

// WellnessHandler serves the per-user wellness scores.
type WellnessHandler struct {
	service service.WellnessService
	logger  *zap.Logger
}

func NewWellnessHandler(service service.WellnessService, logger *zap.Logger) *WellnessHandler {
	return &WellnessHandler{service: service, logger: loggerOrNop(logger).Named("wellness")}
}

// Today handles GET /v1/users/{userId}/wellness/today
// @Summary Today's scores
// @Description Rhythm and recovery scores, sleep debt, binge risk, sleep window, caffeine cutoff and fuel targets for the user's current local day. Served from the score cache when precomputed.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DailyScores
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Stored data cannot be scored"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/today [get]
func (h *WellnessHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.Today(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute today's scores"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Circadian handles GET /v1/users/{userId}/wellness/circadian
// @Summary Body clock score
// @Description Circadian alignment (0-100) from the latest main sleep, two weeks of sleep timing and today's shift, with the signed factors that produced it.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.CircadianOutput
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "No main sleep recorded"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/circadian [get]
func (h *WellnessHandler) Circadian(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.Circadian(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute body clock score"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// SleepDeficit handles GET /v1/users/{userId}/wellness/sleep-deficit
// @Summary Rolling sleep deficit
// @Description Seven-day sleep deficit in hours ending today, most recent day first.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SleepDeficitResult
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/sleep-deficit [get]
func (h *WellnessHandler) SleepDeficit(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.SleepDeficit(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute sleep deficit"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Macros handles GET /v1/users/{userId}/wellness/macros
// @Summary Fuel targets
// @Description Protein, carbohydrate, fat, hydration and calorie targets adjusted for sleep and shift.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.MacroTargets
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/macros [get]
func (h *WellnessHandler) Macros(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.Macros(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute fuel targets"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Steps handles GET /v1/users/{userId}/wellness/steps
// @Summary Step goal
// @Description Today's step range adjusted for last night's sleep, the shift and recovery.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.StepRecommendation
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/steps [get]
func (h *WellnessHandler) Steps(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.Steps(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute step goal"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ShiftLag handles GET /v1/users/{userId}/wellness/shift-lag
// @Summary Shift lag score
// @Description Jet lag from the shift pattern (0-100): weekly sleep debt against the off-day sleep need, hours of work inside the 23:00-07:00 biological night and shift start instability, with drivers and recommendations.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ShiftLagMetrics
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Stored data cannot be scored"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/shift-lag [get]
func (h *WellnessHandler) ShiftLag(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.ShiftLag(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute shift lag"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// SocialJetlag handles GET /v1/users/{userId}/wellness/social-jetlag
// @Summary Social jetlag
// @Description How far the latest sleep midpoint has drifted from the median of the previous week. Too little history gives a low result whose explanation says what to log.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.SocialJetlagMetrics
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/wellness/social-jetlag [get]
func (h *WellnessHandler) SocialJetlag(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	out, err := h.service.SocialJetlag(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to compute social jetlag"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// SleepStages handles GET /v1/users/{userId}/sleep-logs/{logId}/stages
// @Summary Estimated sleep stages
// @Description Estimated deep, REM, light and awake percentages for one stored sleep. The four values sum to 100.
// @Tags wellness
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param logId path string true "Sleep log UUID" format(uuid)
// @Success 200 {object} domain.SleepStagePercentages
// @Failure 400 {object} problem.Problem "Invalid ID"
// @Failure 404 {object} problem.Problem "Sleep log not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-logs/{logId}/stages [get]
func (h *WellnessHandler) SleepStages(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	logID, ok := pathUUID(w, r, "logId", "sleep log ID")
	if !ok {
		return
	}
	out, err := h.service.SleepStages(r.Context(), userID, logID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{notFound: "Sleep log not found", failure: "Failed to estimate sleep stages"})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

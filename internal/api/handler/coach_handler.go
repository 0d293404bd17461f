package handler

import (
	"net/http"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/service"
)

// CoachHandler serves the coaching state, the daily tip and tip feedback.
type CoachHandler struct {
	service service.CoachService
	logger  *zap.Logger
}

func NewCoachHandler(service service.CoachService, logger *zap.Logger) *CoachHandler {
	return &CoachHandler{service: service, logger: loggerOrNop(logger).Named("coach")}
}

// State handles GET /v1/users/{userId}/coach/state
// @Summary Coaching state
// @Description Green, amber or red wellness status with a label and summary.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.CoachingState
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/state [get]
func (h *CoachHandler) State(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	state, err := h.service.State(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to classify coaching state"})
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// Tip handles GET /v1/users/{userId}/coach/tip
// @Summary Today's coaching tip
// @Description The highest scoring tip for the user's day. The message is phrased by the language model when configured and falls back to a canned message if it fails. trace_id links feedback to the tip.
// @Tags coach
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.CoachTipResponse
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/tip [get]
func (h *CoachHandler) Tip(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	resp, err := h.service.Tip(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to pick a coaching tip"})
		return
	}

	// The OTEL trace ID lets operators find the request span next to the Langfuse trace.
	if span := trace.SpanFromContext(r.Context()); span.SpanContext().IsValid() {
		w.Header().Set("X-Trace-Id", span.SpanContext().TraceID().String())
	}
	writeJSON(w, http.StatusOK, resp)
}

// Feedback handles POST /v1/users/{userId}/coach/tip/feedback
// @Summary Rate a coaching tip
// @Description Record whether a tip helped. The rating is attached to the tip's Langfuse trace when Langfuse is configured.
// @Tags coach
// @Accept json
// @Param userId path string true "User UUID" format(uuid)
// @Param request body domain.TipFeedbackRequest true "Feedback"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid body"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/coach/tip/feedback [post]
func (h *CoachHandler) Feedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}
	var req domain.TipFeedbackRequest
	if !decodeValid(w, r, &req) {
		return
	}

	if err := h.service.Feedback(r.Context(), userID, &req); err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to record feedback"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

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

// @title Shift Coach API
// @version 1.0
// @description Wellness scoring and coaching for shift workers: sleep, rosters, body clock, fuel and daily tips.
// @BasePath /v1

type UserHandler struct {
	service service.UserService
	logger  *zap.Logger
}

func NewUserHandler(service service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{service: service, logger: loggerOrNop(logger).Named("users")}
}

// Create handles POST /v1/users
// @Summary Create a new user
// @Description Create a user with timezone, sleep goal and body profile. Omitted profile fields use defaults.
// @Tags users
// @Accept json
// @Produce json
// @Param request body domain.CreateUserRequest true "User creation request"
// @Success 201 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 422 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").At(r).Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).At(r).Write(w)
		return
	}

	user, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to create user"})
		return
	}

	writeJSON(w, http.StatusCreated, user.ToResponse())
}

// GetByID handles GET /v1/users/{userId}
// @Summary Get user by ID
// @Description Get a user's profile by UUID
// @Tags users
// @Produce json
// @Param userId path string true "User ID" format(uuid)
// @Success 200 {object} domain.UserResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem
// @Failure 500 {object} problem.Problem
// @Router /users/{userId} [get]
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathUUID(w, r, "userId", "user ID")
	if !ok {
		return
	}

	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, errorDetails{failure: "Failed to get user"})
		return
	}

	writeJSON(w, http.StatusOK, user.ToResponse())
}

package service

import (
	"context"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/repository"
	"github.com/google/uuid"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Create stores a user, filling the profile defaults for omitted fields.
func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:             uuid.New(),
		Timezone:       req.Timezone,
		SleepGoalHours: domain.DefaultSleepGoalHours,
		WeightKg:       domain.DefaultWeightKg,
		Goal:           domain.GoalMaintain,
		WaterGoalMl:    domain.DefaultWaterGoalMl,
	}
	if req.SleepGoalHours != nil {
		user.SleepGoalHours = *req.SleepGoalHours
	}
	if req.WeightKg != nil {
		user.WeightKg = *req.WeightKg
	}
	if req.Goal != nil {
		user.Goal = *req.Goal
	}
	if req.WaterGoalMl != nil && *req.WaterGoalMl > 0 {
		user.WaterGoalMl = *req.WaterGoalMl
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

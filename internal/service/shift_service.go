package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
	"github.com/blaisecz/shift-coach/internal/repository"
)

// recentLabelCount is how many earlier roster labels feed the rotating-shift check.
const recentLabelCount = 5

const maxShiftRangeDays = 62

type ShiftService interface {
	// Create records the shift for a date, replacing any earlier one. The type
	// is derived from the label when the request omits it.
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateShiftRequest) (*domain.Shift, error)
	List(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.Shift, error)
}

type shiftService struct {
	repo     repository.ShiftRepository
	userRepo repository.UserRepository
	scores   ScoreStore
	logger   *zap.Logger
}

func NewShiftService(repo repository.ShiftRepository, userRepo repository.UserRepository, scores ScoreStore, logger *zap.Logger) ShiftService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &shiftService{
		repo:     repo,
		userRepo: userRepo,
		scores:   scoreStoreOrNoop(scores),
		logger:   logger.Named("shifts"),
	}
}

func (s *shiftService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateShiftRequest) (*domain.Shift, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(domain.DateLayout, req.Date, user.Location())
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if req.StartAt != nil && req.EndAt != nil && !req.EndAt.After(*req.StartAt) {
		return nil, domain.ErrInvalidInput
	}

	shift := &domain.Shift{
		UserID:  userID,
		Date:    req.Date,
		Label:   req.Label,
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	}

	if req.Type != nil {
		shift.Type = *req.Type
	} else {
		recent, err := s.repo.RecentLabels(ctx, userID, req.Date, recentLabelCount)
		if err != nil {
			return nil, err
		}
		var start *time.Time
		if req.StartAt != nil {
			local := req.StartAt.In(user.Location())
			start = &local
		}
		shift.Type = engine.ClassifyShift(req.Label, start, recent)
	}

	if err := s.repo.Upsert(ctx, shift); err != nil {
		return nil, err
	}

	invalidateDay(ctx, s.scores, s.logger, user, day)
	return shift, nil
}

func (s *shiftService) List(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.Shift, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	from, err := time.Parse(domain.DateLayout, fromDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	to, err := time.Parse(domain.DateLayout, toDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if to.Before(from) || to.Sub(from) > maxShiftRangeDays*24*time.Hour {
		return nil, domain.ErrInvalidInput
	}

	return s.repo.ListRange(ctx, userID, fromDate, toDate)
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/repository"
)

// DailyLogService records mood check-ins, water and caffeine.
type DailyLogService interface {
	LogMood(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodLogRequest) (*domain.MoodLog, error)
	LogWater(ctx context.Context, userID uuid.UUID, req *domain.CreateWaterLogRequest) (*domain.WaterLog, error)
	LogCaffeine(ctx context.Context, userID uuid.UUID, req *domain.CreateCaffeineLogRequest) (*domain.CaffeineLog, error)
}

type dailyLogService struct {
	repo     repository.DailyLogRepository
	userRepo repository.UserRepository
	scores   ScoreStore
	logger   *zap.Logger
	now      func() time.Time
}

func NewDailyLogService(repo repository.DailyLogRepository, userRepo repository.UserRepository, scores ScoreStore, logger *zap.Logger) DailyLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &dailyLogService{
		repo:     repo,
		userRepo: userRepo,
		scores:   scoreStoreOrNoop(scores),
		logger:   logger.Named("daily_logs"),
		now:      time.Now,
	}
}

// loggedAt defaults a missing timestamp to now and stores it in UTC.
func (s *dailyLogService) loggedAt(t *time.Time) time.Time {
	if t == nil {
		return s.now().UTC()
	}
	return t.UTC()
}

func (s *dailyLogService) LogMood(ctx context.Context, userID uuid.UUID, req *domain.CreateMoodLogRequest) (*domain.MoodLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	log := &domain.MoodLog{UserID: userID, Mood: req.Mood, Focus: req.Focus, LoggedAt: s.loggedAt(req.LoggedAt)}
	if err := s.repo.CreateMood(ctx, log); err != nil {
		return nil, err
	}
	invalidateDay(ctx, s.scores, s.logger, user, log.LoggedAt)
	return log, nil
}

func (s *dailyLogService) LogWater(ctx context.Context, userID uuid.UUID, req *domain.CreateWaterLogRequest) (*domain.WaterLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	log := &domain.WaterLog{UserID: userID, Ml: req.Ml, LoggedAt: s.loggedAt(req.LoggedAt)}
	if err := s.repo.CreateWater(ctx, log); err != nil {
		return nil, err
	}
	invalidateDay(ctx, s.scores, s.logger, user, log.LoggedAt)
	return log, nil
}

func (s *dailyLogService) LogCaffeine(ctx context.Context, userID uuid.UUID, req *domain.CreateCaffeineLogRequest) (*domain.CaffeineLog, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	log := &domain.CaffeineLog{UserID: userID, Mg: req.Mg, LoggedAt: s.loggedAt(req.LoggedAt)}
	if err := s.repo.CreateCaffeine(ctx, log); err != nil {
		return nil, err
	}
	invalidateDay(ctx, s.scores, s.logger, user, log.LoggedAt)
	return log, nil
}

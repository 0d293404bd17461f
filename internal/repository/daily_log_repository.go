package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyLogRepository stores the small self-reported logs: mood, water and caffeine.
type DailyLogRepository interface {
	CreateMood(ctx context.Context, log *domain.MoodLog) error
	CreateWater(ctx context.Context, log *domain.WaterLog) error
	CreateCaffeine(ctx context.Context, log *domain.CaffeineLog) error

	// LatestMood returns the most recent check-in at or before t.
	LatestMood(ctx context.Context, userID uuid.UUID, t time.Time) (*domain.MoodLog, error)
	ListWater(ctx context.Context, userID uuid.UUID, r domain.TimeRange) ([]domain.WaterLog, error)
	ListCaffeine(ctx context.Context, userID uuid.UUID, r domain.TimeRange) ([]domain.CaffeineLog, error)
}

type dailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

func (r *dailyLogRepository) CreateMood(ctx context.Context, log *domain.MoodLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *dailyLogRepository) CreateWater(ctx context.Context, log *domain.WaterLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *dailyLogRepository) CreateCaffeine(ctx context.Context, log *domain.CaffeineLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *dailyLogRepository) LatestMood(ctx context.Context, userID uuid.UUID, t time.Time) (*domain.MoodLog, error) {
	var log domain.MoodLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at <= ?", userID, t).
		Order("logged_at DESC").
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *dailyLogRepository) ListWater(ctx context.Context, userID uuid.UUID, tr domain.TimeRange) ([]domain.WaterLog, error) {
	var logs []domain.WaterLog
	err := r.inRange(ctx, userID, tr).Find(&logs).Error
	return logs, err
}

func (r *dailyLogRepository) ListCaffeine(ctx context.Context, userID uuid.UUID, tr domain.TimeRange) ([]domain.CaffeineLog, error) {
	var logs []domain.CaffeineLog
	err := r.inRange(ctx, userID, tr).Find(&logs).Error
	return logs, err
}

func (r *dailyLogRepository) inRange(ctx context.Context, userID uuid.UUID, tr domain.TimeRange) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("logged_at >= ? AND logged_at < ?", tr.From, tr.To).
		Order("logged_at")
}

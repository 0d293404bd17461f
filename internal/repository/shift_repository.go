package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShiftRepository interface {
	// Upsert stores the shift, replacing any shift already rostered for the same day.
	Upsert(ctx context.Context, shift *domain.Shift) error
	GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Shift, error)
	// ListRange returns shifts with fromDate <= date <= toDate, oldest first.
	ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.Shift, error)
	// RecentLabels returns the labels of the latest n shifts dated before beforeDate.
	RecentLabels(ctx context.Context, userID uuid.UUID, beforeDate string, n int) ([]string, error)
}

type shiftRepository struct {
	db *gorm.DB
}

func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Upsert(ctx context.Context, shift *domain.Shift) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"label", "type", "start_at", "end_at"}),
		}).
		Create(shift).Error
}

func (r *shiftRepository) GetByDate(ctx context.Context, userID uuid.UUID, date string) (*domain.Shift, error) {
	var shift domain.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&shift).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListRange(ctx context.Context, userID uuid.UUID, fromDate, toDate string) ([]domain.Shift, error) {
	var shifts []domain.Shift
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", fromDate, toDate).
		Order("date").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepository) RecentLabels(ctx context.Context, userID uuid.UUID, beforeDate string, n int) ([]string, error) {
	var labels []string
	err := r.db.WithContext(ctx).
		Model(&domain.Shift{}).
		Where("user_id = ? AND date < ?", userID, beforeDate).
		Order("date DESC").
		Limit(n).
		Pluck("label", &labels).Error
	return labels, err
}

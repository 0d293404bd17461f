package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SleepLogRepository interface {
	Create(ctx context.Context, log *domain.SleepLog) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error)
	Update(ctx context.Context, log *domain.SleepLog) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error)
	ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepLog, error)
	HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error)
	HasOverlapExcluding(ctx context.Context, userID uuid.UUID, excludeID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error)
	GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepLog, error)
}

type sleepLogRepository struct {
	db *gorm.DB
}

func NewSleepLogRepository(db *gorm.DB) SleepLogRepository {
	return &sleepLogRepository{db: db}
}

func (r *sleepLogRepository) Create(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *sleepLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).First(&log, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

func (r *sleepLogRepository) Update(ctx context.Context, log *domain.SleepLog) error {
	return r.db.WithContext(ctx).
		Model(log).
		Select("start_at", "end_at", "quality", "type", "local_timezone").
		Updates(log).Error
}

func (r *sleepLogRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SleepLogFilter) ([]domain.SleepLog, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_at DESC").
		Order("id DESC")

	if filter.From != nil {
		query = query.Where("start_at >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("start_at <= ?", filter.To)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// DESC order: strictly older than the cursor, id breaks ties
		query = query.Where(
			"(start_at < ?) OR (start_at = ? AND id < ?)",
			cursor.StartAt, cursor.StartAt, cursor.ID,
		)
	}

	// one extra row tells the caller whether there is another page
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.SleepLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// ListByEndRange returns every sleep that ended within [from, to], newest first.
func (r *sleepLogRepository) ListByEndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.SleepLog, error) {
	var logs []domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("end_at >= ? AND end_at <= ?", from, to).
		Order("start_at DESC").
		Find(&logs).Error
	return logs, err
}

// HasOverlap reports whether [startAt, endAt) collides with a stored sleep.
// A main sleep may not overlap anything; a nap may only overlap other naps.
func (r *sleepLogRepository) HasOverlap(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error) {
	return r.countOverlaps(r.overlapQuery(ctx, userID, startAt, endAt, sleepType))
}

func (r *sleepLogRepository) HasOverlapExcluding(ctx context.Context, userID uuid.UUID, excludeID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) (bool, error) {
	return r.countOverlaps(r.overlapQuery(ctx, userID, startAt, endAt, sleepType).Where("id <> ?", excludeID))
}

func (r *sleepLogRepository) overlapQuery(ctx context.Context, userID uuid.UUID, startAt, endAt time.Time, sleepType domain.SleepType) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&domain.SleepLog{}).
		Where("user_id = ?", userID).
		Where("start_at < ?", endAt).
		Where("end_at > ?", startAt)
	if sleepType == domain.SleepTypeNap {
		query = query.Where("type = ?", domain.SleepTypeMain)
	}
	return query
}

func (r *sleepLogRepository) countOverlaps(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetByClientRequestID returns nil, nil when no log carries the request ID.
func (r *sleepLogRepository) GetByClientRequestID(ctx context.Context, userID uuid.UUID, clientRequestID string) (*domain.SleepLog, error) {
	var log domain.SleepLog
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND client_request_id = ?", userID, clientRequestID).
		First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}

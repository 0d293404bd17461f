package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/blaisecz/shift-coach/internal/cache"
	"github.com/blaisecz/shift-coach/internal/domain"
)

// ScoreStore holds precomputed daily scores.
type ScoreStore interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*cache.DailyEntry, error)
	Put(ctx context.Context, e *cache.DailyEntry) error
	Invalidate(ctx context.Context, userID uuid.UUID, date string) error
}

var _ ScoreStore = (*cache.ScoreCache)(nil)

type noScoreStore struct{}

func (noScoreStore) Get(context.Context, uuid.UUID, string) (*cache.DailyEntry, error) {
	return nil, domain.ErrCacheMiss
}

func (noScoreStore) Put(context.Context, *cache.DailyEntry) error { return nil }

func (noScoreStore) Invalidate(context.Context, uuid.UUID, string) error { return nil }

func scoreStoreOrNoop(s ScoreStore) ScoreStore {
	if s == nil {
		return noScoreStore{}
	}
	return s
}

// invalidateDay drops the cached scores for the user's local day containing at.
// The cache is advisory, so failures are only logged.
func invalidateDay(ctx context.Context, store ScoreStore, logger *zap.Logger, user *domain.User, at time.Time) {
	date := at.In(user.Location()).Format(domain.DateLayout)
	if err := store.Invalidate(ctx, user.ID, date); err != nil {
		logger.Warn("score cache invalidation failed",
			zap.Stringer("user_id", user.ID), zap.String("date", date), zap.Error(err))
	}
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const keyPrefix = "shiftcoach:scores"

// DailyEntry is what the precompute job stores per user and local day.
type DailyEntry struct {
	UserID     uuid.UUID            `json:"user_id"`
	Day        domain.DailyScores   `json:"day"`
	State      domain.CoachingState `json:"state"`
	ComputedAt time.Time            `json:"computed_at"`
}

// ScoreCache keeps the latest computed scores keyed by user and local date.
type ScoreCache struct {
	kv  KV
	ttl time.Duration
}

func NewScoreCache(kv KV, ttl time.Duration) *ScoreCache {
	return &ScoreCache{kv: kv, ttl: ttl}
}

func Key(userID uuid.UUID, date string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, userID, date)
}

// Get returns domain.ErrCacheMiss when nothing was stored for that day.
func (c *ScoreCache) Get(ctx context.Context, userID uuid.UUID, date string) (*DailyEntry, error) {
	raw, err := c.kv.Get(ctx, Key(userID, date))
	if err != nil {
		return nil, err
	}
	var e DailyEntry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		// a corrupt entry is as good as none
		_ = c.kv.Del(ctx, Key(userID, date))
		return nil, domain.ErrCacheMiss
	}
	return &e, nil
}

func (c *ScoreCache) Put(ctx context.Context, e *DailyEntry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	return c.kv.Set(ctx, Key(e.UserID, e.Day.Date), string(raw), c.ttl)
}

// Invalidate drops the cached day, e.g. after a new log changes its inputs.
func (c *ScoreCache) Invalidate(ctx context.Context, userID uuid.UUID, date string) error {
	return c.kv.Del(ctx, Key(userID, date))
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// MoodLog is a self-reported mood and focus check-in.
type MoodLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_mood_logs_user_logged" json:"user_id"`
	Mood      int       `gorm:"type:smallint;not null" json:"mood"`
	Focus     int       `gorm:"type:smallint;not null" json:"focus"`
	LoggedAt  time.Time `gorm:"not null;index:idx_mood_logs_user_logged,sort:desc" json:"logged_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MoodLog) TableName() string { return "mood_logs" }

// WaterLog records a drink.
type WaterLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_water_logs_user_logged" json:"user_id"`
	Ml        int       `gorm:"not null" json:"ml"`
	LoggedAt  time.Time `gorm:"not null;index:idx_water_logs_user_logged,sort:desc" json:"logged_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WaterLog) TableName() string { return "water_logs" }

// CaffeineLog records a caffeinated drink.
type CaffeineLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_caffeine_logs_user_logged" json:"user_id"`
	Mg        int       `gorm:"not null" json:"mg"`
	LoggedAt  time.Time `gorm:"not null;index:idx_caffeine_logs_user_logged,sort:desc" json:"logged_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (CaffeineLog) TableName() string { return "caffeine_logs" }

// CreateMoodLogRequest is the request body for a mood check-in.
// @Description Mood and focus check-in, both on a 1-5 scale.
type CreateMoodLogRequest struct {
	Mood     int        `json:"mood" validate:"required,min=1,max=5" example:"3"`
	Focus    int        `json:"focus" validate:"required,min=1,max=5" example:"4"`
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-01-16T16:00:00Z"`
}

// CreateWaterLogRequest is the request body for logging water.
// @Description Water intake in millilitres.
type CreateWaterLogRequest struct {
	Ml       int        `json:"ml" validate:"required,min=1,max=5000" example:"500"`
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-01-16T16:00:00Z"`
}

// CreateCaffeineLogRequest is the request body for logging caffeine.
// @Description Caffeine intake in milligrams.
type CreateCaffeineLogRequest struct {
	Mg       int        `json:"mg" validate:"required,min=1,max=1000" example:"95"`
	LoggedAt *time.Time `json:"logged_at,omitempty" example:"2024-01-16T16:00:00Z"`
}

// TimeRange is a half-open [From, To) interval.
type TimeRange struct {
	From time.Time
	To   time.Time
}

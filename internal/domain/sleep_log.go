package domain

import (
	"time"

	"github.com/google/uuid"
)

// SleepType represents the category of sleep session.
// @Description Type of sleep: main for the primary sleep block, nap for short extra sleep.
type SleepType string

const (
	// SleepTypeMain is the primary sleep block of a day, whenever it happens
	SleepTypeMain SleepType = "main"
	// SleepTypeNap is a short supplementary sleep
	SleepTypeNap SleepType = "nap"
)

type SleepLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_sleep_logs_user_start" json:"user_id"`
	StartAt         time.Time `gorm:"not null;index:idx_sleep_logs_user_start,sort:desc" json:"start_at"`
	EndAt           time.Time `gorm:"not null;index" json:"end_at"`
	Quality         int       `gorm:"type:smallint;not null" json:"quality"`
	Type            SleepType `gorm:"type:varchar(10);not null" json:"type"`
	LocalTimezone   string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"local_timezone"`
	ClientRequestID *string   `gorm:"type:varchar(255);uniqueIndex:idx_user_client_request,where:client_request_id IS NOT NULL" json:"client_request_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SleepLog) TableName() string {
	return "sleep_logs"
}

// Hours is the elapsed sleep duration in hours.
func (s *SleepLog) Hours() float64 {
	return s.EndAt.Sub(s.StartAt).Hours()
}

// Location resolves LocalTimezone, falling back to UTC when it is empty or unknown.
func (s *SleepLog) Location() *time.Location {
	if s.LocalTimezone != "" {
		if l, err := time.LoadLocation(s.LocalTimezone); err == nil {
			return l
		}
	}
	return time.UTC
}

// LocalEndDate is the calendar date (YYYY-MM-DD) the sleep ended on, in its local timezone.
// Sleep is credited to the day the sleeper woke up.
func (s *SleepLog) LocalEndDate() string {
	return s.EndAt.In(s.Location()).Format(DateLayout)
}

// DateLayout is the calendar-date format used for day keys.
const DateLayout = "2006-01-02"

// CreateSleepLogRequest is the request body for creating a sleep log.
// @Description Request payload for recording a sleep session.
type CreateSleepLogRequest struct {
	// Sleep start time in RFC3339 format (UTC recommended)
	StartAt time.Time `json:"start_at" validate:"required" example:"2024-01-16T08:30:00Z"`
	// Sleep end time in RFC3339 format (must be after start_at)
	EndAt time.Time `json:"end_at" validate:"required,gtfield=StartAt" example:"2024-01-16T15:00:00Z"`
	// Sleep quality rating from 1 (poor) to 5 (excellent)
	Quality int `json:"quality" validate:"required,min=1,max=5" example:"4" minimum:"1" maximum:"5"`
	// Sleep type: main or nap
	Type SleepType `json:"type" validate:"required,oneof=main nap" example:"main" enums:"main,nap"`
	// Optional client-generated ID for idempotent requests (max 255 chars)
	ClientRequestID *string `json:"client_request_id,omitempty" validate:"omitempty,max=255" example:"client-uuid-12345"`
	// Optional IANA timezone for local time display (defaults to user's timezone)
	LocalTimezone *string `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// UpdateSleepLogRequest is the request body for partially updating a sleep log.
// @Description Partial update of a sleep session; omitted fields keep their value.
type UpdateSleepLogRequest struct {
	StartAt       *time.Time `json:"start_at,omitempty" example:"2024-01-16T08:30:00Z"`
	EndAt         *time.Time `json:"end_at,omitempty" example:"2024-01-16T15:00:00Z"`
	Quality       *int       `json:"quality,omitempty" validate:"omitempty,min=1,max=5" example:"3"`
	Type          *SleepType `json:"type,omitempty" validate:"omitempty,oneof=main nap" example:"nap" enums:"main,nap"`
	LocalTimezone *string    `json:"local_timezone,omitempty" validate:"omitempty,timezone" example:"Europe/Prague"`
}

// SleepLogResponse is the response body for sleep log endpoints.
// @Description Sleep session record with UTC and local times.
type SleepLogResponse struct {
	ID              uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	StartAt         time.Time `json:"start_at" example:"2024-01-16T08:30:00Z"`
	EndAt           time.Time `json:"end_at" example:"2024-01-16T15:00:00Z"`
	DurationHours   float64   `json:"duration_hours" example:"6.5"`
	Quality         int       `json:"quality" example:"4"`
	Type            SleepType `json:"type" example:"main"`
	ClientRequestID *string   `json:"client_request_id,omitempty" example:"client-uuid-12345"`
	CreatedAt       time.Time `json:"created_at" example:"2024-01-16T15:05:00Z"`
	LocalTimezone   string    `json:"local_timezone" example:"Europe/Prague"`
	LocalStartAt    time.Time `json:"local_start_at" example:"2024-01-16T09:30:00+01:00"`
	LocalEndAt      time.Time `json:"local_end_at" example:"2024-01-16T16:00:00+01:00"`
}

func (s *SleepLog) ToResponse() SleepLogResponse {
	loc := s.Location()

	return SleepLogResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		StartAt:         s.StartAt,
		EndAt:           s.EndAt,
		DurationHours:   s.Hours(),
		Quality:         s.Quality,
		Type:            s.Type,
		ClientRequestID: s.ClientRequestID,
		CreatedAt:       s.CreatedAt,
		LocalTimezone:   s.LocalTimezone,
		LocalStartAt:    s.StartAt.In(loc),
		LocalEndAt:      s.EndAt.In(loc),
	}
}

// SleepLogListResponse is the response body for listing sleep logs.
// @Description Paginated list of sleep logs.
type SleepLogListResponse struct {
	Data       []SleepLogResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	HasMore    bool   `json:"has_more" example:"true"`
}

// SleepLogFilter contains filter parameters for listing sleep logs
type SleepLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShiftType is the work-shift classification used by every calculator.
// @Description Work shift classification.
type ShiftType string

const (
	ShiftMorning  ShiftType = "morning"
	ShiftDay      ShiftType = "day"
	ShiftEvening  ShiftType = "evening"
	ShiftNight    ShiftType = "night"
	ShiftRotating ShiftType = "rotating"
	ShiftOff      ShiftType = "off"
)

// ShiftTypes lists every valid shift type in display order.
var ShiftTypes = []ShiftType{ShiftMorning, ShiftDay, ShiftEvening, ShiftNight, ShiftRotating, ShiftOff}

// Valid reports whether s is one of the known shift types.
func (s ShiftType) Valid() bool {
	for _, t := range ShiftTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Shift is a rostered shift for a single local calendar day.
type Shift struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_shifts_user_date" json:"user_id"`
	Date    string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_shifts_user_date" json:"date"`
	Label   string     `gorm:"type:varchar(32);not null" json:"label"`
	Type    ShiftType  `gorm:"type:varchar(16);not null" json:"type"`
	StartAt *time.Time `json:"start_at,omitempty"`
	EndAt   *time.Time `json:"end_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Shift) TableName() string {
	return "shifts"
}

// CreateShiftRequest is the request body for recording a shift.
// @Description Request payload for rostering a shift.
type CreateShiftRequest struct {
	// Local calendar date of the shift (YYYY-MM-DD)
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	// Roster label such as DAY, NIGHT, OFF or CUSTOM
	Label string `json:"label" validate:"required,max=32" example:"NIGHT"`
	// Optional explicit type; derived from the label and start time when omitted
	Type *ShiftType `json:"type,omitempty" validate:"omitempty,shifttype" example:"night" enums:"morning,day,evening,night,rotating,off"`
	// Optional shift start time
	StartAt *time.Time `json:"start_at,omitempty" example:"2024-01-15T19:00:00Z"`
	// Optional shift end time (must be after start_at)
	EndAt *time.Time `json:"end_at,omitempty" validate:"omitempty,gtfield=StartAt" example:"2024-01-16T07:00:00Z"`
}

// ShiftListResponse is the response body for listing shifts.
// @Description Shifts in a date range.
type ShiftListResponse struct {
	Data []Shift `json:"data"`
}

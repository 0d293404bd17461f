package domain

import (
	"time"

	"github.com/google/uuid"
)

// Goal is the user's body-composition goal.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

const (
	DefaultSleepGoalHours = 7.5
	DefaultWeightKg       = 85.0
	DefaultWaterGoalMl    = 2500
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone       string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	SleepGoalHours float64   `gorm:"not null;default:7.5" json:"sleep_goal_hours"`
	WeightKg       float64   `gorm:"not null;default:85" json:"weight_kg"`
	Goal           Goal      `gorm:"type:varchar(16);not null;default:'maintain'" json:"goal"`
	WaterGoalMl    int       `gorm:"not null;default:2500" json:"water_goal_ml"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location returns the user's home timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone       string   `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	SleepGoalHours *float64 `json:"sleep_goal_hours,omitempty" validate:"omitempty,gt=0,lte=14" example:"7.5"`
	WeightKg       *float64 `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lte=400" example:"80"`
	Goal           *Goal    `json:"goal,omitempty" validate:"omitempty,oneof=lose maintain gain" example:"maintain" enums:"lose,maintain,gain"`
	WaterGoalMl    *int     `json:"water_goal_ml,omitempty" validate:"omitempty,min=0,max=10000" example:"2500"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Timezone       string    `json:"timezone"`
	SleepGoalHours float64   `json:"sleep_goal_hours"`
	WeightKg       float64   `json:"weight_kg"`
	Goal           Goal      `json:"goal"`
	WaterGoalMl    int       `json:"water_goal_ml"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:             u.ID,
		Timezone:       u.Timezone,
		SleepGoalHours: u.SleepGoalHours,
		WeightKg:       u.WeightKg,
		Goal:           u.Goal,
		WaterGoalMl:    u.WaterGoalMl,
		CreatedAt:      u.CreatedAt,
	}
}

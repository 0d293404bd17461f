package domain

import "github.com/google/uuid"

// CoachingStatus is the traffic-light wellness risk.
type CoachingStatus string

const (
	StatusGreen CoachingStatus = "green"
	StatusAmber CoachingStatus = "amber"
	StatusRed   CoachingStatus = "red"
)

// BiometricSnapshot is the set of metrics the coaching classifier reads.
// Nil fields are replaced by defaults.
type BiometricSnapshot struct {
	BodyClockScore    *float64   `json:"body_clock_score,omitempty" yaml:"body_clock_score"`
	RecoveryScore     *float64   `json:"recovery_score,omitempty" yaml:"recovery_score"`
	SleepHoursLast24h *float64   `json:"sleep_hours_last_24h,omitempty" yaml:"sleep_hours_last_24h"`
	MoodScore         *int       `json:"mood_score,omitempty" yaml:"mood_score"`
	FocusScore        *int       `json:"focus_score,omitempty" yaml:"focus_score"`
	Shift             *ShiftType `json:"shift,omitempty" yaml:"shift"`
}

// CoachingState is the classified state for the current snapshot.
// @Description Green, amber or red status with a short label and a plain-text summary.
type CoachingState struct {
	Status  CoachingStatus `json:"status" example:"amber" enums:"green,amber,red"`
	Label   string         `json:"label" example:"Running on low sleep (nights)"`
	Summary string         `json:"summary"`
}

// Tip is a scored coaching recommendation.
// @Description A coaching tip; higher scores win.
type Tip struct {
	Score int    `json:"score" example:"88"`
	Title string `json:"title" example:"Shift Rhythm boost"`
	Body  string `json:"body" example:"Get 10 minutes of bright light soon after waking."`
}

// SleepInsight summarises the last week of sleep.
// @Description Weekly sleep insight with hints that can seed a coaching tip.
type SleepInsight struct {
	Title      string   `json:"title" example:"Anchor your sleep window"`
	Summary    string   `json:"summary"`
	Bullets    []string `json:"bullets"`
	ScoreHints []string `json:"score_hints"`
}

// CoachTipResponse is the response for the coach tip endpoint.
// @Description The winning tip, optionally rewritten by the language model.
type CoachTipResponse struct {
	TraceID string        `json:"trace_id,omitempty" example:"b6a7f0a2-4a53-4e22-8b8e-1a6fb1f1f2c1"`
	Tip     Tip           `json:"tip"`
	Message string        `json:"message" example:"Protect your main sleep window today and keep caffeine front-loaded to help your body clock reset."`
	Source  TipSource     `json:"source" example:"llm" enums:"llm,fallback,rules"`
	State   CoachingState `json:"state"`
	Insight *SleepInsight `json:"insight,omitempty"`
}

// TipSource records where the tip message came from.
type TipSource string

const (
	TipSourceLLM      TipSource = "llm"
	TipSourceFallback TipSource = "fallback"
	TipSourceRules    TipSource = "rules"
)

// CoachTipContext is the payload sent to the language model to phrase a tip.
type CoachTipContext struct {
	UserID        uuid.UUID     `json:"user_id"`
	Shift         ShiftType     `json:"shift"`
	State         CoachingState `json:"state"`
	Tip           Tip           `json:"tip"`
	RhythmScore   int           `json:"rhythm_score"`
	RecoveryScore int           `json:"recovery_score"`
	SleepDebt     float64       `json:"sleep_debt_hours"`
}

// TipFeedbackRequest records whether a tip helped.
// @Description User feedback on a coaching tip, attached to its trace.
type TipFeedbackRequest struct {
	TraceID string  `json:"trace_id" validate:"required,uuid" example:"b6a7f0a2-4a53-4e22-8b8e-1a6fb1f1f2c1"`
	Helpful bool    `json:"helpful" example:"true"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000" example:"Made my post-shift sleep easier"`
}

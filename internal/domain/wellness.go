package domain

// CircadianFactors are the signed contributions that make up a circadian score.
// @Description Signed score contributions around the neutral base of 50.
type CircadianFactors struct {
	LatestShift   float64 `json:"latest_shift" example:"-15"`
	SleepDuration float64 `json:"sleep_duration" example:"4"`
	SleepTiming   float64 `json:"sleep_timing" example:"-8"`
	SleepDebt     float64 `json:"sleep_debt" example:"0"`
	Inconsistency float64 `json:"inconsistency" example:"-5"`
}

// CircadianOutput is the body clock alignment result.
// @Description Body clock alignment score (0-100) with explainable factors.
type CircadianOutput struct {
	CircadianPhase float64          `json:"circadian_phase" example:"38"`
	AlignmentScore float64          `json:"alignment_score" example:"38"`
	Factors        CircadianFactors `json:"factors"`
}

// SleepDeficitCategory buckets a weekly deficit.
type SleepDeficitCategory string

const (
	DeficitSurplus SleepDeficitCategory = "surplus"
	DeficitLow     SleepDeficitCategory = "low"
	DeficitMedium  SleepDeficitCategory = "medium"
	DeficitHigh    SleepDeficitCategory = "high"
)

// SleepDeficitDay is one day of the rolling deficit window.
type SleepDeficitDay struct {
	Date     string  `json:"date" example:"2024-01-16"`
	Label    string  `json:"label" example:"Tue"`
	Required float64 `json:"required" example:"7.5"`
	Actual   float64 `json:"actual" example:"6.25"`
	Deficit  float64 `json:"deficit" example:"1.25"`
}

// SleepDeficitResult is the rolling 7-day sleep deficit.
// @Description Rolling 7-day sleep deficit in hours, most recent day first.
type SleepDeficitResult struct {
	RequiredDaily float64              `json:"required_daily" example:"7.5"`
	WeeklyDeficit float64              `json:"weekly_deficit" example:"4.5"`
	Daily         []SleepDeficitDay    `json:"daily"`
	Category      SleepDeficitCategory `json:"category" example:"medium" enums:"surplus,low,medium,high"`
}

// SleepStagePercentages is an estimated sleep architecture. The four values sum to 100.
// @Description Estimated share of deep, REM, light and awake time.
type SleepStagePercentages struct {
	Deep  int `json:"deep" example:"19"`
	REM   int `json:"rem" example:"23"`
	Light int `json:"light" example:"52"`
	Awake int `json:"awake" example:"6"`
}

// SleepTiming classifies when the main sleep happened.
type SleepTiming string

const (
	SleepTimingNightAligned SleepTiming = "nightAligned"
	SleepTimingDaySleep     SleepTiming = "daySleep"
	SleepTimingMixed        SleepTiming = "mixed"
)

// MacroTargets are the adjusted daily nutrition targets.
// @Description Daily macro and hydration targets adjusted for sleep and shift.
type MacroTargets struct {
	ProteinTargetG    int         `json:"protein_target_g" example:"150"`
	CarbTargetG       int         `json:"carb_target_g" example:"220"`
	FatTargetG        int         `json:"fat_target_g" example:"80"`
	SaturatedFatMaxG  int         `json:"saturated_fat_max_g" example:"20"`
	HydrationTargetMl int         `json:"hydration_target_ml" example:"2750"`
	Calories          int         `json:"calories" example:"2600"`
	SleepTiming       SleepTiming `json:"sleep_timing" example:"daySleep" enums:"nightAligned,daySleep,mixed"`
}

// StepRecommendation is a daily step range.
// @Description Step goal range with the reason for today's adjustment.
type StepRecommendation struct {
	Min       int    `json:"min" example:"6000"`
	Max       int    `json:"max" example:"8000"`
	Suggested int    `json:"suggested" example:"7000"`
	Reason    string `json:"reason" example:"Night shift today – aim for steady movement but save energy for the hours when you need it most."`
}

// BingeRisk is the likelihood of stress or fatigue driven overeating.
type BingeRisk string

const (
	BingeRiskLow    BingeRisk = "Low"
	BingeRiskMedium BingeRisk = "Medium"
	BingeRiskHigh   BingeRisk = "High"
)

// DailyScores is the precomputed picture of a user's day.
// @Description Daily rhythm, recovery and fuel targets.
type DailyScores struct {
	Date           string       `json:"date" example:"2024-01-16"`
	Shift          ShiftType    `json:"shift" example:"night"`
	AvgSleepHours  float64      `json:"avg_sleep_hours" example:"6.2"`
	SleepDebtHours float64      `json:"sleep_debt_hours" example:"1.3"`
	RhythmScore    int          `json:"rhythm_score" example:"54"`
	RecoveryScore  int          `json:"recovery_score" example:"62"`
	AdjustedKcal   int          `json:"adjusted_kcal" example:"2450"`
	BaseMacros     BaseMacros   `json:"base_macros"`
	BingeRisk      BingeRisk    `json:"binge_risk" example:"Medium" enums:"Low,Medium,High"`
	SleepWindow    SleepWindow  `json:"sleep_window"`
	CaffeineCutoff string       `json:"caffeine_cutoff" example:"2024-01-16T00:30:00Z"`
	Macros         MacroTargets `json:"macros"`
}

// BaseMacros are the unadjusted daily macro grams derived from weight and goal.
type BaseMacros struct {
	ProteinG int `json:"protein_g" example:"136"`
	CarbsG   int `json:"carbs_g" example:"268"`
	FatG     int `json:"fat_g" example:"82"`
}

// SleepWindow is the recommended main sleep window.
type SleepWindow struct {
	Start string `json:"start" example:"2024-01-16T08:30:00Z"`
	End   string `json:"end" example:"2024-01-16T16:00:00Z"`
}

// LagCategory buckets a shift lag score or a social jetlag shift.
type LagCategory string

const (
	LagLow      LagCategory = "low"
	LagModerate LagCategory = "moderate"
	LagHigh     LagCategory = "high"
)

// ShiftLagDrivers describe each component of a shift lag score in words.
type ShiftLagDrivers struct {
	SleepDebt    string `json:"sleep_debt" example:"Sleep debt: 6.5h this week"`
	Misalignment string `json:"misalignment" example:"Night work during biological night: 7.0h per shift"`
	Instability  string `json:"instability" example:"Schedule stability: Consistent"`
}

// ShiftLagMetrics is the jet lag a shift pattern causes.
// @Description Shift lag (0-100) from weekly sleep debt (0-40), night work during biological night (0-40) and shift start instability (0-20).
type ShiftLagMetrics struct {
	Score                      int             `json:"score" example:"52"`
	Category                   LagCategory     `json:"category" example:"high" enums:"low,moderate,high"`
	SleepDebtScore             int             `json:"sleep_debt_score" example:"19"`
	MisalignmentScore          int             `json:"misalignment_score" example:"38"`
	InstabilityScore           int             `json:"instability_score" example:"0"`
	SleepDebtHours             float64         `json:"sleep_debt_hours" example:"6.5"`
	AvgNightOverlapHours       float64         `json:"avg_night_overlap_hours" example:"7"`
	ShiftStartVariabilityHours float64         `json:"shift_start_variability_hours" example:"0"`
	Explanation                string          `json:"explanation" example:"Your body clock is significantly out of sync (52/100) due to night shifts during biological night, sleep debt, and schedule changes."`
	Drivers                    ShiftLagDrivers `json:"drivers"`
	Recommendations            []string        `json:"recommendations"`
}

// SocialJetlagMetrics is how far the sleep midpoint has drifted from its usual clock time.
// @Description Sleep midpoint drift in hours against the median of the previous week. Clock values are hours after midnight.
type SocialJetlagMetrics struct {
	CurrentMisalignmentHours       float64     `json:"current_misalignment_hours" example:"2.5"`
	WeeklyAverageMisalignmentHours float64     `json:"weekly_average_misalignment_hours" example:"1.4"`
	BaselineMidpointClock          *float64    `json:"baseline_midpoint_clock,omitempty" example:"3.5"`
	CurrentMidpointClock           *float64    `json:"current_midpoint_clock,omitempty" example:"6"`
	Category                       LagCategory `json:"category" example:"moderate" enums:"low,moderate,high"`
	Explanation                    string      `json:"explanation" example:"Your sleep midpoint has shifted by around 2.5 hours due to recent shift changes."`
}

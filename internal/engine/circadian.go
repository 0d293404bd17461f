package engine

import (
	"math"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	minutesPerDay = 24 * 60
	// idealMidpointMinutes is 03:00, the midpoint of a well aligned night sleep.
	idealMidpointMinutes = 3 * 60
	circadianBase        = 50.0
)

// band is a threshold row: the first row whose predicate holds supplies the score.
type band struct {
	limit float64
	score float64
}

// durationBands score sleep hours, highest threshold first (value >= limit).
var durationBands = []band{{7, 12}, {6, 4}}

const durationFloorScore = -8

// timingBands score hours away from the ideal midpoint (value <= limit).
var timingBands = []band{{1, 12}, {2, 4}}

const timingFloorScore = -8

// debtBands score sleep debt in hours (value <= limit).
var debtBands = []band{{2, 8}, {5, 0}}

const debtFloorScore = -12

// varianceBands penalise bedtime variability in minutes (value < limit).
var varianceBands = []band{{30, 0}, {60, -5}, {120, -10}}

const varianceFloorScore = -15

// CircadianInput is the defaulted input to CalculateCircadianPhase. Callers
// substitute defaults for missing history first (see SummarizeSleepTiming).
type CircadianInput struct {
	SleepStart             time.Time
	SleepEnd               time.Time
	AvgBedtimeMinutes      float64
	AvgWakeMinutes         float64
	BedtimeVarianceMinutes float64
	SleepDurationHours     float64
	SleepDebtHours         float64
	Shift                  domain.ShiftType
}

func (in CircadianInput) validate() error {
	if err := checkShift("shift", in.Shift); err != nil {
		return err
	}
	if !in.SleepEnd.After(in.SleepStart) {
		return &InputError{Field: "sleep_end", Reason: "not after sleep_start"}
	}
	fields := []struct {
		name string
		v    float64
	}{
		{"avg_bedtime_minutes", in.AvgBedtimeMinutes},
		{"avg_wake_minutes", in.AvgWakeMinutes},
		{"bedtime_variance_minutes", in.BedtimeVarianceMinutes},
		{"sleep_duration_hours", in.SleepDurationHours},
		{"sleep_debt_hours", in.SleepDebtHours},
	}
	for _, f := range fields {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

// CalculateCircadianPhase scores body clock alignment from 0 to 100.
//
// The midpoint of the sleep is compared to 03:00 on the wall clock of
// SleepStart's location, wrapping around midnight so the worst deviation is
// twelve hours. Five signed contributions are added to a base of 50 and the
// sum is clamped. CircadianPhase and AlignmentScore carry the same value.
func CalculateCircadianPhase(in CircadianInput) (domain.CircadianOutput, error) {
	if err := in.validate(); err != nil {
		return domain.CircadianOutput{}, err
	}

	deviationHours := midpointDeviationMinutes(in.SleepStart, in.SleepEnd) / 60

	factors := domain.CircadianFactors{
		LatestShift:   shiftEffects[in.Shift],
		SleepDuration: scoreAtLeast(in.SleepDurationHours, durationBands, durationFloorScore),
		SleepTiming:   scoreAtMost(deviationHours, timingBands, timingFloorScore),
		SleepDebt:     scoreAtMost(in.SleepDebtHours, debtBands, debtFloorScore),
		Inconsistency: scoreBelow(in.BedtimeVarianceMinutes, varianceBands, varianceFloorScore),
	}

	score := circadianBase + factors.LatestShift + factors.SleepDuration +
		factors.SleepTiming + factors.SleepDebt + factors.Inconsistency
	score = clamp(score, 0, 100)

	return domain.CircadianOutput{
		CircadianPhase: score,
		AlignmentScore: score,
		Factors:        factors,
	}, nil
}

// midpointDeviationMinutes is the circular distance between the sleep midpoint
// and 03:00, in [0, 720].
func midpointDeviationMinutes(start, end time.Time) float64 {
	mid := start.Add(end.Sub(start) / 2).In(start.Location())
	m := minutesOfDay(mid)
	d := math.Abs(m - idealMidpointMinutes)
	return math.Min(d, minutesPerDay-d)
}

func minutesOfDay(t time.Time) float64 {
	return float64(t.Hour()*60+t.Minute()) + float64(t.Second())/60
}

func scoreAtLeast(v float64, bands []band, floor float64) float64 {
	for _, b := range bands {
		if v >= b.limit {
			return b.score
		}
	}
	return floor
}

func scoreAtMost(v float64, bands []band, floor float64) float64 {
	for _, b := range bands {
		if v <= b.limit {
			return b.score
		}
	}
	return floor
}

func scoreBelow(v float64, bands []band, floor float64) float64 {
	for _, b := range bands {
		if v < b.limit {
			return b.score
		}
	}
	return floor
}

package engine

import (
	"math"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	baseStepMin      = 8000
	baseStepMax      = 10000
	minStepFloor     = 4000
	stepGranularity  = 500
	minStepSpread    = 1000
	defaultStepSleep = 7.0
)

const (
	reasonBalanced     = "Balanced activity for recovery and energy."
	reasonVeryShort    = "Short sleep last night – focus on gentle movement, not chasing huge numbers."
	reasonShort        = "Slightly reduced sleep – aim for a solid but realistic target."
	reasonLong         = "Plenty of sleep – it's a good day to bank some extra steps if you feel up to it."
	reasonNightShort   = "Night shift plus short sleep – keep steps modest and protect your recovery window."
	reasonNight        = "Night shift today – aim for steady movement but save energy for the hours when you need it most."
	reasonOff          = "Off shift – a good chance for a little more movement, as long as you feel rested."
	reasonLowRecovery  = "Recovery is low – today is about gentle activity and rest, not pushing hard."
	reasonHighRecovery = "Recovery looks good – you can stretch your step goal slightly if it feels right."
)

const (
	nightShortSleepHrs = 6.5
	lowRecoveryLimit   = 40
	highRecoveryLimit  = 75
)

// stepAdjustment shifts both ends of the range and replaces the reason.
type stepAdjustment struct {
	delta  int
	reason string
}

// StepInput is the context for RecommendSteps. Nil pointers mean no data.
type StepInput struct {
	Shift              domain.ShiftType
	LastMainSleepHours *float64
	RecoveryScore      *float64
}

// RecommendSteps derives today's step range. Adjustments apply in order
// (sleep, shift, recovery) and each one that fires replaces the reason.
// The range is then snapped to multiples of 500 with min >= 4000 and
// max >= min+1000; Suggested is the midpoint rounded to the nearest 1000.
func RecommendSteps(in StepInput) (domain.StepRecommendation, error) {
	if err := checkShift("shift", in.Shift); err != nil {
		return domain.StepRecommendation{}, err
	}
	if err := checkFinitePtr("last_main_sleep_hours", in.LastMainSleepHours); err != nil {
		return domain.StepRecommendation{}, err
	}
	if err := checkFinitePtr("recovery_score", in.RecoveryScore); err != nil {
		return domain.StepRecommendation{}, err
	}

	sleep := defaultStepSleep
	if in.LastMainSleepHours != nil {
		sleep = *in.LastMainSleepHours
	}

	var adjustments []stepAdjustment
	switch {
	case sleep < 5.5:
		adjustments = append(adjustments, stepAdjustment{-2000, reasonVeryShort})
	case sleep < 6.5:
		adjustments = append(adjustments, stepAdjustment{-1000, reasonShort})
	case sleep > 8:
		adjustments = append(adjustments, stepAdjustment{500, reasonLong})
	}

	switch in.Shift {
	case domain.ShiftNight:
		reason := reasonNight
		if sleep < nightShortSleepHrs {
			reason = reasonNightShort
		}
		adjustments = append(adjustments, stepAdjustment{-1000, reason})
	case domain.ShiftOff:
		adjustments = append(adjustments, stepAdjustment{500, reasonOff})
	}

	if in.RecoveryScore != nil {
		switch r := *in.RecoveryScore; {
		case r < lowRecoveryLimit:
			adjustments = append(adjustments, stepAdjustment{-1500, reasonLowRecovery})
		case r > highRecoveryLimit:
			adjustments = append(adjustments, stepAdjustment{500, reasonHighRecovery})
		}
	}

	lo, hi, reason := baseStepMin, baseStepMax, reasonBalanced
	for _, a := range adjustments {
		lo += a.delta
		hi += a.delta
		reason = a.reason
	}

	lo = max(minStepFloor, snap(lo, stepGranularity))
	hi = max(lo+minStepSpread, snap(hi, stepGranularity))

	return domain.StepRecommendation{
		Min:       lo,
		Max:       hi,
		Suggested: snap((lo+hi)/2, 2*stepGranularity),
		Reason:    reason,
	}, nil
}

func snap(v, step int) int {
	return int(math.Floor(float64(v)/float64(step)+0.5)) * step
}

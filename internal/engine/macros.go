package engine

import (
	"math"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	minCalories      = 1200
	maxCalories      = 10000
	minProteinG      = 40
	minCarbG         = 60
	minFatG          = 20
	minHydrationMl   = 1500
	maxHydrationMl   = 3500
	minSaturatedFatG = 5
	maxSaturatedFatG = 25
)

// macroNudge multiplies base targets when its condition holds.
type macroNudge struct {
	protein, carbs, hydration float64
}

var (
	shortSleepNudge = macroNudge{protein: 1.1, carbs: 0.9, hydration: 1.1}
	longSleepNudge  = macroNudge{protein: 1, carbs: 1.05, hydration: 1}
	daySleepNudge   = macroNudge{protein: 1.05, carbs: 0.9, hydration: 1.1}
)

// MacroInput is the calorie baseline and sleep context for AdjustMacroTargets.
type MacroInput struct {
	AdjustedCalories float64
	BaseProteinG     float64
	BaseCarbG        float64
	BaseFatG         float64
	BaseHydrationMl  float64
	// SleepHoursLast24 is nil when nothing was logged.
	SleepHoursLast24 *float64
	MainSleepStart   *time.Time
	MainSleepEnd     *time.Time
}

func (in MacroInput) validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"adjusted_calories", in.AdjustedCalories},
		{"base_protein_g", in.BaseProteinG},
		{"base_carb_g", in.BaseCarbG},
		{"base_fat_g", in.BaseFatG},
		{"base_hydration_ml", in.BaseHydrationMl},
	}
	for _, f := range fields {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}
	return checkFinitePtr("sleep_hours_last_24", in.SleepHoursLast24)
}

// ClassifySleepTiming places the midpoint of a main sleep on the wall clock of
// start's location: 22:00-05:59 is night aligned, 08:00-15:59 is day sleep,
// everything else (or a missing sleep) is mixed.
func ClassifySleepTiming(start, end *time.Time) domain.SleepTiming {
	if start == nil || end == nil || start.IsZero() || end.IsZero() {
		return domain.SleepTimingMixed
	}
	mid := start.Add(end.Sub(*start) / 2).In(start.Location())
	switch h := mid.Hour(); {
	case h >= 22 || h < 6:
		return domain.SleepTimingNightAligned
	case h >= 8 && h <= 15:
		return domain.SleepTimingDaySleep
	default:
		return domain.SleepTimingMixed
	}
}

// AdjustMacroTargets nudges the base macros for last night's sleep and
// clamps them relative to calories. Calories are held to 1200-10000 so every
// absolute floor stays under its calorie ceiling and every target fits an int;
// protein is capped at kcal/8 g, carbs at kcal/16 g and fat at kcal/27 g.
func AdjustMacroTargets(in MacroInput) (domain.MacroTargets, error) {
	if err := in.validate(); err != nil {
		return domain.MacroTargets{}, err
	}

	kcal := clamp(round(in.AdjustedCalories), minCalories, maxCalories)
	var sleep float64
	if in.SleepHoursLast24 != nil {
		sleep = math.Max(0, *in.SleepHoursLast24)
	}
	timing := ClassifySleepTiming(in.MainSleepStart, in.MainSleepEnd)

	protein, carbs, fat, hydration := in.BaseProteinG, in.BaseCarbG, in.BaseFatG, in.BaseHydrationMl
	apply := func(n macroNudge) {
		protein *= n.protein
		carbs *= n.carbs
		hydration *= n.hydration
	}
	if sleep > 0 && sleep <= 6 {
		apply(shortSleepNudge)
	}
	if sleep >= 8 {
		apply(longSleepNudge)
	}
	if timing == domain.SleepTimingDaySleep {
		apply(daySleepNudge)
	}

	maxProtein := kcal / 2 / 4
	maxCarbs := kcal / 4 / 4
	maxFat := kcal / 3 / 9

	protein = clamp(protein, minProteinG, maxProtein)
	carbs = clamp(carbs, minCarbG, maxCarbs)
	fat = clamp(fat, minFatG, maxFat)
	hydration = clamp(hydration, minHydrationMl, maxHydrationMl)

	saturated := clamp(math.Min(kcal*0.1/9, fat*0.25), minSaturatedFatG, maxSaturatedFatG)

	return domain.MacroTargets{
		ProteinTargetG:    roundWithin(protein, maxProtein),
		CarbTargetG:       roundWithin(carbs, maxCarbs),
		FatTargetG:        roundWithin(fat, maxFat),
		SaturatedFatMaxG:  int(round(saturated)),
		HydrationTargetMl: int(round(hydration)),
		Calories:          int(kcal),
		SleepTiming:       timing,
	}, nil
}

// roundWithin rounds to the nearest gram without crossing the ceiling.
func roundWithin(v, ceiling float64) int {
	r := round(v)
	if r > ceiling {
		r = math.Floor(ceiling)
	}
	return int(r)
}

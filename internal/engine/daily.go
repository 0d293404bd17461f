package engine

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	recentSleepSamples = 3
	recentSleepWindow  = 7 * 24 * time.Hour
	caffeineCutoffGap  = 8 * time.Hour
	heavyCaffeineMg    = 250
	minDailyKcal       = 1400
	maxDailyKcal       = 3800
	// activityFactor sits between sedentary and active for weight*22 kcal BMR.
	activityFactor = 1.4
)

var goalKcalFactors = map[domain.Goal]float64{
	domain.GoalLose:     0.85,
	domain.GoalMaintain: 1,
	domain.GoalGain:     1.10,
}

var goalProteinPerKg = map[domain.Goal]float64{
	domain.GoalLose:     1.8,
	domain.GoalMaintain: 1.6,
	domain.GoalGain:     2.0,
}

// Intake is a timestamped amount (ml of water, mg of caffeine).
type Intake struct {
	At     time.Time
	Amount int
}

// DayInput is one user's day as ComputeDay sees it. Now carries the user's location.
type DayInput struct {
	Now            time.Time
	Shift          domain.ShiftType
	SleepGoalHours float64
	WeightKg       float64
	Goal           domain.Goal
	WaterGoalMl    int
	// Sleeps that ended within a week of Now count; older ones are ignored.
	// Order does not matter.
	Sleeps   []SleepPeriod
	Caffeine []Intake
}

func (in DayInput) validate() error {
	if err := checkShift("shift", in.Shift); err != nil {
		return err
	}
	if err := checkFinite("sleep_goal_hours", in.SleepGoalHours); err != nil {
		return err
	}
	return checkFinite("weight_kg", in.WeightKg)
}

// ComputeDay derives the day's rhythm and recovery scores, calorie and macro
// targets, binge risk, recommended sleep window and caffeine cut-off.
//
// The sleep window starts at 08:30 after a night shift and at 23:00
// otherwise, lasting the sleep goal; caffeine should stop eight hours before
// it. Average sleep is taken over the three most recent sleeps, falling back
// to the goal when there are none.
func ComputeDay(in DayInput) (domain.DailyScores, error) {
	if err := in.validate(); err != nil {
		return domain.DailyScores{}, err
	}
	goalHours := in.SleepGoalHours
	if goalHours <= 0 {
		goalHours = domain.DefaultSleepGoalHours
	}
	weight := in.WeightKg
	if weight <= 0 {
		weight = domain.DefaultWeightKg
	}
	goal := in.Goal
	if _, ok := goalKcalFactors[goal]; !ok {
		goal = domain.GoalMaintain
	}

	weekAgo := in.Now.Add(-recentSleepWindow)
	sleeps := make([]SleepPeriod, 0, len(in.Sleeps))
	for _, s := range in.Sleeps {
		if s.End.After(weekAgo) {
			sleeps = append(sleeps, s)
		}
	}
	sort.Slice(sleeps, func(i, j int) bool { return sleeps[i].Start.After(sleeps[j].Start) })

	avgSleep := goalHours
	if n := min(len(sleeps), recentSleepSamples); n > 0 {
		var sum float64
		for _, s := range sleeps[:n] {
			sum += s.Hours()
		}
		avgSleep = sum / float64(n)
	}
	debt := math.Max(0, goalHours-avgSleep)

	night := in.Shift == domain.ShiftNight
	now := in.Now
	windowStart := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, now.Location())
	if night {
		windowStart = time.Date(now.Year(), now.Month(), now.Day(), 8, 30, 0, 0, now.Location())
	}
	windowEnd := windowStart.Add(time.Duration(goalHours * float64(time.Hour)))
	cutoff := windowStart.Add(-caffeineCutoffGap)

	var caffeineMg int
	lateCaffeine := false
	for _, c := range in.Caffeine {
		caffeineMg += c.Amount
		if c.At.After(cutoff) {
			lateCaffeine = true
		}
	}

	debtPenalty := clamp(debt/2*20, 0, 40)
	var mismatchPenalty float64
	switch {
	case night:
		mismatchPenalty = 30
	case in.Shift == domain.ShiftOff && avgSleep < 6:
		mismatchPenalty = 10
	}
	var caffeinePenalty float64
	if lateCaffeine {
		caffeinePenalty = 20
	}
	rhythm := clamp(100-(debtPenalty+mismatchPenalty+caffeinePenalty), 0, 100)

	recovery := 70 + (avgSleep-goalHours)*6
	if caffeineMg > heavyCaffeineMg {
		recovery -= 10
	}
	recovery = clamp(recovery, 20, 95)

	kcal := weight * 22 * activityFactor * goalKcalFactors[goal]
	if avgSleep < 6 {
		kcal *= 0.94
	}
	if recovery < 60 {
		kcal *= 0.96
	}
	kcal = round(clamp(kcal, minDailyKcal, maxDailyKcal))

	protein := round(weight * goalProteinPerKg[goal])
	fat := round(kcal * 0.30 / 9)
	carbs := math.Max(0, round((kcal-(protein*4+fat*9))/4))

	binge := domain.BingeRiskLow
	if debt >= 1.5 || lateCaffeine {
		binge = domain.BingeRiskMedium
		if debt >= 2 {
			binge = domain.BingeRiskHigh
		}
	}

	waterGoal := in.WaterGoalMl
	if waterGoal <= 0 {
		waterGoal = domain.DefaultWaterGoalMl
	}
	macroIn := MacroInput{
		AdjustedCalories: kcal,
		BaseProteinG:     protein,
		BaseCarbG:        carbs,
		BaseFatG:         fat,
		BaseHydrationMl:  float64(waterGoal),
	}
	if last24 := sleepInLast(sleeps, now, 24*time.Hour); last24 > 0 {
		macroIn.SleepHoursLast24 = &last24
	}
	if main, ok := latestMain(sleeps); ok {
		macroIn.MainSleepStart, macroIn.MainSleepEnd = &main.Start, &main.End
	}
	macros, err := AdjustMacroTargets(macroIn)
	if err != nil {
		return domain.DailyScores{}, err
	}

	return domain.DailyScores{
		Date:           now.Format(domain.DateLayout),
		Shift:          in.Shift,
		AvgSleepHours:  math.Round(avgSleep*10) / 10,
		SleepDebtHours: math.Round(debt*10) / 10,
		RhythmScore:    int(round(rhythm)),
		RecoveryScore:  int(round(recovery)),
		AdjustedKcal:   int(kcal),
		BaseMacros:     domain.BaseMacros{ProteinG: int(protein), CarbsG: int(carbs), FatG: int(fat)},
		BingeRisk:      binge,
		SleepWindow: domain.SleepWindow{
			Start: windowStart.Format(time.RFC3339),
			End:   windowEnd.Format(time.RFC3339),
		},
		CaffeineCutoff: cutoff.Format(time.RFC3339),
		Macros:         macros,
	}, nil
}

// TipContextFor builds the tip rule context for a computed day.
func TipContextFor(day domain.DailyScores, now time.Time, caffeineMg, waterMl, waterGoalMl int) TipContext {
	cutoff, err := time.Parse(time.RFC3339, day.CaffeineCutoff)
	if err != nil {
		// no cut-off means it cannot have been missed
		cutoff = now
	}
	return TipContext{
		Now:            now,
		CaffeineCutoff: cutoff.In(now.Location()),
		CaffeineMg:     caffeineMg,
		WaterMl:        waterMl,
		WaterGoalMl:    waterGoalMl,
		RecoveryScore:  day.RecoveryScore,
		RhythmScore:    day.RhythmScore,
		BingeRisk:      day.BingeRisk,
	}
}

// sleepInLast sums sleep ending within d before now.
func sleepInLast(sleeps []SleepPeriod, now time.Time, d time.Duration) float64 {
	since := now.Add(-d)
	var h float64
	for _, s := range sleeps {
		if s.End.After(since) && !s.End.After(now) {
			h += s.Hours()
		}
	}
	return h
}

// latestMain assumes sleeps are sorted most recent first.
func latestMain(sleeps []SleepPeriod) (SleepPeriod, bool) {
	for _, s := range sleeps {
		if !s.Nap {
			return s, true
		}
	}
	return SleepPeriod{}, false
}

// SumIntake totals the amounts.
func SumIntake(in []Intake) int {
	var n int
	for _, i := range in {
		n += i.Amount
	}
	return n
}

package service

import (
	"errors"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
	"github.com/blaisecz/shift-coach/internal/engine"
)

// Evaluation is a snapshot run through the engine.
type Evaluation struct {
	Snapshot *Snapshot
	Day      domain.DailyScores
	// Circadian is nil until a main sleep has been logged.
	Circadian  *domain.CircadianOutput
	Biometrics domain.BiometricSnapshot
}

// Evaluate computes the day's scores, the circadian score and the coaching
// classifier input for a snapshot.
func Evaluate(snap *Snapshot) (*Evaluation, error) {
	user := snap.User

	day, err := engine.ComputeDay(engine.DayInput{
		Now:            snap.Now,
		Shift:          snap.Shift,
		SleepGoalHours: user.SleepGoalHours,
		WeightKg:       user.WeightKg,
		Goal:           user.Goal,
		WaterGoalMl:    user.WaterGoalMl,
		Sleeps:         snap.PeriodsSince(snap.Now.AddDate(0, 0, -7)),
		Caffeine:       snap.CaffeineIntake(),
	})
	if err != nil {
		return nil, err
	}

	ev := &Evaluation{Snapshot: snap, Day: day}

	circadian, err := circadianFor(snap)
	switch {
	case err == nil:
		ev.Circadian = circadian
	case !errors.Is(err, domain.ErrNoSleepData):
		return nil, err
	}

	recovery := float64(day.RecoveryScore)
	shift := snap.Shift
	ev.Biometrics = domain.BiometricSnapshot{
		RecoveryScore:     &recovery,
		SleepHoursLast24h: snap.SleepHoursSince(snap.Now.Add(-24 * time.Hour)),
		Shift:             &shift,
	}
	if circadian != nil {
		phase := circadian.CircadianPhase
		ev.Biometrics.BodyClockScore = &phase
	}
	if snap.Mood != nil {
		mood, focus := snap.Mood.Mood, snap.Mood.Focus
		ev.Biometrics.MoodScore, ev.Biometrics.FocusScore = &mood, &focus
	}
	return ev, nil
}

func circadianFor(snap *Snapshot) (*domain.CircadianOutput, error) {
	summary, err := engine.SummarizeSleepTiming(snap.Periods(), snap.Now, snap.Location(), snap.User.SleepGoalHours)
	if err != nil {
		return nil, err
	}
	out, err := engine.CalculateCircadianPhase(summary.CircadianInput(snap.Shift))
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TipContext is the tip rule input for the evaluated day.
func (ev *Evaluation) TipContext() engine.TipContext {
	snap := ev.Snapshot
	return engine.TipContextFor(ev.Day, snap.Now, engine.SumIntake(snap.CaffeineIntake()), snap.WaterMl(), snap.User.WaterGoalMl)
}

// Insight summarises the last week of sleep.
func (ev *Evaluation) Insight() domain.SleepInsight {
	snap := ev.Snapshot
	return engine.BuildSleepInsight(engine.SleepInsightInput{
		Now:            snap.Now,
		SleepGoalHours: snap.User.SleepGoalHours,
		Sleeps:         snap.RatedSleeps(),
		NightShifts:    snap.NightShifts(),
	})
}

// State classifies the evaluated biometrics.
func (ev *Evaluation) State() (domain.CoachingState, error) {
	return engine.ClassifyCoachingState(ev.Biometrics)
}

package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// Defaults substituted for missing snapshot fields.
const (
	DefaultSleepHours     = 7.0
	DefaultBodyClockScore = 65.0
	DefaultRecoveryScore  = 60.0
	DefaultMoodScore      = 3
	DefaultFocusScore     = 3
	DefaultShift          = domain.ShiftDay
)

// coachingMetrics is a snapshot with defaults applied and flags evaluated.
type coachingMetrics struct {
	sleep, body, rec float64
	mood, focus      int
	shift            domain.ShiftType

	veryLowSleep, lowSleep           bool
	lowRecovery, moderateRecovery    bool
	poorBodyClock, moderateBodyClock bool
	lowMood, moderateMood            bool
	lowFocus, moderateFocus          bool
}

func (m coachingMetrics) night() bool { return m.shift == domain.ShiftNight }

func (m coachingMetrics) redFlags() int {
	return count(m.veryLowSleep, m.lowRecovery, m.poorBodyClock, m.lowMood, m.lowFocus)
}

// amberFlags counts the moderate bands, each only when its red flag is clear.
func (m coachingMetrics) amberFlags() int {
	return count(
		m.lowSleep && !m.veryLowSleep,
		m.moderateRecovery && !m.lowRecovery,
		m.moderateBodyClock && !m.poorBodyClock,
		m.moderateMood && !m.lowMood,
		m.moderateFocus && !m.lowFocus,
	)
}

type labelRule struct {
	when  func(coachingMetrics) bool
	label string
}

func always(coachingMetrics) bool { return true }

// Label chains per status, first match wins.
var (
	redLabels = []labelRule{
		{func(m coachingMetrics) bool { return m.veryLowSleep && m.night() }, "Depleted on night shift"},
		{func(m coachingMetrics) bool { return m.veryLowSleep }, "Critically underslept"},
		{func(m coachingMetrics) bool { return m.lowRecovery && m.night() }, "Depleted on night shift"},
		{func(m coachingMetrics) bool { return m.lowMood && m.lowFocus }, "Low mood & focus"},
		{func(m coachingMetrics) bool { return m.lowRecovery }, "Depleted & under-recovered"},
		{always, "Depleted"},
	}
	amberLabels = []labelRule{
		{func(m coachingMetrics) bool { return m.lowSleep && m.night() }, "Running on low sleep (nights)"},
		{func(m coachingMetrics) bool { return m.lowSleep }, "Running on low sleep"},
		{func(m coachingMetrics) bool { return m.lowMood }, "Mood needs support"},
		{func(m coachingMetrics) bool { return m.lowFocus }, "Focus needs support"},
		{func(m coachingMetrics) bool { return m.moderateRecovery && m.night() }, "Borderline on nights"},
		{func(m coachingMetrics) bool { return m.moderateRecovery }, "Borderline recovery"},
		{always, "Stable but tired"},
	}
	greenLabels = []labelRule{
		{func(m coachingMetrics) bool { return m.shift == domain.ShiftOff }, "Well rested & ready"},
		{func(m coachingMetrics) bool { return m.night() && m.rec >= 70 }, "Strong on nights"},
		{func(m coachingMetrics) bool { return m.rec >= 75 && m.body >= 70 }, "Well recovered & aligned"},
		{always, "Stable & building momentum"},
	}
)

// ClassifyCoachingState turns a biometric snapshot into a green, amber or red
// state. Two or more red flags make red; one red flag or two amber flags make
// amber. The summary lists the defaulted inputs and the outcome, one per line.
func ClassifyCoachingState(snap domain.BiometricSnapshot) (domain.CoachingState, error) {
	m, err := coachingMetricsFrom(snap)
	if err != nil {
		return domain.CoachingState{}, err
	}

	status := domain.StatusGreen
	labels := greenLabels
	switch {
	case m.redFlags() >= 2:
		status, labels = domain.StatusRed, redLabels
	case m.redFlags() == 1, m.amberFlags() >= 2:
		status, labels = domain.StatusAmber, amberLabels
	}

	var label string
	for _, r := range labels {
		if r.when(m) {
			label = r.label
			break
		}
	}

	return domain.CoachingState{
		Status:  status,
		Label:   label,
		Summary: coachingSummary(m, status, label),
	}, nil
}

func coachingMetricsFrom(snap domain.BiometricSnapshot) (coachingMetrics, error) {
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"body_clock_score", snap.BodyClockScore},
		{"recovery_score", snap.RecoveryScore},
		{"sleep_hours_last_24h", snap.SleepHoursLast24h},
	} {
		if err := checkFinitePtr(f.name, f.v); err != nil {
			return coachingMetrics{}, err
		}
	}

	m := coachingMetrics{
		sleep: floatOr(snap.SleepHoursLast24h, DefaultSleepHours),
		body:  floatOr(snap.BodyClockScore, DefaultBodyClockScore),
		rec:   floatOr(snap.RecoveryScore, DefaultRecoveryScore),
		mood:  intOr(snap.MoodScore, DefaultMoodScore),
		focus: intOr(snap.FocusScore, DefaultFocusScore),
		shift: DefaultShift,
	}
	if snap.Shift != nil {
		if err := checkShift("shift", *snap.Shift); err != nil {
			return coachingMetrics{}, err
		}
		m.shift = *snap.Shift
	}

	m.veryLowSleep, m.lowSleep = m.sleep < 5, m.sleep < 6.5
	m.lowRecovery, m.moderateRecovery = m.rec < 40, m.rec < 60
	m.poorBodyClock, m.moderateBodyClock = m.body < 45, m.body < 60
	m.lowMood, m.moderateMood = m.mood <= 2, m.mood <= 3
	m.lowFocus, m.moderateFocus = m.focus <= 2, m.focus <= 3
	return m, nil
}

func coachingSummary(m coachingMetrics, status domain.CoachingStatus, label string) string {
	return strings.Join([]string{
		"Shift: " + string(m.shift),
		fmt.Sprintf("Sleep last 24h: %.1fh", m.sleep),
		"Body Clock Score: " + strconv.FormatFloat(m.body, 'f', -1, 64),
		"Recovery Score: " + strconv.FormatFloat(m.rec, 'f', -1, 64),
		fmt.Sprintf("Mood: %d/5", m.mood),
		fmt.Sprintf("Focus: %d/5", m.focus),
		fmt.Sprintf("Overall state: %s - %s", strings.ToUpper(string(status)), label),
	}, "\n")
}

func count(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

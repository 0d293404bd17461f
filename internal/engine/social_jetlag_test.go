package engine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/blaisecz/shift-coach/internal/domain"
)

func sleepFor(start time.Time, hours float64) SleepPeriod {
	return SleepPeriod{Start: start, End: start.Add(time.Duration(hours * float64(time.Hour)))}
}

func TestCalculateSocialJetlag(t *testing.T) {
	var nights []SleepPeriod
	for d := 9; d <= 15; d++ {
		nights = append(nights, sleepFor(at(2024, 1, d, 23, 0), 8)) // midpoint 03:00
	}

	tests := []struct {
		name   string
		sleeps []SleepPeriod
		now    time.Time
		want   domain.SocialJetlagMetrics
	}{
		{
			name:   "day sleep after a run of nights",
			sleeps: append(append([]SleepPeriod(nil), nights...), sleepFor(at(2024, 1, 16, 7, 30), 4)),
			now:    at(2024, 1, 16, 12, 0),
			want: domain.SocialJetlagMetrics{
				CurrentMisalignmentHours:       6.5,
				WeeklyAverageMisalignmentHours: 0.9,
				BaselineMidpointClock:          f64(3),
				CurrentMidpointClock:           f64(9.5),
				Category:                       domain.LagHigh,
				Explanation:                    "Your body clock is heavily shifted (~6.5h) from your usual pattern after recent day/night rotations.",
			},
		},
		{
			name:   "no sleep yet today uses the latest day",
			sleeps: nights,
			now:    at(2024, 1, 16, 12, 0),
			want: domain.SocialJetlagMetrics{
				BaselineMidpointClock: f64(3),
				CurrentMidpointClock:  f64(3),
				Category:              domain.LagLow,
				Explanation:           "Your sleep timing has stayed close to your usual rhythm this week.",
			},
		},
		{
			name: "baseline either side of midnight",
			sleeps: []SleepPeriod{
				sleepFor(at(2024, 1, 12, 19, 30), 8), // 23:30
				sleepFor(at(2024, 1, 13, 19, 45), 8), // 23:45
				sleepFor(at(2024, 1, 14, 20, 15), 8), // 00:15
				sleepFor(at(2024, 1, 15, 20, 30), 8), // 00:30
				sleepFor(at(2024, 1, 16, 21, 0), 8),  // 01:00, today
			},
			now: at(2024, 1, 17, 6, 0),
			want: domain.SocialJetlagMetrics{
				CurrentMisalignmentHours:       1,
				WeeklyAverageMisalignmentHours: 0.5,
				BaselineMidpointClock:          f64(0),
				CurrentMidpointClock:           f64(1),
				Category:                       domain.LagLow,
				Explanation:                    "Your sleep timing has stayed close to your usual rhythm this week.",
			},
		},
		{
			name: "split sleep counts as one day",
			sleeps: []SleepPeriod{
				sleepFor(at(2024, 1, 13, 23, 0), 8),
				sleepFor(at(2024, 1, 14, 23, 0), 8),
				sleepFor(at(2024, 1, 16, 1, 0), 3), // belongs to the 15th
				sleepFor(at(2024, 1, 16, 5, 0), 4),
				sleepFor(at(2024, 1, 16, 14, 0), 2),
			},
			now: at(2024, 1, 16, 18, 0),
			want: domain.SocialJetlagMetrics{
				CurrentMisalignmentHours:       12,
				WeeklyAverageMisalignmentHours: 3.5, // the 15th's midpoint is 05:00
				BaselineMidpointClock:          f64(3),
				CurrentMidpointClock:           f64(15),
				Category:                       domain.LagHigh,
				Explanation:                    "Your body clock is heavily shifted (~12.0h) from your usual pattern after recent day/night rotations.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSocialJetlag(tt.sleeps, tt.now)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CalculateSocialJetlag() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCalculateSocialJetlag_NotEnoughHistory(t *testing.T) {
	now := at(2024, 1, 16, 12, 0)
	nap := sleepFor(at(2024, 1, 15, 14, 0), 1)
	nap.Nap = true

	tests := []struct {
		name   string
		sleeps []SleepPeriod
		want   string
	}{
		{"nothing logged", nil, "No sleep data available. Log at least 2 days of main sleep to calculate social jetlag."},
		{"naps only", []SleepPeriod{nap}, "No main sleep sessions found. Log main sleep (not just naps) to calculate social jetlag."},
		{"one main sleep", []SleepPeriod{nap, sleepFor(at(2024, 1, 15, 23, 0), 8)}, "Not enough main sleep data. Log at least 2 days of main sleep to calculate social jetlag."},
		{
			"one night in two pieces",
			[]SleepPeriod{sleepFor(at(2024, 1, 14, 23, 0), 3), sleepFor(at(2024, 1, 15, 3, 0), 4)},
			"Not enough sleep data (need at least 2 days with main sleep).",
		},
		{
			"only today before the baseline",
			[]SleepPeriod{sleepFor(at(2024, 1, 14, 23, 0), 8), sleepFor(at(2024, 1, 16, 8, 0), 3)},
			"Not enough baseline data.",
		},
		{
			"older than two weeks",
			[]SleepPeriod{sleepFor(at(2023, 12, 20, 23, 0), 8), sleepFor(at(2023, 12, 21, 23, 0), 8)},
			"No sleep data available. Log at least 2 days of main sleep to calculate social jetlag.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateSocialJetlag(tt.sleeps, now)
			assert.Equal(t, domain.SocialJetlagMetrics{Category: domain.LagLow, Explanation: tt.want}, got)
		})
	}
}

func TestCoachDay(t *testing.T) {
	assert.Equal(t, "2024-01-15", coachDay(at(2024, 1, 16, 6, 59)))
	assert.Equal(t, "2024-01-16", coachDay(at(2024, 1, 16, 7, 0)))
	assert.Equal(t, "2024-01-16", coachDay(at(2024, 1, 16, 23, 30)))
}

package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	insightDays           = 7
	defaultInsightQuality = 3
)

// RatedSleep is a sleep period with its 1-5 quality rating (0 when unrated).
type RatedSleep struct {
	SleepPeriod
	Quality int
}

// SleepInsightInput is the week of history BuildSleepInsight summarises.
// Now carries the user's location.
type SleepInsightInput struct {
	Now            time.Time
	SleepGoalHours float64
	Sleeps         []RatedSleep
	NightShifts    int
}

// BuildSleepInsight summarises the last seven local days of sleep: average
// duration, debt against the goal, bedtime regularity, how well day sleep
// follows night shifts, and quality. Each weak area adds a bullet and, where
// there is a concrete action, a score hint.
func BuildSleepInsight(in SleepInsightInput) domain.SleepInsight {
	goal := in.SleepGoalHours
	if goal <= 0 {
		goal = domain.DefaultSleepGoalHours
	}
	loc := in.Now.Location()
	from := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day()-(insightDays-1), 0, 0, 0, 0, loc)
	to := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day()+1, 0, 0, 0, 0, loc)

	var totalH, mainH float64
	var qualitySum, rated, daySleeps int
	var bedtimes []float64
	for _, s := range in.Sleeps {
		if s.Start.Before(from) || !s.Start.Before(to) {
			continue
		}
		h := s.Hours()
		totalH += h
		q := s.Quality
		if q <= 0 {
			q = defaultInsightQuality
		}
		qualitySum += q
		rated++
		if s.Nap {
			continue
		}
		mainH += h
		start := s.Start.In(loc)
		bedtimes = append(bedtimes, float64(start.Hour()*60+start.Minute()))
		if endH := s.End.In(loc).Hour(); endH >= 9 && endH <= 18 {
			daySleeps++
		}
	}

	avgAll := tenth(totalH / insightDays)
	avgMain := tenth(mainH / insightDays)
	avgQuality := defaultInsightQuality
	if rated > 0 {
		avgQuality = int(round(float64(qualitySum) / float64(rated)))
	}
	debt := tenth(goal*insightDays - totalH)

	regularity := -1.0
	if len(bedtimes) >= 3 {
		regularity = tenth(circularStdDevMinutes(bedtimes, circularMeanMinutes(bedtimes)) / 60)
	}
	daySleepPct := 0
	if len(bedtimes) > 0 {
		daySleepPct = int(round(float64(daySleeps) / float64(len(bedtimes)) * 100))
	}

	insight := domain.SleepInsight{Bullets: []string{}, ScoreHints: []string{}}
	add := func(bullet, hint string) {
		insight.Bullets = append(insight.Bullets, bullet)
		if hint != "" {
			insight.ScoreHints = append(insight.ScoreHints, hint)
		}
	}

	if debt > 0.5 {
		add(fmt.Sprintf("You're running a sleep debt of ~%gh over the last 7 days.", debt),
			"Plan one earlier night or a 20-30 min nap to reduce debt.")
	} else {
		add("Sleep debt is minimal this week. Great job staying topped up.", "")
	}

	if regularity >= 0 {
		if regularity <= 1 {
			add(fmt.Sprintf("Bedtime is fairly regular (±%gh).", regularity), "")
		} else {
			add(fmt.Sprintf("Bedtime varies by ~±%gh. Anchoring a window can improve rhythm.", regularity), "")
		}
	}

	if in.NightShifts >= 2 {
		if daySleepPct >= 40 {
			add(fmt.Sprintf("You've adapted some day-sleeps after night shifts (%d%% of main sleeps).", daySleepPct),
				"Keep post-night main sleep consistent; avoid bright light pre-bed.")
		} else {
			add(fmt.Sprintf("Night shifts detected but few day-sleeps after them (%d%%).", daySleepPct),
				"After night shifts, aim for a consolidated daytime sleep (6-8h).")
		}
	}

	if avgQuality <= 3 {
		add(fmt.Sprintf("Average sleep quality %d/5. Try a 20-30 min wind-down and cooler room.", avgQuality),
			"Reduce late caffeine and screen glare 2h before bed to lift recovery.")
	}

	insight.Summary = fmt.Sprintf("Avg sleep: %g h/day (main %g h). Goal %g h. Quality ~%d/5.", avgAll, avgMain, goal, avgQuality)
	switch {
	case debt > 2:
		insight.Title = "Let's chip away at your sleep debt"
	case regularity > 1.5:
		insight.Title = "Anchor your sleep window"
	default:
		insight.Title = "Solid base, keep it steady"
	}
	return insight
}

func tenth(v float64) float64 {
	return math.Round(v*10) / 10
}

package engine

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	jetlagWindowDays   = 14
	jetlagLookbackDays = 10
	jetlagBaselineDays = 7
	jetlagWeekDays     = 7
	// coachDayStartHour is when a sleep day rolls over, so a sleep that
	// starts after midnight belongs to the evening before.
	coachDayStartHour = 7
)

// CalculateSocialJetlag measures how far the latest sleep midpoint sits from
// the user's usual one. Main sleeps that ended in the last fourteen days are
// grouped by start into days running 07:00-07:00 on the wall clock of now,
// and a day's midpoint is halfway between its first start and last end.
//
// The baseline is the median midpoint of up to seven days taken from the ten
// days before today. Today's midpoint, or the latest day's when today has no
// sleep yet, is compared with it the short way around the clock; the weekly
// figure averages the same gap over the last seven days with sleep. Up to
// 1.5h is low and up to 3.5h moderate. Without enough history the result is
// low with zero hours and Explanation says what is missing.
func CalculateSocialJetlag(sleeps []SleepPeriod, now time.Time) domain.SocialJetlagMetrics {
	loc := now.Location()
	since := now.AddDate(0, 0, -jetlagWindowDays)

	type span struct{ start, end time.Time }
	days := make(map[string]*span)
	var logged, mains int
	for _, p := range sleeps {
		if !p.End.After(p.Start) || p.End.Before(since) {
			continue
		}
		logged++
		if p.Nap {
			continue
		}
		mains++
		key := coachDay(p.Start.In(loc))
		d, ok := days[key]
		if !ok {
			days[key] = &span{start: p.Start, end: p.End}
			continue
		}
		if p.Start.Before(d.start) {
			d.start = p.Start
		}
		if p.End.After(d.end) {
			d.end = p.End
		}
	}
	switch {
	case logged == 0:
		return noJetlag("No sleep data available. Log at least 2 days of main sleep to calculate social jetlag.")
	case mains == 0:
		return noJetlag("No main sleep sessions found. Log main sleep (not just naps) to calculate social jetlag.")
	case mains < 2:
		return noJetlag("Not enough main sleep data. Log at least 2 days of main sleep to calculate social jetlag.")
	case len(days) < 2:
		return noJetlag("Not enough sleep data (need at least 2 days with main sleep).")
	}

	keys := make([]string, 0, len(days))
	midpoints := make(map[string]float64, len(days))
	for k, d := range days {
		keys = append(keys, k)
		mid := d.start.Add(d.end.Sub(d.start) / 2).In(loc)
		midpoints[k] = float64(mid.Hour()*60+mid.Minute()) + float64(mid.Second())/60
	}
	sort.Strings(keys)

	todayKey := coachDay(now)
	var before []float64
	for _, k := range keys {
		if k < todayKey {
			before = append(before, midpoints[k])
		}
	}
	before = before[max(0, len(before)-jetlagLookbackDays):]
	before = before[:min(len(before), jetlagBaselineDays)]
	if len(before) < 2 {
		return noJetlag("Not enough baseline data.")
	}
	baseline := clockMedianMinutes(before)

	current, ok := midpoints[todayKey]
	if !ok {
		current = midpoints[keys[len(keys)-1]]
	}
	gap := math.Abs(clockOffsetMinutes(current, baseline)) / 60

	week := keys[max(0, len(keys)-jetlagWeekDays):]
	var weekly float64
	for _, k := range week {
		weekly += math.Abs(clockOffsetMinutes(midpoints[k], baseline)) / 60
	}
	weekly /= float64(len(week))

	out := domain.SocialJetlagMetrics{
		CurrentMisalignmentHours:       tenth(gap),
		WeeklyAverageMisalignmentHours: tenth(weekly),
		BaselineMidpointClock:          clockHours(baseline),
		CurrentMidpointClock:           clockHours(current),
	}
	switch {
	case gap <= 1.5:
		out.Category = domain.LagLow
		out.Explanation = "Your sleep timing has stayed close to your usual rhythm this week."
	case gap <= 3.5:
		out.Category = domain.LagModerate
		out.Explanation = fmt.Sprintf("Your sleep midpoint has shifted by around %.1f hours due to recent shift changes.", gap)
	default:
		out.Category = domain.LagHigh
		out.Explanation = fmt.Sprintf("Your body clock is heavily shifted (~%.1fh) from your usual pattern after recent day/night rotations.", gap)
	}
	return out
}

func noJetlag(reason string) domain.SocialJetlagMetrics {
	return domain.SocialJetlagMetrics{Category: domain.LagLow, Explanation: reason}
}

// coachDay is the date of the 07:00-07:00 day containing t.
func coachDay(t time.Time) string {
	if t.Hour() < coachDayStartHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(domain.DateLayout)
}

// clockMedianMinutes is the median of clock times unwrapped around their
// circular mean, so times either side of midnight stay neighbours.
func clockMedianMinutes(ms []float64) float64 {
	mean := circularMeanMinutes(ms)
	unwrapped := make([]float64, len(ms))
	for i, m := range ms {
		unwrapped[i] = mean + clockOffsetMinutes(m, mean)
	}
	return clockMinutes(median(unwrapped))
}

// clockOffsetMinutes is the signed shortest gap from ref to m on the clock
// face, in (-720, 720].
func clockOffsetMinutes(m, ref float64) float64 {
	d := clockMinutes(m - ref)
	if d > minutesPerDay/2 {
		d -= minutesPerDay
	}
	return d
}

func clockHours(m float64) *float64 {
	h := tenth(m / 60)
	if h >= 24 {
		h = 0
	}
	return &h
}

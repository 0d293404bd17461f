package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	shiftLagDebtDays        = 7
	shiftLagOverlapDays     = 5
	shiftLagInstabilityDays = 14
	defaultSleepNeedHours   = 7.5
	minSleepNeedHours       = 7
	maxSleepNeedHours       = 9
	defaultShiftHours       = 8
	longShiftHours          = 12
	// Biological night runs 23:00-07:00 on the user's wall clock.
	bioNightStartMinutes = 23 * 60
	bioNightMinutes      = 8 * 60
)

// lagBand scores values at or above floor as base plus span spread over width.
type lagBand struct {
	floor, width, base, span float64
}

var (
	lagDebtBands     = []lagBand{{14, 0, 40, 0}, {7, 7, 20, 15}, {3, 4, 10, 10}}
	overlapBands     = []lagBand{{8, 0, 40, 0}, {6, 2, 35, 5}, {4, 2, 25, 10}, {2, 2, 15, 10}}
	instabilityBands = []lagBand{{8, 0, 20, 0}, {6, 2, 15, 5}, {4, 2, 10, 5}, {2, 2, 5, 5}}
)

func bandScore(v float64, bands []lagBand) float64 {
	for _, b := range bands {
		if v < b.floor {
			continue
		}
		if b.width == 0 {
			return b.base
		}
		return b.base + (v-b.floor)/b.width*b.span
	}
	return 0
}

// ShiftSpan is a rostered shift as the shift lag score sees it.
type ShiftSpan struct {
	Date  string // YYYY-MM-DD in the user's location
	Label string
	Type  domain.ShiftType
	Start *time.Time
	End   *time.Time
}

func (s ShiftSpan) working() bool {
	return s.Type != domain.ShiftOff
}

// minutes is the shift length, estimated from the label when there is no end.
func (s ShiftSpan) minutes() float64 {
	if s.End != nil {
		return clamp(s.End.Sub(*s.Start).Minutes(), 0, minutesPerDay)
	}
	if strings.Contains(s.Label, "12") {
		return longShiftHours * 60
	}
	return defaultShiftHours * 60
}

// ShiftLagInput is the recent history CalculateShiftLag scores. Now carries
// the user's location and Sleeps are credited to local dates.
type ShiftLagInput struct {
	Now    time.Time
	Sleeps []DailySleep
	Shifts []ShiftSpan
}

// CalculateShiftLag scores the jet lag the current shift pattern causes,
// 0-100 where higher is worse. It adds three parts:
//
//   - sleep debt (0-40): the shortfall against the typical sleep need over
//     the seven local days ending today. The need is the median daily sleep
//     on days without a working shift, held to 7-9h, or 7.5h when no such day
//     has sleep. No debt is counted when there is no sleep at all.
//   - misalignment (0-40): the average time each working shift of the last
//     five days spends inside the 23:00-07:00 biological night. Shifts without
//     a start are skipped; a missing end means 8h, or 12h when the label
//     mentions 12.
//   - instability (0-20): the spread of working shift start times over the
//     last fourteen days, measured around the clock face. It needs two starts.
//
// A total of 20 or less is low and 50 or less moderate.
func CalculateShiftLag(in ShiftLagInput) (domain.ShiftLagMetrics, error) {
	sleepByDate := make(map[string]float64, len(in.Sleeps))
	for _, d := range in.Sleeps {
		if err := checkFinite("minutes", d.Minutes); err != nil {
			return domain.ShiftLagMetrics{}, err
		}
		sleepByDate[d.Date] += math.Max(0, d.Minutes) / 60
	}

	loc := in.Now.Location()
	today := time.Date(in.Now.Year(), in.Now.Month(), in.Now.Day(), 0, 0, 0, 0, loc)
	daysAgo := func(n int) string { return today.AddDate(0, 0, -n).Format(domain.DateLayout) }

	need := typicalSleepNeed(sleepByDate, in.Shifts)
	var debt float64
	if len(sleepByDate) > 0 {
		for i := 0; i < shiftLagDebtDays; i++ {
			debt += math.Max(0, need-sleepByDate[daysAgo(i)])
		}
	}

	todayKey := daysAgo(0)
	overlapFrom := daysAgo(shiftLagOverlapDays)
	instabilityFrom := daysAgo(shiftLagInstabilityDays - 1)
	var overlaps, starts []float64
	for _, s := range in.Shifts {
		if !s.working() || s.Start == nil || s.Date > todayKey {
			continue
		}
		start := s.Start.In(loc)
		startMin := float64(start.Hour()*60 + start.Minute())
		if s.Date >= instabilityFrom {
			starts = append(starts, startMin)
		}
		if s.Date >= overlapFrom {
			overlaps = append(overlaps, nightOverlapHours(startMin, s.minutes()))
		}
	}

	var avgOverlap float64
	for _, o := range overlaps {
		avgOverlap += o
	}
	if len(overlaps) > 0 {
		avgOverlap /= float64(len(overlaps))
	}
	var variability float64
	if len(starts) >= 2 {
		variability = circularStdDevMinutes(starts, circularMeanMinutes(starts)) / 60
	}

	debtScore := int(round(bandScore(debt, lagDebtBands)))
	misalignment := int(round(bandScore(avgOverlap, overlapBands)))
	if misalignment == 0 && avgOverlap > 0 {
		misalignment = 5
	}
	instability := int(round(bandScore(variability, instabilityBands)))

	out := domain.ShiftLagMetrics{
		Score:                      int(clamp(float64(debtScore+misalignment+instability), 0, 100)),
		SleepDebtScore:             debtScore,
		MisalignmentScore:          misalignment,
		InstabilityScore:           instability,
		SleepDebtHours:             tenth(debt),
		AvgNightOverlapHours:       tenth(avgOverlap),
		ShiftStartVariabilityHours: tenth(variability),
	}
	switch {
	case out.Score <= 20:
		out.Category = domain.LagLow
		out.Explanation = "Your body clock is coping well with your current shift pattern."
	case out.Score <= 50:
		out.Category = domain.LagModerate
		out.Explanation = fmt.Sprintf("You're carrying some shift lag (%d/100) from recent sleep debt and shift timing changes.", out.Score)
	default:
		out.Category = domain.LagHigh
		out.Explanation = fmt.Sprintf("Your body clock is significantly out of sync (%d/100) due to night shifts during biological night, sleep debt, and schedule changes.", out.Score)
	}
	out.Drivers = shiftLagDrivers(out)
	out.Recommendations = shiftLagRecommendations(out)
	return out, nil
}

// typicalSleepNeed is the median sleep on dates with no working shift.
func typicalSleepNeed(sleepByDate map[string]float64, shifts []ShiftSpan) float64 {
	workDays := make(map[string]struct{}, len(shifts))
	for _, s := range shifts {
		if s.working() {
			workDays[s.Date] = struct{}{}
		}
	}
	var off []float64
	for date, h := range sleepByDate {
		if _, ok := workDays[date]; !ok {
			off = append(off, h)
		}
	}
	if len(off) == 0 {
		return defaultSleepNeedHours
	}
	return clamp(median(off), minSleepNeedHours, maxSleepNeedHours)
}

// nightOverlapHours is how much of a shift starting startMin minutes after
// midnight and lasting dur minutes falls inside a biological night.
func nightOverlapHours(startMin, dur float64) float64 {
	end := startMin + dur
	var overlap float64
	for from := float64(bioNightStartMinutes - minutesPerDay); from < end; from += minutesPerDay {
		overlap += math.Max(0, math.Min(end, from+bioNightMinutes)-math.Max(startMin, from))
	}
	return overlap / 60
}

func shiftLagDrivers(m domain.ShiftLagMetrics) domain.ShiftLagDrivers {
	d := domain.ShiftLagDrivers{
		SleepDebt:    "Sleep debt: On track",
		Misalignment: "Circadian alignment: Good",
		Instability:  "Schedule stability: Consistent",
	}
	if m.SleepDebtHours > 0 {
		d.SleepDebt = fmt.Sprintf("Sleep debt: %.1fh this week", m.SleepDebtHours)
	}
	if m.AvgNightOverlapHours > 0 {
		d.Misalignment = fmt.Sprintf("Night work during biological night: %.1fh per shift", m.AvgNightOverlapHours)
	}
	if m.ShiftStartVariabilityHours > 0 {
		d.Instability = fmt.Sprintf("Schedule changes: %.1fh variation in start times", m.ShiftStartVariabilityHours)
	}
	return d
}

func shiftLagRecommendations(m domain.ShiftLagMetrics) []string {
	switch m.Category {
	case domain.LagHigh:
		recs := []string{"Prioritise a solid sleep block today (aim for 7-9 hours)"}
		if m.AvgNightOverlapHours > 4 {
			recs = append(recs, "Use blackout curtains and avoid bright light 1-2h before daytime sleep")
		}
		if m.SleepDebtHours > 7 {
			recs = append(recs, "Focus on catching up on sleep debt with longer sleep blocks when possible")
		}
		return recs
	case domain.LagModerate:
		recs := []string{"Try to keep wake-up time consistent for the next 3 days"}
		if m.ShiftStartVariabilityHours > 4 {
			recs = append(recs, "Minimise shift pattern changes where possible")
		}
		return recs
	default:
		return []string{"Keep maintaining your current sleep and shift routine"}
	}
}

func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

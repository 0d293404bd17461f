package engine

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	timingWindowDays = 14
	debtWindowDays   = 7
	// maxTimingSamples caps how many recent main sleeps feed the averages.
	maxTimingSamples = 14
)

// SleepPeriod is a sleep interval as the timing summary sees it.
type SleepPeriod struct {
	Start time.Time
	End   time.Time
	Nap   bool
}

// Hours is the elapsed duration.
func (p SleepPeriod) Hours() float64 {
	return p.End.Sub(p.Start).Hours()
}

// SleepTimingSummary is the recent sleep history reduced to circadian inputs.
type SleepTimingSummary struct {
	Latest                 SleepPeriod
	AvgBedtimeMinutes      float64
	AvgWakeMinutes         float64
	BedtimeVarianceMinutes float64
	SleepDebtHours         float64
	MainSleeps             int
}

// CircadianInput pairs the summary with a shift type.
func (s SleepTimingSummary) CircadianInput(shift domain.ShiftType) CircadianInput {
	return CircadianInput{
		SleepStart:             s.Latest.Start,
		SleepEnd:               s.Latest.End,
		AvgBedtimeMinutes:      s.AvgBedtimeMinutes,
		AvgWakeMinutes:         s.AvgWakeMinutes,
		BedtimeVarianceMinutes: s.BedtimeVarianceMinutes,
		SleepDurationHours:     s.Latest.Hours(),
		SleepDebtHours:         s.SleepDebtHours,
		Shift:                  shift,
	}
}

// SummarizeSleepTiming reduces up to two weeks of sleep to the averages the
// circadian score needs. Bedtimes and wake times are read on the wall clock of
// loc and averaged around the clock face; the variance is the standard
// deviation of bedtimes from that average. Sleep debt compares main sleep plus
// naps over the last seven days with goalHours per night and never goes
// negative. It returns domain.ErrNoSleepData when no main sleep falls inside
// the window.
func SummarizeSleepTiming(periods []SleepPeriod, now time.Time, loc *time.Location, goalHours float64) (SleepTimingSummary, error) {
	if loc == nil {
		loc = time.UTC
	}
	if goalHours <= 0 {
		goalHours = domain.DefaultSleepGoalHours
	}

	windowStart := now.Add(-(timingWindowDays - 1) * 24 * time.Hour)
	debtStart := now.Add(-(debtWindowDays - 1) * 24 * time.Hour)

	var main []SleepPeriod
	var total float64
	for _, p := range periods {
		if p.Start.Before(windowStart) || !p.End.After(p.Start) {
			continue
		}
		if !p.Nap {
			main = append(main, p)
		}
		if !p.Start.Before(debtStart) {
			total += p.Hours()
		}
	}
	if len(main) == 0 {
		return SleepTimingSummary{}, domain.ErrNoSleepData
	}

	sort.Slice(main, func(i, j int) bool { return main[i].Start.After(main[j].Start) })
	if len(main) > maxTimingSamples {
		main = main[:maxTimingSamples]
	}

	bedtimes := make([]float64, len(main))
	wakes := make([]float64, len(main))
	for i, p := range main {
		start, end := p.Start.In(loc), p.End.In(loc)
		bedtimes[i] = float64(start.Hour()*60 + start.Minute())
		wakes[i] = float64(end.Hour()*60 + end.Minute())
	}
	avgBed := clockMinutes(round(circularMeanMinutes(bedtimes)))
	avgWake := clockMinutes(round(circularMeanMinutes(wakes)))

	return SleepTimingSummary{
		Latest:                 main[0],
		AvgBedtimeMinutes:      avgBed,
		AvgWakeMinutes:         avgWake,
		BedtimeVarianceMinutes: round(circularStdDevMinutes(bedtimes, avgBed)),
		SleepDebtHours:         math.Max(0, goalHours*debtWindowDays-total),
		MainSleeps:             len(main),
	}, nil
}

// circularMeanMinutes averages clock times on the 24h circle so 23:30 and
// 00:30 average to midnight. Times spread evenly around the clock have no
// circular mean; the arithmetic mean is used then.
func circularMeanMinutes(ms []float64) float64 {
	var sin, cos, sum float64
	for _, m := range ms {
		a := m / minutesPerDay * 2 * math.Pi
		sin += math.Sin(a)
		cos += math.Cos(a)
		sum += m
	}
	if math.Hypot(sin, cos) < 1e-9 {
		return sum / float64(len(ms))
	}
	mean := math.Atan2(sin, cos) / (2 * math.Pi) * minutesPerDay
	if mean < 0 {
		mean += minutesPerDay
	}
	return mean
}

// circularStdDevMinutes is the standard deviation of clock times from mean,
// measuring each gap the short way around the clock face.
func circularStdDevMinutes(ms []float64, mean float64) float64 {
	var sq float64
	for _, m := range ms {
		d := math.Abs(clockMinutes(m) - clockMinutes(mean))
		d = math.Min(d, minutesPerDay-d)
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(ms)))
}

func clockMinutes(m float64) float64 {
	return math.Mod(math.Mod(m, minutesPerDay)+minutesPerDay, minutesPerDay)
}

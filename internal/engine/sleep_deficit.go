package engine

import (
	"math"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

const (
	deficitWindowDays = 7
	minWeeklyDeficit  = -8.0
	maxWeeklyDeficit  = 20.0
)

// deficitBands map a clamped weekly deficit to its category (value < limit),
// surplus being the only band whose bound is inclusive.
var deficitBands = []struct {
	limit    float64
	category domain.SleepDeficitCategory
}{
	{3, domain.DeficitLow},
	{8, domain.DeficitMedium},
}

// DailySleep is the sleep credited to one local calendar day.
type DailySleep struct {
	Date    string // YYYY-MM-DD
	Minutes float64
}

// CalculateSleepDeficit builds the rolling seven-day deficit.
//
// The window ends on today's calendar date in today's location and includes
// it, so the result moves at local midnight. Daily is ordered most recent
// first. Entries outside the window are ignored and repeated dates are
// summed. When no day in the window has any sleep the weekly deficit is 0
// rather than the full requirement. A non-positive requiredDaily means the
// 7.5 hour default.
func CalculateSleepDeficit(days []DailySleep, requiredDaily float64, today time.Time) (domain.SleepDeficitResult, error) {
	if err := checkFinite("required_daily", requiredDaily); err != nil {
		return domain.SleepDeficitResult{}, err
	}
	if requiredDaily <= 0 {
		requiredDaily = domain.DefaultSleepGoalHours
	}

	byDate := make(map[string]float64, len(days))
	for _, d := range days {
		if err := checkFinite("minutes", d.Minutes); err != nil {
			return domain.SleepDeficitResult{}, err
		}
		byDate[d.Date] += math.Max(0, d.Minutes)
	}

	result := domain.SleepDeficitResult{
		RequiredDaily: requiredDaily,
		Daily:         make([]domain.SleepDeficitDay, 0, deficitWindowDays),
	}

	var weekly float64
	hasSleep := false
	for i := 0; i < deficitWindowDays; i++ {
		// noon keeps the date stable across DST transitions
		day := time.Date(today.Year(), today.Month(), today.Day()-i, 12, 0, 0, 0, today.Location())
		date := day.Format(domain.DateLayout)
		actual := byDate[date] / 60
		if actual > 0 {
			hasSleep = true
		}
		deficit := requiredDaily - actual
		weekly += deficit
		result.Daily = append(result.Daily, domain.SleepDeficitDay{
			Date:     date,
			Label:    day.Weekday().String()[:3],
			Required: requiredDaily,
			Actual:   actual,
			Deficit:  deficit,
		})
	}

	if !hasSleep {
		weekly = 0
	}
	result.WeeklyDeficit = clamp(weekly, minWeeklyDeficit, maxWeeklyDeficit)
	result.Category = deficitCategory(result.WeeklyDeficit)
	return result, nil
}

func deficitCategory(weekly float64) domain.SleepDeficitCategory {
	if weekly <= -1 {
		return domain.DeficitSurplus
	}
	for _, b := range deficitBands {
		if weekly < b.limit {
			return b.category
		}
	}
	return domain.DeficitHigh
}

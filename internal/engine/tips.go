package engine

import (
	"fmt"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// Tip scores. Higher wins; ties go to the earlier candidate.
const (
	scoreSleepInsight = 99
	scoreCaffeineLate = 95
	scoreRhythmLow    = 88
	scoreRecoveryLow  = 85
	scoreHydrationLow = 80
	scoreBingeRisk    = 75
	scoreDefaultNudge = 50
)

const (
	hydrationThreshold = 0.5
	tipScoreThreshold  = 60
)

// TipContext is everything the tip rules read. Now is the evaluation clock.
type TipContext struct {
	Now            time.Time
	CaffeineCutoff time.Time
	CaffeineMg     int
	WaterMl        int
	WaterGoalMl    int
	RecoveryScore  int
	RhythmScore    int
	BingeRisk      domain.BingeRisk
}

type tipRule struct {
	when  func(TipContext) bool
	build func(TipContext) domain.Tip
}

// tipRules run in this order; the order is the tie-break.
var tipRules = []tipRule{
	{
		when: func(c TipContext) bool { return c.CaffeineMg > 0 && c.Now.After(c.CaffeineCutoff) },
		build: func(c TipContext) domain.Tip {
			return domain.Tip{
				Score: scoreCaffeineLate,
				Title: "Caffeine cut-off missed",
				Body: fmt.Sprintf("Try to avoid caffeine after %s. Skipping one late coffee can lift your Shift Rhythm by 10-20 points tomorrow.",
					c.CaffeineCutoff.Format("15:04")),
			}
		},
	},
	{
		when: func(c TipContext) bool { return float64(c.WaterMl)/float64(c.waterGoal()) < hydrationThreshold },
		build: func(c TipContext) domain.Tip {
			return domain.Tip{
				Score: scoreHydrationLow,
				Title: "Hydration lagging",
				Body: fmt.Sprintf("You've hit %.1fL so far. Aim for small sips every hour to reach %.1fL.",
					float64(c.WaterMl)/1000, float64(c.waterGoal())/1000),
			}
		},
	},
	{
		when: func(c TipContext) bool { return c.RecoveryScore < tipScoreThreshold },
		build: func(c TipContext) domain.Tip {
			return domain.Tip{
				Score: scoreRecoveryLow,
				Title: "Prioritise recovery",
				Body: fmt.Sprintf("Recovery is %d. A 20-30 min wind-down (dim lights, no phone) before bed improves sleep depth and tomorrow's energy.",
					c.RecoveryScore),
			}
		},
	},
	{
		when: func(c TipContext) bool { return c.RhythmScore < tipScoreThreshold },
		build: func(TipContext) domain.Tip {
			return domain.Tip{
				Score: scoreRhythmLow,
				Title: "Shift Rhythm boost",
				Body:  "Anchor your main sleep window and avoid bright light 2h before sleep. Blue-light glasses on shift can also help.",
			}
		},
	},
	{
		when: func(c TipContext) bool { return c.BingeRisk != "" && c.BingeRisk != domain.BingeRiskLow },
		build: func(TipContext) domain.Tip {
			return domain.Tip{
				Score: scoreBingeRisk,
				Title: "Stop the binge trigger",
				Body:  "Carry a high-protein snack (20-30g) for your hungriest window. It blunts cravings without blowing calories.",
			}
		},
	},
}

var defaultTip = domain.Tip{
	Score: scoreDefaultNudge,
	Title: "Nice work",
	Body:  "Keep doing what you're doing. Small daily wins compound into big changes across shifts.",
}

func (c TipContext) waterGoal() int {
	if c.WaterGoalMl <= 0 {
		return domain.DefaultWaterGoalMl
	}
	return c.WaterGoalMl
}

// CandidateTips evaluates every rule in order and returns the matches, or the
// default nudge when none match.
func CandidateTips(c TipContext) []domain.Tip {
	var tips []domain.Tip
	for _, r := range tipRules {
		if r.when(c) {
			tips = append(tips, r.build(c))
		}
	}
	if len(tips) == 0 {
		tips = append(tips, defaultTip)
	}
	return tips
}

// SelectTip returns the highest scoring candidate. Among equal scores the one
// appended first wins. It reports false for an empty pool.
func SelectTip(candidates []domain.Tip) (domain.Tip, bool) {
	if len(candidates) == 0 {
		return domain.Tip{}, false
	}
	best := candidates[0]
	for _, t := range candidates[1:] {
		if t.Score > best.Score {
			best = t
		}
	}
	return best, true
}

// CoachTip runs the rules, appends any injected tips after them and picks the winner.
func CoachTip(c TipContext, injected ...domain.Tip) domain.Tip {
	tip, _ := SelectTip(append(CandidateTips(c), injected...))
	return tip
}

// SleepInsightTip turns the first score hint of an insight into a top priority tip.
func SleepInsightTip(insight *domain.SleepInsight) (domain.Tip, bool) {
	if insight == nil || len(insight.ScoreHints) == 0 {
		return domain.Tip{}, false
	}
	return domain.Tip{Score: scoreSleepInsight, Title: "Shift Rhythm tip", Body: insight.ScoreHints[0]}, true
}

const (
	fallbackRedMessage    = "Protect your main sleep window today and keep caffeine front-loaded to help your body clock reset."
	fallbackSteadyMessage = "Anchor your main sleep window and keep meals consistent with your shift to keep your rhythm steady."
)

// FallbackTip is the canned coaching message used when no generated text is available.
func FallbackTip(status domain.CoachingStatus) string {
	if status == domain.StatusRed {
		return fallbackRedMessage
	}
	return fallbackSteadyMessage
}

package engine

import (
	"fmt"
	"strings"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// QualityLabel is a verbal sleep quality rating.
type QualityLabel string

const (
	QualityExcellent QualityLabel = "Excellent"
	QualityGood      QualityLabel = "Good"
	QualityFair      QualityLabel = "Fair"
	QualityPoor      QualityLabel = "Poor"
)

var qualityLabelScores = map[QualityLabel]float64{
	QualityExcellent: 1.0,
	QualityGood:      0.85,
	QualityFair:      0.7,
	QualityPoor:      0.5,
}

const defaultQualityScore = 0.7

// Quality is a sleep quality normalised to [0, 1]. The zero value means
// unknown and scores as Fair.
type Quality struct {
	score float64
	set   bool
}

// RatingQuality converts a 1-5 rating. Ratings outside the scale are clamped.
func RatingQuality(rating int) Quality {
	return Quality{score: clamp(float64(rating)/5, 0, 1), set: true}
}

// LabelQuality converts a verbal rating, case-insensitively.
func LabelQuality(label string) (Quality, error) {
	for l, score := range qualityLabelScores {
		if strings.EqualFold(string(l), strings.TrimSpace(label)) {
			return Quality{score: score, set: true}, nil
		}
	}
	return Quality{}, &InputError{Field: "quality", Reason: fmt.Sprintf("unknown rating %q", label)}
}

// Score is the normalised quality.
func (q Quality) Score() float64 {
	if !q.set {
		return defaultQualityScore
	}
	return q.score
}

// StageInput describes a sleep whose architecture should be estimated.
type StageInput struct {
	DurationHours float64
	Quality       Quality
	// BedtimeHour is the local hour the sleep started, when known.
	BedtimeHour *int
	DaySleep    bool
}

type stageMix struct {
	deep, rem, light, awake int
}

// baselineStages is a healthy eight hour night.
var baselineStages = stageMix{deep: 18, rem: 22, light: 52, awake: 8}

var (
	optimalStages = stageMix{deep: 20, rem: 25, light: 48, awake: 7}
	longStages    = stageMix{deep: 15, rem: 20, light: 58, awake: 7}
)

// EstimateSleepStages allocates a sleep into deep, REM, light and awake
// percentages from its duration, quality, timing and whether it was taken in
// the day. The four values always sum to 100.
func EstimateSleepStages(in StageInput) (domain.SleepStagePercentages, error) {
	if err := checkFinite("duration_hours", in.DurationHours); err != nil {
		return domain.SleepStagePercentages{}, err
	}
	q := in.Quality.Score()
	s := baselineStages

	switch h := in.DurationHours; {
	case h < 6:
		s.deep = max(12, s.deep-2)
		s.rem = max(15, s.rem-5)
		s.light = min(60, s.light+5)
		s.awake = min(15, s.awake+5)
	case h >= 8 && h <= 9:
		s = optimalStages
	case h > 9:
		s = longStages
	}

	s.deep = int(round(float64(s.deep) * (0.5 + 0.5*q)))
	s.rem = int(round(float64(s.rem) * (0.6 + 0.4*q)))
	s.awake = int(round(float64(s.awake) * (2 - q)))
	if q < 0.7 {
		s.light = min(65, s.light+int(round((0.7-q)*10)))
	} else {
		s.light = max(45, s.light-int(round((q-0.7)*8)))
	}

	if in.DaySleep {
		s.deep = max(10, s.deep-5)
		s.rem = max(15, s.rem-3)
		s.light = min(65, s.light+8)
		s.awake = min(12, s.awake+2)
	}

	if in.BedtimeHour != nil {
		switch h := ((*in.BedtimeHour % 24) + 24) % 24; {
		case h >= 2 && h < 6:
			s.deep = max(12, s.deep-3)
			s.rem = max(18, s.rem-2)
		case h >= 21 && h < 23:
			s.deep = min(22, s.deep+2)
		}
	}

	return normalizeStages(s), nil
}

// normalizeStages scales the mix to percentages. Awake takes the remainder so
// the total is exactly 100; if rounding overshoots, light gives the point back.
func normalizeStages(s stageMix) domain.SleepStagePercentages {
	total := float64(s.deep + s.rem + s.light + s.awake)
	share := func(v int) int { return int(round(float64(v) / total * 100)) }

	out := domain.SleepStagePercentages{
		Deep:  share(s.deep),
		REM:   share(s.rem),
		Light: share(s.light),
	}
	out.Awake = 100 - out.Deep - out.REM - out.Light
	if out.Awake < 0 {
		out.Light += out.Awake
		out.Awake = 0
	}
	return out
}

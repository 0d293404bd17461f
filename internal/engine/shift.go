package engine

import (
	"strings"
	"time"

	"github.com/blaisecz/shift-coach/internal/domain"
)

// shiftEffects is the signed circadian contribution of each shift type.
var shiftEffects = map[domain.ShiftType]float64{
	domain.ShiftMorning:  10,
	domain.ShiftDay:      0,
	domain.ShiftEvening:  -5,
	domain.ShiftNight:    -15,
	domain.ShiftRotating: -12,
	domain.ShiftOff:      0,
}

// ParseShiftType parses a shift type name case-insensitively.
func ParseShiftType(s string) (domain.ShiftType, error) {
	st := domain.ShiftType(strings.ToLower(strings.TrimSpace(s)))
	if err := checkShift("shift", st); err != nil {
		return "", err
	}
	return st, nil
}

// ClassifyShift maps a roster label, and the shift start time when known, to a
// shift type. recentLabels are the labels of the last few rostered shifts; more
// than two distinct working labels among them marks an otherwise unrecognised
// label as rotating. Anything still unrecognised is treated as off.
func ClassifyShift(label string, start *time.Time, recentLabels []string) domain.ShiftType {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	if normalized == "" {
		if start != nil {
			return classifyByStartHour(start.Hour())
		}
		return domain.ShiftOff
	}

	switch {
	case normalized == "OFF":
		return domain.ShiftOff
	case strings.Contains(normalized, "NIGHT"):
		return domain.ShiftNight
	case strings.Contains(normalized, "MORNING"):
		return domain.ShiftMorning
	case strings.Contains(normalized, "AFTERNOON"), strings.Contains(normalized, "LATE"):
		return domain.ShiftEvening
	case strings.Contains(normalized, "DAY"):
		if start == nil {
			return domain.ShiftDay
		}
		switch h := start.Hour(); {
		case h >= 5 && h < 9:
			return domain.ShiftMorning
		case h >= 9 && h < 17:
			return domain.ShiftDay
		case h >= 17 && h < 22:
			return domain.ShiftEvening
		default:
			return domain.ShiftNight
		}
	case normalized == "CUSTOM" && start != nil:
		return classifyByStartHour(start.Hour())
	}

	working := make(map[string]struct{})
	for _, l := range recentLabels {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l == "" || l == "OFF" {
			continue
		}
		working[l] = struct{}{}
	}
	if len(working) > 2 {
		return domain.ShiftRotating
	}
	return domain.ShiftOff
}

func classifyByStartHour(h int) domain.ShiftType {
	switch {
	case h >= 22 || h < 6:
		return domain.ShiftNight
	case h < 10:
		return domain.ShiftMorning
	case h < 14:
		return domain.ShiftDay
	default:
		return domain.ShiftEvening
	}
}

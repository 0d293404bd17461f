// Package engine holds the wellness scoring and coaching decisions.
//
// Every function here is pure: no I/O, no goroutines, no package-level mutable
// state, and no reading of the wall clock. Callers pass the current time in.
// That makes every calculator safe to call concurrently and deterministic.
//
// Guarantees:
//   - Numeric outputs are clamped to their documented ranges; out-of-range but
//     finite inputs never produce an error.
//   - NaN, infinities and unknown enum values are caller contract violations
//     and fail with *InputError naming the field.
//   - Sleep stage percentages always sum to exactly 100.
//   - Tip selection is a stable max by score: rule order breaks ties.
//
// Missing history (no sleep yet, no mood check-in) is the caller's to default
// before calling CalculateCircadianPhase or AdjustMacroTargets;
// ClassifyCoachingState and RecommendSteps apply their own defaults to nil
// fields.
package engine

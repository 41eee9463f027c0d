package pipeline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidRequest marks any input the service refuses to score:
// malformed payloads, unusable config overrides, and validation failures
// in strict mode.
var ErrInvalidRequest = errors.New("invalid request")

// ValidationError lists every problem strict validation found.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", strings.Join(e.Problems, "; "))
}

// Is makes a ValidationError match ErrInvalidRequest.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// Validate applies the strict checks Score itself never enforces: the
// answer count, rating and hour ranges, and a complete, duplicate-free,
// non-overrunning week. It returns nil or a *ValidationError.
func Validate(in Input) error {
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(in.Answers) != AnswerCount {
		addf("expected %d answers, got %d", AnswerCount, len(in.Answers))
	}
	for i, a := range in.Answers {
		if s, ok := a.Score.Get(); ok && !inRating(s) {
			addf("answers[%d].score %g outside 1-10", i, s)
		}
		if s, ok := a.ScenarioScore.Get(); ok && !inRating(s) {
			addf("answers[%d].scenarioScore %g outside 1-10", i, s)
		}
	}

	var seen [numCategories]bool
	total := 0.0
	for i, row := range in.TimeMap {
		c, ok := ParseCategory(row.Category)
		if !ok {
			addf("timeMap[%d]: unknown category %q", i, row.Category)
			continue
		}
		if seen[c] {
			addf("timeMap[%d]: duplicate category %s", i, c)
			continue
		}
		seen[c] = true
		if h, ok := row.Hours.Get(); ok {
			if h < 0 {
				addf("timeMap[%d]: %s hours %g is negative", i, c, h)
			}
			total += h
		}
		if ri, ok := row.RI.Get(); ok && !inRating(ri) {
			addf("timeMap[%d]: %s ri %g outside 1-10", i, c, ri)
		}
	}
	for _, c := range Categories() {
		if !seen[c] {
			addf("timeMap: missing category %s", c)
		}
	}
	if total > HoursPerWeek {
		addf("timeMap: %g hours allocated, more than %g in a week", total, HoursPerWeek)
	}

	if eli, ok := in.ELI.Get(); ok && !inRating(eli) {
		addf("eli %g outside 1-10", eli)
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

// ValidateConfig reports scoring parameters the pipeline cannot use: a
// non-positive calibration k or max, or a negative cross-lift alpha. It
// returns nil or a *ValidationError.
func ValidateConfig(cfg Config) error {
	var problems []string
	if !(cfg.Calibration.K > 0) {
		problems = append(problems, fmt.Sprintf("config.calibration.k must be positive, got %g", cfg.Calibration.K))
	}
	if !(cfg.Calibration.Max > 0) {
		problems = append(problems, fmt.Sprintf("config.calibration.max must be positive, got %g", cfg.Calibration.Max))
	}
	if !(cfg.CrossLift.Alpha >= 0) {
		problems = append(problems, fmt.Sprintf("config.crossLift.alpha must not be negative, got %g", cfg.CrossLift.Alpha))
	}
	if math.IsNaN(cfg.RI.GlobalMultiplier) || math.IsInf(cfg.RI.GlobalMultiplier, 0) {
		problems = append(problems, fmt.Sprintf("config.ri.globalMultiplier must be finite, got %g", cfg.RI.GlobalMultiplier))
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func inRating(v float64) bool {
	return v >= MinRating && v <= MaxRating
}

package pipeline

import "math"

// Rating bounds of answers, RI and ELI. Only Calibrate clamps to them.
const (
	MinRating = 1.0
	MaxRating = 10.0
)

// Calibrate maps a raw 1-10 rating onto the saturating scale
//
//	max * (1 - e^(-k*x/10)) / (1 - e^(-k)),  x = clamp(score, 1, 10)
//
// so that a 10 lands exactly on max while the low and middle of the scale
// keep their spread. An absent score stays absent. When the denominator
// vanishes (k == 0) the curve is its linear limit, max * x/10.
func Calibrate(score Value, c Calibration) Value {
	s, ok := score.Get()
	if !ok {
		return None()
	}
	x := clamp(s, MinRating, MaxRating)
	// -Expm1(-k) is 1 - e^(-k) without cancellation for tiny k.
	denom := -math.Expm1(-c.K)
	if denom == 0 {
		return Some(c.Max * x / 10)
	}
	return Some(c.Max * -math.Expm1(-c.K*x/10) / denom)
}

// calibrateAll calibrates the score picked from every answer.
func calibrateAll(answers []Answer, pick func(Answer) Value, c Calibration) []Value {
	out := make([]Value, len(answers))
	for i, a := range answers {
		out[i] = Calibrate(pick(a), c)
	}
	return out
}

func currentScore(a Answer) Value  { return a.Score }
func scenarioScore(a Answer) Value { return a.ScenarioScore }

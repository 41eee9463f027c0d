package pipeline

// DefaultELI is the life-event load assumed when none is supplied.
const DefaultELI = 1.0

// Score runs the full pipeline for the current and scenario ratings.
//
// in.Config is not consulted here; callers resolve overrides into cfg
// first (see ConfigOverrides.Apply). Score has no side effects and the
// same arguments always produce the same Output.
func Score(in Input, cfg Config) Output {
	week := ResolveTime(in.TimeMap)
	netRI := NetRI(week)
	eli := in.ELI.Or(DefaultELI)
	lmc := LifeConditionMultiplier(eli)

	finish := func(calibrated []Value, dims DimensionAverages, q BucketQualities) Run {
		q = ApplyCrossLift(q, week, cfg.CrossLift)
		raw := ComputeRaw(q, week)
		adjusted := AdjustForRI(raw.LMS, netRI, cfg.RI)
		return Run{
			Calibrated:   calibrated,
			Dimensions:   dims,
			Qualities:    q,
			SleepQuality: raw.SleepQuality,
			RawLMS:       raw.LMS,
			RIAdjusted:   adjusted,
			FinalLMI:     ApplyLifeCondition(adjusted, lmc),
		}
	}

	curCal := calibrateAll(in.Answers, currentScore, cfg.Calibration)
	curDims := AggregateDimensions(curCal)
	curQ := MapQuality(curDims, overallFallback(curCal))

	scnCal := calibrateAll(in.Answers, scenarioScore, cfg.Calibration)
	scnDims := AggregateDimensions(scnCal)
	scnQ := mapScenarioQuality(scnDims, overallFallback(scnCal), curQ)

	drainers, uplifters := ExtractDrainersUplifters(in.Answers)

	return Output{
		Current:         finish(curCal, curDims, curQ),
		Scenario:        finish(scnCal, scnDims, scnQ),
		AwakeHours:      week.AwakeHours,
		OtherAwakeHours: week.OtherAwakeHours,
		NetRI:           netRI,
		ELI:             eli,
		LMC:             lmc,
		TopDrainers:     drainers,
		TopUplifters:    uplifters,
	}
}

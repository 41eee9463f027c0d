package pipeline

// RI slopes around the neutral rating. Falling below neutral costs more
// per unit than rising above it gains.
const (
	riPenaltySlope = 0.075
	riRewardSlope  = 0.06
)

// RIToInternal converts a 1-10 relative-impact rating to the internal
// scale: 5 is 0, 1 is -0.30, 10 is +0.30.
func RIToInternal(ri float64) float64 {
	if ri < NeutralRI {
		return (ri - NeutralRI) * riPenaltySlope
	}
	return (ri - NeutralRI) * riRewardSlope
}

// RawScore is the time-weighted quality of the week before adjustments.
type RawScore struct {
	// AwakeWeighted is the hour-weighted quality of the awake buckets.
	AwakeWeighted float64
	// SleepQuality sits halfway between 10 and AwakeWeighted.
	SleepQuality float64
	// LMS is the raw life morale score over the 168-hour week.
	LMS float64
}

// ComputeRaw weights each awake bucket's quality by its hours, derives
// the sleep quality from the awake average, and averages the whole week
// over 168 hours.
func ComputeRaw(q BucketQualities, t TimeAllocation) RawScore {
	awakeSum := 0.0
	for _, b := range Buckets() {
		awakeSum += b.Hours(t) * q[b]
	}
	awake := t.AwakeHours
	if awake == 0 {
		awake = 1
	}
	awakeWeighted := awakeSum / awake
	sleepQuality := (10 + awakeWeighted) / 2
	sleepHours := t.Get(Sleep).Hours
	return RawScore{
		AwakeWeighted: awakeWeighted,
		SleepQuality:  sleepQuality,
		LMS:           (awakeSum + sleepHours*sleepQuality) / HoursPerWeek,
	}
}

// NetRI is the hour-weighted internal RI of the awake buckets over the
// full week. Sleep does not contribute.
func NetRI(t TimeAllocation) float64 {
	sum := 0.0
	for _, b := range Buckets() {
		sum += b.Hours(t) * RIToInternal(b.RI(t))
	}
	return sum / HoursPerWeek
}

// AdjustForRI scales the raw score by the net relative impact.
func AdjustForRI(raw, netRI float64, r RI) float64 {
	return raw * (1 + r.GlobalMultiplier*netRI)
}

// LifeConditionMultiplier maps ELI onto 10 - 0.2*ELI: 9.8 at ELI 1 and
// 8.0 at ELI 10.
func LifeConditionMultiplier(eli float64) float64 {
	return 10 - 0.2*eli
}

// ApplyLifeCondition dampens the RI-adjusted score by LMC/10.
func ApplyLifeCondition(riAdjusted, lmc float64) float64 {
	return riAdjusted * (lmc / 10)
}

package pipeline

// liftSources are the buckets whose positive RI can spill over into Work.
var liftSources = [...]Bucket{BucketRelationships, BucketGym, BucketLeisure}

// ApplyCrossLift raises Work quality with the positive relative impact of
// Relationships, Gym and Leisure time:
//
//	lift = alpha * sum(hours/awake * max(0, riToInternal(ri))) * (10 - work)/10
//
// The result is clamped to [1, 10]. Only positive RI lifts; a negative
// RI never penalises Work. When c is disabled q is returned unchanged.
func ApplyCrossLift(q BucketQualities, t TimeAllocation, c CrossLift) BucketQualities {
	if !c.Enabled {
		return q
	}
	awake := t.AwakeHours
	if awake == 0 {
		awake = 1
	}
	spare := 0.0
	for _, b := range liftSources {
		ri := RIToInternal(b.RI(t))
		if ri < 0 {
			ri = 0
		}
		spare += b.Hours(t) / awake * ri
	}
	work := q[BucketWork]
	headroom := (10 - work) / 10
	q[BucketWork] = clamp(work+c.Alpha*spare*headroom, MinRating, MaxRating)
	return q
}

package pipeline

import "encoding/json"

// Bucket is one of the six awake-time buckets that carry a quality.
type Bucket int

const (
	BucketWork Bucket = iota
	BucketCommute
	BucketGym
	BucketRelationships
	BucketLeisure
	BucketOther
	numBuckets
)

// Buckets lists the awake buckets in scoring order.
func Buckets() []Bucket {
	return []Bucket{BucketWork, BucketCommute, BucketGym, BucketRelationships, BucketLeisure, BucketOther}
}

// bucketCategory is the category whose hours and RI a bucket uses. The
// residual bucket takes its RI from Other; its hours are derived.
var bucketCategory = [numBuckets]Category{
	BucketWork:          Work,
	BucketCommute:       Commute,
	BucketGym:           Gym,
	BucketRelationships: Relationships,
	BucketLeisure:       Leisure,
	BucketOther:         Other,
}

// bucketSource is the dimension each bucket borrows its quality from.
// The residual bucket has none and always uses the overall fallback.
var bucketSource = map[Bucket]Dimension{
	BucketWork:          Autonomy,
	BucketCommute:       Peace,
	BucketGym:           Vitality,
	BucketRelationships: Connection,
	BucketLeisure:       Fulfillment,
}

func (b Bucket) String() string {
	if b < 0 || b >= numBuckets {
		return "Unknown"
	}
	return bucketCategory[b].String()
}

// Source returns the dimension feeding b, if any.
func (b Bucket) Source() (Dimension, bool) {
	d, ok := bucketSource[b]
	return d, ok
}

// Hours returns the weekly hours of b under t.
func (b Bucket) Hours(t TimeAllocation) float64 {
	if b == BucketOther {
		return t.OtherAwakeHours
	}
	return t.Get(bucketCategory[b]).Hours
}

// RI returns the relative-impact rating b is weighted with under t.
func (b Bucket) RI(t TimeAllocation) float64 {
	return t.Get(bucketCategory[b]).RI
}

// BucketQualities holds one quality per awake bucket.
type BucketQualities [numBuckets]float64

// MarshalJSON encodes the qualities as an object keyed by bucket name.
func (q BucketQualities) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.byName())
}

// MarshalYAML mirrors MarshalJSON.
func (q BucketQualities) MarshalYAML() (interface{}, error) {
	return q.byName(), nil
}

func (q BucketQualities) byName() map[string]float64 {
	m := make(map[string]float64, numBuckets)
	for _, b := range Buckets() {
		m[b.String()] = q[b]
	}
	return m
}

// MapQuality projects the dimension averages onto the awake buckets.
// A bucket whose dimension has no data, and the residual bucket, take
// overall; when overall is absent too they take 0.
func MapQuality(dims DimensionAverages, overall Value) BucketQualities {
	fallback := overall.Or(0)
	var q BucketQualities
	for _, b := range Buckets() {
		q[b] = fallback
		if d, ok := b.Source(); ok {
			q[b] = dims.Get(d).Or(fallback)
		}
	}
	return q
}

// mapScenarioQuality projects the scenario averages, falling back to the
// current run's pre-lift quality of the same bucket wherever the scenario
// has no data.
func mapScenarioQuality(dims DimensionAverages, overall Value, current BucketQualities) BucketQualities {
	var q BucketQualities
	for _, b := range Buckets() {
		q[b] = current[b]
		if d, ok := b.Source(); ok {
			q[b] = dims.Get(d).Or(current[b])
			continue
		}
		q[b] = overall.Or(current[b])
	}
	return q
}

package pipeline

// AggregateDimensions averages the calibrated answers of each dimension,
// skipping absent entries. A dimension with no present entries is None.
// Indices past the end of calibrated count as absent.
func AggregateDimensions(calibrated []Value) DimensionAverages {
	var out DimensionAverages
	for _, d := range Dimensions() {
		start, end := d.Range()
		if start >= len(calibrated) {
			out[d] = None()
			continue
		}
		if end > len(calibrated) {
			end = len(calibrated)
		}
		out[d] = mean(calibrated[start:end])
	}
	return out
}

// overallFallback is the mean of every present calibrated answer, used
// when a bucket's dimension has no data.
func overallFallback(calibrated []Value) Value {
	return mean(calibrated)
}

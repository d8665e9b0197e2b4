package model

// LocationCount is one entry of a per-location summary.
type LocationCount struct {
	Count    int
	Location string
}

// TimeSeriesRow is one bucket of the exported time series.
type TimeSeriesRow struct {
	Bucket    int64
	Waiting   int
	Collision int
}

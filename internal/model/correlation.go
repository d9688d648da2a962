package model

import "time"

// CorrelationResult is the outcome of one rank-correlation computation.
type CorrelationResult struct {
	Coefficient float64 // Spearman coefficient, rounded to 2 decimals
	SampleSize  int     // number of return pairs used
	Strength    string  // negligible / weak / moderate / strong / very strong
	Direction   string  // positive / negative / none
}

// SentimentSnapshot summarizes the most recent index observation.
type SentimentSnapshot struct {
	Value int       // latest index value, 0-100
	Zone  string    // sentiment bucket label
	Delta int       // latest minus previous day's value
	Time  time.Time // timestamp of the latest observation
}

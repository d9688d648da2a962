package model

import "time"

// FearGreedPoint is one daily observation of the Fear & Greed index.
type FearGreedPoint struct {
	Time           time.Time
	Value          int // 0-100
	Classification string
}

// PricePoint is one daily price observation.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// MarketData holds the raw series fetched for a single run.
type MarketData struct {
	FearGreed []FearGreedPoint
	Prices    []PricePoint
	FetchedAt time.Time
}

// AlignedSeries holds both series re-indexed onto a gap-free calendar of
// consecutive UTC days. Index and Price have the same length as Days;
// every slot carries a real or forward-filled value.
type AlignedSeries struct {
	Days  []time.Time
	Index []float64
	Price []float64
}

// ReturnPairs holds paired 1-day percentage returns derived from an
// aligned series. Index[i] and Price[i] always refer to the same day.
type ReturnPairs struct {
	Index []float64
	Price []float64
}

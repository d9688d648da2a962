package collector

import "SentimentPulse/internal/model"

// SentimentSource provides daily Fear & Greed index history.
type SentimentSource interface {
	FetchHistory(days int) ([]model.FearGreedPoint, error)
	Name() string
}

// PriceSource provides daily close prices for the configured coin.
type PriceSource interface {
	FetchDailyPrices(days int) ([]model.PricePoint, error)
	Name() string
}

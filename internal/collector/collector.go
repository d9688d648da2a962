package collector

import (
	"fmt"
	"time"

	"SentimentPulse/internal/model"
)

// MockSentimentSource returns controllable fixed data for development and
// testing.
type MockSentimentSource struct {
	Points []model.FearGreedPoint
}

func (m *MockSentimentSource) Name() string { return "mock" }

func (m *MockSentimentSource) FetchHistory(_ int) ([]model.FearGreedPoint, error) {
	return m.Points, nil
}

// MockPriceSource returns controllable fixed data for development and
// testing.
type MockPriceSource struct {
	Points []model.PricePoint
}

func (m *MockPriceSource) Name() string { return "mock" }

func (m *MockPriceSource) FetchDailyPrices(_ int) ([]model.PricePoint, error) {
	return m.Points, nil
}

// Collector fetches both raw series for one run.
type Collector struct {
	Sentiment    SentimentSource
	Prices       PriceSource
	LookbackDays int
}

// NewCollector creates a new Collector.
func NewCollector(sentiment SentimentSource, prices PriceSource, lookbackDays int) *Collector {
	return &Collector{Sentiment: sentiment, Prices: prices, LookbackDays: lookbackDays}
}

// Collect fetches the index and price series and trims the index series
// to the trailing lookback window.
func (c *Collector) Collect() (*model.MarketData, error) {
	fearGreed, err := c.Sentiment.FetchHistory(c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch fear & greed history: %w", err)
	}
	if len(fearGreed) == 0 {
		return nil, fmt.Errorf("fetch fear & greed history: empty series")
	}

	prices, err := c.Prices.FetchDailyPrices(c.LookbackDays)
	if err != nil {
		return nil, fmt.Errorf("fetch price history: %w", err)
	}
	if len(prices) == 0 {
		return nil, fmt.Errorf("fetch price history: empty series")
	}

	return &model.MarketData{
		FearGreed: filterRecent(fearGreed, c.LookbackDays),
		Prices:    prices,
		FetchedAt: time.Now().UTC(),
	}, nil
}

// filterRecent keeps points within the trailing window. If the cutoff
// would drop everything (stale provider data), the full series is kept so
// the run can still report the latest available state.
func filterRecent(points []model.FearGreedPoint, days int) []model.FearGreedPoint {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	for i, p := range points {
		if !p.Time.Before(cutoff) {
			return points[i:]
		}
	}
	return points
}

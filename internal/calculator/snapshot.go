package calculator

import (
	"fmt"

	"SentimentPulse/internal/model"
)

// ClassifyZone maps an index value to its sentiment bucket. Buckets are
// inclusive and cover the whole 0-100 domain.
func ClassifyZone(value int) string {
	switch {
	case value < 20:
		return "Extreme Fear"
	case value < 40:
		return "Fear"
	case value < 60:
		return "Neutral"
	case value < 80:
		return "Greed"
	default:
		return "Extreme Greed"
	}
}

// LatestSnapshot extracts the most recent index value, its sentiment zone,
// and the change versus the preceding observation. The input is the raw
// (unaligned) index series in ascending time order.
func LatestSnapshot(points []model.FearGreedPoint) (*model.SentimentSnapshot, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 index points, got %d", ErrInsufficientData, len(points))
	}
	latest := points[len(points)-1]
	previous := points[len(points)-2]
	return &model.SentimentSnapshot{
		Value: latest.Value,
		Zone:  ClassifyZone(latest.Value),
		Delta: latest.Value - previous.Value,
		Time:  latest.Time,
	}, nil
}

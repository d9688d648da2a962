package notifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"SentimentPulse/internal/model"
)

func TestFormatSentimentReport(t *testing.T) {
	snap := &model.SentimentSnapshot{
		Value: 72,
		Zone:  "Greed",
		Delta: 5,
		Time:  time.Date(2024, 5, 3, 14, 30, 0, 0, time.UTC),
	}
	corr := &model.CorrelationResult{
		Coefficient: 0.42,
		SampleSize:  180,
		Strength:    "moderate",
		Direction:   "positive",
	}

	msg := FormatSentimentReport(snap, corr)
	assert.Contains(t, msg, "Latest index: 72 (Greed 🙂)")
	assert.Contains(t, msg, "Change vs previous: +5")
	assert.Contains(t, msg, "Time: 2024-05-03 14:30 UTC")
	assert.Contains(t, msg, "Spearman correlation: 0.42 (moderate, positive 📈)")
}

func TestFormatSentimentReport_SignedDelta(t *testing.T) {
	snap := &model.SentimentSnapshot{Value: 40, Zone: "Neutral", Delta: 0, Time: time.Now()}
	corr := &model.CorrelationResult{Coefficient: -0.10, Strength: "negligible", Direction: "negative"}

	msg := FormatSentimentReport(snap, corr)
	assert.Contains(t, msg, "Change vs previous: +0", "zero delta keeps an explicit sign")
	assert.Contains(t, msg, "-0.10 (negligible, negative 📉)")

	snap.Delta = -7
	assert.Contains(t, FormatSentimentReport(snap, corr), "Change vs previous: -7")
}

func TestFormatCorrelation_NoDirection(t *testing.T) {
	corr := &model.CorrelationResult{Coefficient: 0, Strength: "negligible", Direction: "none"}
	assert.Equal(t, "0.00 (negligible, none ➖)", FormatCorrelation(corr))
}

func TestChartCaption(t *testing.T) {
	assert.Equal(t, "Bitcoin fear/greed chart (last 6 months)", ChartCaption("bitcoin"))
}

package notifier

import (
	"fmt"
	"strings"

	"SentimentPulse/internal/model"
)

var zoneEmoji = map[string]string{
	"Extreme Fear":  "😱",
	"Fear":          "😟",
	"Neutral":       "😐",
	"Greed":         "🙂",
	"Extreme Greed": "🤑",
}

var directionEmoji = map[string]string{
	"positive": "📈",
	"negative": "📉",
	"none":     "➖",
}

// FormatSentimentReport formats one run's results into a Telegram message.
func FormatSentimentReport(snap *model.SentimentSnapshot, corr *model.CorrelationResult) string {
	var b strings.Builder

	b.WriteString("📊 <b>BTC Market Sentiment Update</b>\n\n")
	b.WriteString(fmt.Sprintf("🧭 Latest index: %d (%s %s)\n", snap.Value, snap.Zone, zoneEmoji[snap.Zone]))
	b.WriteString(fmt.Sprintf("🔁 Change vs previous: %+d\n", snap.Delta))
	b.WriteString(fmt.Sprintf("🕒 Time: %s UTC\n", snap.Time.UTC().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("🔗 Spearman correlation: %s\n", FormatCorrelation(corr)))

	return b.String()
}

// FormatCorrelation renders the coefficient with its qualitative labels,
// e.g. "0.42 (moderate, positive 📈)".
func FormatCorrelation(corr *model.CorrelationResult) string {
	return fmt.Sprintf("%.2f (%s, %s %s)",
		corr.Coefficient, corr.Strength, corr.Direction, directionEmoji[corr.Direction])
}

// ChartCaption is the caption attached to the chart photo.
func ChartCaption(coin string) string {
	return fmt.Sprintf("%s fear/greed chart (last 6 months)", strings.ToUpper(coin[:1])+coin[1:])
}

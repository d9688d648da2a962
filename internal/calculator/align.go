package calculator

import (
	"errors"
	"fmt"
	"time"

	"SentimentPulse/internal/model"
)

// ErrInsufficientData is returned when a series is too short for the
// requested computation.
var ErrInsufficientData = errors.New("insufficient data")

// DefaultLookbackDays is the trailing window used when none is configured
// (roughly six months).
const DefaultLookbackDays = 183

// Day truncates t to its UTC calendar day.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildDailyRange returns every calendar day from start through end
// inclusive. Both bounds are truncated to UTC days first.
func BuildDailyRange(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	total := int(end.Sub(start).Hours()/24) + 1
	days := make([]time.Time, total)
	for i := 0; i < total; i++ {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// AlignSeries merges the index and price series onto the trailing
// windowDays calendar days ending at the earlier of the two series'
// latest dates. Days where a series has no observation carry the most
// recent prior value forward; leading days where either series has no
// prior value at all are dropped from the output.
func AlignSeries(index []model.FearGreedPoint, prices []model.PricePoint, windowDays int) (*model.AlignedSeries, error) {
	if len(index) == 0 || len(prices) == 0 {
		return nil, fmt.Errorf("%w: empty input series", ErrInsufficientData)
	}
	if windowDays < 2 {
		return nil, fmt.Errorf("window must cover at least 2 days, got %d", windowDays)
	}

	indexByDay := make(map[time.Time]float64, len(index))
	for _, p := range index {
		indexByDay[Day(p.Time)] = float64(p.Value)
	}
	priceByDay := make(map[time.Time]float64, len(prices))
	for _, p := range prices {
		priceByDay[Day(p.Time)] = p.Price
	}

	end := Day(index[len(index)-1].Time)
	if p := Day(prices[len(prices)-1].Time); p.Before(end) {
		end = p
	}
	start := end.AddDate(0, 0, -(windowDays - 1))

	// Observations at or before the window start seed the forward-fill.
	lastIndex, haveIndex := latestAtOrBefore(indexByDay, start)
	lastPrice, havePrice := latestAtOrBefore(priceByDay, start)

	aligned := &model.AlignedSeries{}
	for _, day := range BuildDailyRange(start, end) {
		if v, ok := indexByDay[day]; ok {
			lastIndex, haveIndex = v, true
		}
		if v, ok := priceByDay[day]; ok {
			lastPrice, havePrice = v, true
		}
		if !haveIndex || !havePrice {
			continue // leading gap: no prior value to carry forward
		}
		aligned.Days = append(aligned.Days, day)
		aligned.Index = append(aligned.Index, lastIndex)
		aligned.Price = append(aligned.Price, lastPrice)
	}

	if len(aligned.Days) < 2 {
		return nil, fmt.Errorf("%w: %d aligned days in window ending %s", ErrInsufficientData, len(aligned.Days), end.Format("2006-01-02"))
	}
	return aligned, nil
}

func latestAtOrBefore(byDay map[time.Time]float64, cutoff time.Time) (float64, bool) {
	var (
		best  time.Time
		value float64
		found bool
	)
	for day, v := range byDay {
		if day.After(cutoff) {
			continue
		}
		if !found || day.After(best) {
			best, value, found = day, v, true
		}
	}
	return value, found
}

package calculator

import (
	"fmt"
	"math"
	"sort"

	"SentimentPulse/internal/model"
)

// AverageRanks assigns ascending ranks (1-based) to values. Tied values
// receive the average of the ranks the tied group would jointly occupy.
func AverageRanks(values []float64) []float64 {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	ranks := make([]float64, len(values))
	for i := 0; i < len(order); {
		j := i + 1
		for j < len(order) && values[order[j]] == values[order[i]] {
			j++
		}
		avg := float64(i+1+j) / 2.0
		for k := i; k < j; k++ {
			ranks[order[k]] = avg
		}
		i = j
	}
	return ranks
}

// Spearman computes the rank correlation between the paired return
// series: Pearson correlation of the mid-rank sequences. The coefficient
// is rounded to 2 decimals for reporting.
func Spearman(pairs *model.ReturnPairs) (*model.CorrelationResult, error) {
	if pairs == nil || len(pairs.Index) != len(pairs.Price) {
		return nil, fmt.Errorf("return series must be paired")
	}
	n := len(pairs.Index)
	if n < 2 {
		return nil, fmt.Errorf("%w: %d return pairs", ErrInsufficientData, n)
	}

	coef, err := pearson(AverageRanks(pairs.Index), AverageRanks(pairs.Price))
	if err != nil {
		return nil, err
	}

	rounded := math.Round(coef*100) / 100
	strength, direction := DescribeCorrelation(rounded)
	return &model.CorrelationResult{
		Coefficient: rounded,
		SampleSize:  n,
		Strength:    strength,
		Direction:   direction,
	}, nil
}

// DescribeCorrelation maps a coefficient to its strength bucket and
// direction label.
func DescribeCorrelation(coef float64) (strength, direction string) {
	switch abs := math.Abs(coef); {
	case abs < 0.2:
		strength = "negligible"
	case abs < 0.4:
		strength = "weak"
	case abs < 0.6:
		strength = "moderate"
	case abs < 0.8:
		strength = "strong"
	default:
		strength = "very strong"
	}

	switch {
	case coef > 0:
		direction = "positive"
	case coef < 0:
		direction = "negative"
	default:
		direction = "none"
	}
	return strength, direction
}

func pearson(xs, ys []float64) (float64, error) {
	n := float64(len(xs))
	var meanX, meanY float64
	for i := range xs {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= n
	meanY /= n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, fmt.Errorf("%w: zero variance in ranked returns", ErrInsufficientData)
	}
	return cov / (math.Sqrt(varX) * math.Sqrt(varY)), nil
}

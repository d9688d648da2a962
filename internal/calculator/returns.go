package calculator

import (
	"fmt"

	"SentimentPulse/internal/model"
)

// DailyReturns derives paired 1-day percentage returns from an aligned
// series. A day whose previous value is exactly zero in either series has
// an undefined return; that day is skipped in both series so the pairs
// stay aligned for ranking.
func DailyReturns(s *model.AlignedSeries) (*model.ReturnPairs, error) {
	if s == nil || len(s.Days) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 aligned days to derive returns", ErrInsufficientData)
	}

	pairs := &model.ReturnPairs{}
	for i := 1; i < len(s.Days); i++ {
		prevIndex, prevPrice := s.Index[i-1], s.Price[i-1]
		if prevIndex == 0 || prevPrice == 0 {
			continue
		}
		pairs.Index = append(pairs.Index, (s.Index[i]-prevIndex)/prevIndex)
		pairs.Price = append(pairs.Price, (s.Price[i]-prevPrice)/prevPrice)
	}

	if len(pairs.Index) < 2 {
		return nil, fmt.Errorf("%w: only %d usable return pairs", ErrInsufficientData, len(pairs.Index))
	}
	return pairs, nil
}

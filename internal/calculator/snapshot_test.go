package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyZone_Boundaries(t *testing.T) {
	tests := []struct {
		value int
		want  string
	}{
		{0, "Extreme Fear"},
		{19, "Extreme Fear"},
		{20, "Fear"},
		{39, "Fear"},
		{40, "Neutral"},
		{59, "Neutral"},
		{60, "Greed"},
		{79, "Greed"},
		{80, "Extreme Greed"},
		{100, "Extreme Greed"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyZone(tt.value), "value %d", tt.value)
	}
}

func TestClassifyZone_Exhaustive(t *testing.T) {
	// Every integer in the domain maps to exactly one of the five zones.
	zones := map[string]bool{
		"Extreme Fear": true, "Fear": true, "Neutral": true,
		"Greed": true, "Extreme Greed": true,
	}
	for v := 0; v <= 100; v++ {
		assert.True(t, zones[ClassifyZone(v)], "value %d", v)
	}
}

func TestLatestSnapshot(t *testing.T) {
	points := fgPoints(0, 50, 55, 52)

	snap, err := LatestSnapshot(points)
	require.NoError(t, err)
	assert.Equal(t, 52, snap.Value)
	assert.Equal(t, -3, snap.Delta)
	assert.Equal(t, "Neutral", snap.Zone)
	assert.Equal(t, base.AddDate(0, 0, 2), snap.Time)
}

func TestLatestSnapshot_InsufficientData(t *testing.T) {
	_, err := LatestSnapshot(nil)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = LatestSnapshot(fgPoints(0, 50))
	require.ErrorIs(t, err, ErrInsufficientData)
}

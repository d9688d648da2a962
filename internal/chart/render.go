package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"SentimentPulse/internal/model"
)

// Renderer draws the index/price overview chart to a PNG file.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer creates a renderer with the default canvas size.
func NewRenderer() *Renderer {
	return &Renderer{Width: 1200, Height: 600}
}

// Render writes a dual-axis line chart of the aligned series to path,
// index on the primary axis (fixed 0-100) and price on the secondary.
// The parent directory is created if missing.
func (r *Renderer) Render(s *model.AlignedSeries, path string) error {
	if s == nil || len(s.Days) == 0 {
		return fmt.Errorf("render chart: no aligned data")
	}

	indexColor := drawing.ColorFromHex("1f77b4")
	priceColor := drawing.ColorFromHex("f59f00")

	graph := chart.Chart{
		Title:  "Crypto Fear & Greed Index (BTC) - Last 6 Months",
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name:           "Date",
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name:  "Index (0-100)",
			Range: &chart.ContinuousRange{Min: 0, Max: 100},
		},
		YAxisSecondary: chart.YAxis{
			Name: "BTC Price (USD)",
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Fear & Greed Index",
				XValues: s.Days,
				YValues: s.Index,
				Style: chart.Style{
					StrokeColor: indexColor,
					StrokeWidth: 2,
					FillColor:   indexColor.WithAlpha(50),
				},
			},
			chart.TimeSeries{
				Name:    "BTC Price (USD)",
				YAxis:   chart.YAxisSecondary,
				XValues: s.Days,
				YValues: s.Price,
				Style: chart.Style{
					StrokeColor: priceColor,
					StrokeWidth: 1.8,
				},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create chart directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

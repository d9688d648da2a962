package report

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"SentimentPulse/internal/calculator"
	"SentimentPulse/internal/collector"
	"SentimentPulse/internal/model"
	"SentimentPulse/internal/notifier"
)

// Notifier delivers the run's message and chart image.
type Notifier interface {
	Send(text string) error
	SendPhoto(path, caption string) error
}

// ChartRenderer draws the aligned series to an image file.
type ChartRenderer interface {
	Render(s *model.AlignedSeries, path string) error
}

// Runner executes one end-to-end report: fetch both series, align them,
// compute the rank correlation, render the chart, and deliver the
// message. Any error aborts the run before anything is sent.
type Runner struct {
	Collector *collector.Collector
	Renderer  ChartRenderer
	Notifier  Notifier
	ChartPath string
	Coin      string
	Log       *zap.SugaredLogger
}

// Run performs a single report run.
func (r *Runner) Run() error {
	data, err := r.Collector.Collect()
	if err != nil {
		return err
	}
	r.Log.Infow("series fetched",
		"fear_greed_points", len(data.FearGreed),
		"price_points", len(data.Prices))

	snap, err := calculator.LatestSnapshot(data.FearGreed)
	if err != nil {
		return fmt.Errorf("sentiment snapshot: %w", err)
	}

	aligned, err := calculator.AlignSeries(data.FearGreed, data.Prices, r.Collector.LookbackDays)
	if err != nil {
		return fmt.Errorf("align series: %w", err)
	}

	returns, err := calculator.DailyReturns(aligned)
	if err != nil {
		return fmt.Errorf("derive returns: %w", err)
	}

	corr, err := calculator.Spearman(returns)
	if err != nil {
		return fmt.Errorf("compute correlation: %w", err)
	}
	r.Log.Infow("correlation computed",
		"coefficient", corr.Coefficient,
		"samples", corr.SampleSize,
		"strength", corr.Strength,
		"direction", corr.Direction)

	if err := r.Renderer.Render(aligned, r.ChartPath); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	message := notifier.FormatSentimentReport(snap, corr)
	if err := r.Notifier.Send(message); err != nil {
		return fmt.Errorf("send report: %w", err)
	}
	if err := r.Notifier.SendPhoto(r.ChartPath, notifier.ChartCaption(r.Coin)); err != nil {
		return fmt.Errorf("send chart: %w", err)
	}

	chartPath := r.ChartPath
	if abs, err := filepath.Abs(chartPath); err == nil {
		chartPath = abs
	}
	r.Log.Infow("report delivered", "latest_index", snap.Value, "zone", snap.Zone, "chart", chartPath)
	return nil
}

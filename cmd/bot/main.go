package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"SentimentPulse/internal/chart"
	"SentimentPulse/internal/collector"
	"SentimentPulse/internal/config"
	"SentimentPulse/internal/notifier"
	"SentimentPulse/internal/report"
	"SentimentPulse/internal/scheduler"
)

func main() {
	cfgPath := flag.String("config", "configs/config.yaml", "config file path")
	chartPath := flag.String("chart", "", "chart output path (overrides config)")
	daemon := flag.Bool("daemon", false, "keep running and report on the configured cron schedule")
	flag.Parse()

	logger := newLogger()
	defer logger.Sync()
	sugar := logger.Sugar()
	sugar.Info("SentimentPulse starting...")

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		sugar.Fatalw("load config", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		sugar.Fatalw("config validation", "error", err)
	}
	if *chartPath != "" {
		cfg.Chart.Path = *chartPath
	}

	sentiment := collector.NewAlternativeFetcher(cfg.Proxy)
	prices := collector.NewCoinGeckoFetcher(cfg.Market.Coin, cfg.Proxy)
	col := collector.NewCollector(sentiment, prices, cfg.Market.LookbackDays)
	sugar.Infow("data sources ready",
		"sentiment", sentiment.Name(),
		"prices", prices.Name(),
		"coin", cfg.Market.Coin,
		"lookback_days", cfg.Market.LookbackDays)

	tn, err := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, sugar)
	if err != nil {
		sugar.Fatalw("init telegram notifier", "error", err)
	}

	runner := &report.Runner{
		Collector: col,
		Renderer:  chart.NewRenderer(),
		Notifier:  tn,
		ChartPath: cfg.Chart.Path,
		Coin:      cfg.Market.Coin,
		Log:       sugar,
	}

	if !*daemon {
		if err := runner.Run(); err != nil {
			sugar.Fatalw("report run failed", "error", err)
		}
		return
	}

	sched := scheduler.NewScheduler(runner, sugar)
	if err := sched.Register(cfg.Schedule.DailyCron); err != nil {
		sugar.Fatalw("register cron task", "error", err)
	}
	sched.Start()
	defer sched.Stop()
	sugar.Infow("SentimentPulse is running", "daily_cron", cfg.Schedule.DailyCron)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	sugar.Info("shutdown signal received, stopping...")
}

func newLogger() *zap.Logger {
	if os.Getenv("APP_ENV") == "production" {
		return zap.Must(zap.NewProduction())
	}
	return zap.Must(zap.NewDevelopment())
}

package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"SentimentPulse/internal/calculator"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token" envconfig:"TELEGRAM_BOT_TOKEN"`
		ChatID   string `yaml:"chat_id" envconfig:"TELEGRAM_CHAT_ID"`
	} `yaml:"telegram"`
	Market struct {
		Coin         string `yaml:"coin" envconfig:"COIN_ID"`
		LookbackDays int    `yaml:"lookback_days" envconfig:"LOOKBACK_DAYS"`
	} `yaml:"market"`
	Chart struct {
		Path string `yaml:"path" envconfig:"CHART_PATH"`
	} `yaml:"chart"`
	Schedule struct {
		DailyCron string `yaml:"daily_cron" envconfig:"DAILY_CRON"`
	} `yaml:"schedule"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A local .env file is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	// Defaults
	if cfg.Market.Coin == "" {
		cfg.Market.Coin = "bitcoin"
	}
	if cfg.Market.LookbackDays == 0 {
		cfg.Market.LookbackDays = calculator.DefaultLookbackDays
	}
	if cfg.Chart.Path == "" {
		cfg.Chart.Path = "output/fear_greed_last_6_months.png"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 9 * * *"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Market.LookbackDays < 2 {
		return fmt.Errorf("market.lookback_days must be at least 2")
	}
	return nil
}

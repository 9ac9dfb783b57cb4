package env

import (
	"fmt"
	"os"
	"time"

	"fortuna_backend/internal/config"
)

const (
	sweepIntervalEnvName = "SWEEP_INTERVAL"

	// Период проверки истечений по умолчанию
	defaultSweepInterval = 60 * time.Second
)

type sweeperConfig struct {
	interval time.Duration
}

func NewSweeperConfig() (config.SweeperConfig, error) {
	raw := os.Getenv(sweepIntervalEnvName)
	if len(raw) == 0 {
		return &sweeperConfig{interval: defaultSweepInterval}, nil
	}

	interval, err := time.ParseDuration(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid sweep interval: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("sweep interval must be positive")
	}

	return &sweeperConfig{interval: interval}, nil
}

func (cfg *sweeperConfig) Interval() time.Duration {
	return cfg.interval
}

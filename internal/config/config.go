package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Scheduler struct {
		MinYear             int     `env:"MIN_YEAR" envDefault:"2020"`
		ContractTolerance   float64 `env:"CONTRACT_TOLERANCE" envDefault:"0.5"`  // 小时
		LunchSplitThreshold float64 `env:"LUNCH_SPLIT_THRESHOLD" envDefault:"6"` // 小时
	} `envPrefix:"SCHEDULER_"`
	Metrics struct {
		Namespace string `env:"NAMESPACE" envDefault:"planning"`
	} `envPrefix:"METRICS_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}

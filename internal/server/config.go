package server

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/DjordjeVuckovic/rank-eval/internal/storage"
	"github.com/DjordjeVuckovic/rank-eval/pkg/config/env"
	"github.com/DjordjeVuckovic/rank-eval/pkg/utils"
	"github.com/kelseyhightower/envconfig"
)

const DefaultEnvPath = "cmd/rank_eval_api/.env"

type Config struct {
	Port        string       `envconfig:"RANK_EVAL_PORT" default:"8080"`
	UseHttp2    bool         `envconfig:"RANK_EVAL_HTTP2"`
	CorsOrigins []string     `envconfig:"RANK_EVAL_CORS_ORIGINS"`
	Store       storage.Type `envconfig:"RANK_EVAL_STORE" default:"memory"`
	PgURL       string       `envconfig:"RANK_EVAL_PG_URL"`
	// Workers bounds per-request scoring parallelism.
	Workers  int `envconfig:"RANK_EVAL_WORKERS" default:"4"`
	MaxBatch int `envconfig:"RANK_EVAL_MAX_BATCH" default:"100000"`
}

// LoadConfig reads the .env file (if any) and then the process environment.
func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(DefaultEnvPath); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validatePort(c.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}

	c.CorsOrigins = utils.CleanStrings(c.CorsOrigins)
	if len(c.CorsOrigins) == 0 {
		c.CorsOrigins = []string{"*"}
	}

	switch c.Store {
	case storage.InMem:
	case storage.PG:
		if c.PgURL == "" {
			return errors.New("RANK_EVAL_PG_URL is required when RANK_EVAL_STORE=postgres")
		}
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnsupportedStore, c.Store)
	}

	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.MaxBatch <= 0 {
		return errors.New("RANK_EVAL_MAX_BATCH must be positive")
	}
	return nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

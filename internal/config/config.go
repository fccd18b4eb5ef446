package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"padel-americano/internal/model"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             int
	App              string
	LogLevel         slog.Level
	DefaultCourts    int
	DefaultGamePoint int
	FairnessMode     model.FairnessMode
	// SchedulerSeed of 0 seeds the scheduler from the clock.
	SchedulerSeed int64
	Lambda        bool
}

func (c Config) IsDev() bool {
	return strings.EqualFold(c.App, "dev")
}

// Load reads the environment, pulling .env files in first when not
// running on Lambda.
func Load() (*Config, error) {
	lambda := os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
	if !lambda {
		_ = godotenv.Load(".env", ".env.local")
	}
	return FromEnv(os.Getenv, lambda)
}

func FromEnv(getenv func(string) string, lambda bool) (*Config, error) {
	cfg := &Config{
		App:    strings.TrimSpace(getenv("APP")),
		Lambda: lambda,
	}

	var err error
	if cfg.Port, err = intVar(getenv, "PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("PORT must be between 1 and 65535, got %d", cfg.Port)
	}
	if cfg.DefaultCourts, err = intVar(getenv, "DEFAULT_COURTS", 1); err != nil {
		return nil, err
	}
	if cfg.DefaultGamePoint, err = intVar(getenv, "DEFAULT_GAME_POINT", 21); err != nil {
		return nil, err
	}
	seed, err := intVar(getenv, "SCHEDULER_SEED", 0)
	if err != nil {
		return nil, err
	}
	cfg.SchedulerSeed = int64(seed)

	mode, ok := model.ParseFairnessMode(getenv("FAIRNESS_MODE"))
	if !ok {
		return nil, fmt.Errorf("invalid FAIRNESS_MODE %q", getenv("FAIRNESS_MODE"))
	}
	cfg.FairnessMode = mode

	if raw := strings.TrimSpace(getenv("LOG_LEVEL")); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}
	return cfg, nil
}

func intVar(getenv func(string) string, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

package config

import (
	"roulette_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	// Enabled false, если PG_DSN не задан: архив сессий отключен
	Enabled() bool
}

type LoggerConfig interface {
	ServiceName() string
	Env() string
	Level() string
}

type StrategyConfig interface {
	Settings() model.Settings
}

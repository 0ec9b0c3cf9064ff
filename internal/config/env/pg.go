package env

import (
	"os"

	"roulette_backend/internal/config"
)

const (
	dsnName = "PG_DSN"
)

type pgConfig struct {
	dsn string
}

// NewPGConfig DSN необязателен: без него сервис работает только в памяти
func NewPGConfig() (config.PGConfig, error) {
	return &pgConfig{
		dsn: os.Getenv(dsnName),
	}, nil
}

func (cfg *pgConfig) DSN() string {
	return cfg.dsn
}

func (cfg *pgConfig) Enabled() bool {
	return len(cfg.dsn) > 0
}

package env

import (
	"os"

	"roulette_backend/internal/config"
)

const (
	serviceNameEnvName = "SERVICE_NAME"
	appEnvEnvName      = "APP_ENV"
	logLevelEnvName    = "LOG_LEVEL"

	defaultServiceName = "roulette"
	defaultAppEnv      = "local"
)

type loggerConfig struct {
	serviceName string
	env         string
	level       string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	return &loggerConfig{
		serviceName: getEnv(serviceNameEnvName, defaultServiceName),
		env:         getEnv(appEnvEnvName, defaultAppEnv),
		level:       os.Getenv(logLevelEnvName),
	}, nil
}

func (cfg *loggerConfig) ServiceName() string {
	return cfg.serviceName
}

func (cfg *loggerConfig) Env() string {
	return cfg.env
}

func (cfg *loggerConfig) Level() string {
	return cfg.level
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package env

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"roulette_backend/internal/config"
	"roulette_backend/internal/model"
	servModel "roulette_backend/internal/service/roulette/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// rawStrategy Секция strategy в config.yaml. Незаданные поля берутся из настроек по умолчанию
type rawStrategy struct {
	BaseUnitSector    *string  `yaml:"base_unit_sector"`
	BaseUnitCoverage  *string  `yaml:"base_unit_coverage"`
	FibonacciSequence []int64  `yaml:"fibonacci_sequence"`
	MaxFibonacciStep  *int     `yaml:"max_fibonacci_step"`
	TableLimitSector  *string  `yaml:"table_limit_sector"`
	InitialBankroll   *string  `yaml:"initial_bankroll"`
	SectorPayout      *string  `yaml:"sector_payout"`
	CoveragePayout    *string  `yaml:"coverage_payout"`
	ActiveSectors     []string `yaml:"active_sectors"`
	ActiveCoverage    *struct {
		ZeroSpiel *bool `yaml:"zero_spiel"`
		Orphelins *bool `yaml:"orphelins"`
	} `yaml:"active_coverage"`
}

type rawConfig struct {
	Strategy rawStrategy `yaml:"strategy"`
}

type strategyConfig struct {
	settings model.Settings
}

// NewStrategyConfigFromYAML читает config.yaml. Отсутствующий файл - настройки по умолчанию
func NewStrategyConfigFromYAML(path string) (config.StrategyConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &strategyConfig{settings: servModel.DefaultSettings()}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseStrategyConfig(b)
}

// ParseStrategyConfig разбирает YAML и проверяет итоговые настройки. Все ошибки собираются в одну
func ParseStrategyConfig(b []byte) (config.StrategyConfig, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse strategy yaml: %w", err)
	}

	patch, errs := raw.Strategy.toPatch()
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidSettings, strings.Join(errs, "; "))
	}

	settings := patch.Apply(servModel.DefaultSettings())
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &strategyConfig{settings: settings}, nil
}

func (r rawStrategy) toPatch() (model.SettingsPatch, []string) {
	var (
		patch model.SettingsPatch
		errs  []string
	)

	parse := func(name string, v *string) *decimal.Decimal {
		if v == nil {
			return nil
		}
		d, err := decimal.NewFromString(*v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %q is not a number", name, *v))
			return nil
		}
		return &d
	}

	patch.BaseUnitSector = parse("base_unit_sector", r.BaseUnitSector)
	patch.BaseUnitCoverage = parse("base_unit_coverage", r.BaseUnitCoverage)
	patch.TableLimitSector = parse("table_limit_sector", r.TableLimitSector)
	patch.InitialBankroll = parse("initial_bankroll", r.InitialBankroll)
	patch.SectorPayout = parse("sector_payout", r.SectorPayout)
	patch.CoveragePayout = parse("coverage_payout", r.CoveragePayout)
	patch.FibonacciSequence = r.FibonacciSequence
	patch.MaxFibonacciStep = r.MaxFibonacciStep

	if r.ActiveSectors != nil {
		sectors := make([]model.Sector, 0, len(r.ActiveSectors))
		for _, name := range r.ActiveSectors {
			s, err := model.ParseSector(name)
			if err != nil || s == model.SectorNone {
				errs = append(errs, fmt.Sprintf("active_sectors: unknown sector %q", name))
				continue
			}
			sectors = append(sectors, s)
		}
		patch.ActiveSectors = &sectors
	}

	if r.ActiveCoverage != nil {
		patch.ZeroSpiel = r.ActiveCoverage.ZeroSpiel
		patch.Orphelins = r.ActiveCoverage.Orphelins
	}

	return patch, errs
}

func (cfg *strategyConfig) Settings() model.Settings {
	return cfg.settings.Clone()
}

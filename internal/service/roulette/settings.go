package roulette

import (
	"roulette_backend/internal/model"

	"go.uber.org/zap"
)

// Settings Копия текущих настроек
func (s *serv) Settings() model.Settings {
	return s.sessionRepo.Settings()
}

// UpdateSettings применяет частичное обновление.
// Проверяются итоговые настройки целиком: при ошибке ничего не меняется.
// Новый стартовый банкролл вступает в силу при следующем сбросе сессии
func (s *serv) UpdateSettings(patch model.SettingsPatch) (model.Settings, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	merged := patch.Apply(s.sessionRepo.Settings())
	if err := merged.Validate(); err != nil {
		s.log.Info("settings rejected", zap.Error(err))
		return model.Settings{}, err
	}

	s.sessionRepo.SetSettings(merged)
	s.progressionRepo.SetActive(merged.ActiveSectorSet())
	s.progressionRepo.ClampIndex(merged.MaxFibonacciStep)

	s.log.Info("settings updated",
		zap.String("base_unit_sector", merged.BaseUnitSector.String()),
		zap.String("base_unit_coverage", merged.BaseUnitCoverage.String()),
		zap.Int("max_fibonacci_step", merged.MaxFibonacciStep),
		zap.String("table_limit", merged.TableLimitSector.String()),
		zap.Int("active_sectors", len(merged.ActiveSectors)),
		zap.Bool("zero_spiel", merged.ActiveCoverage.ZeroSpiel),
		zap.Bool("orphelins", merged.ActiveCoverage.Orphelins),
	)

	return merged, nil
}

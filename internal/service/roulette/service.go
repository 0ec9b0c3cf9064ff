package roulette

import (
	"sync"
	"time"

	"roulette_backend/internal/metrics"
	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	// Спины, отмена, сброс и смена настроек выполняются строго по одному
	mtx sync.Mutex

	progressionRepo repository.ProgressionRepository
	historyRepo     repository.HistoryRepository
	sessionRepo     repository.SessionRepository

	// Архив опционален: без PG_DSN оба поля nil
	archiveRepo repository.ArchiveRepository
	txManager   trm.Manager

	metrics *metrics.Metrics
	log     *zap.Logger
	now     func() time.Time
}

// NewRouletteService Создает сервис стратегии и сразу начинает новую сессию
func NewRouletteService(
	progressionRepo repository.ProgressionRepository,
	historyRepo repository.HistoryRepository,
	sessionRepo repository.SessionRepository,
	archiveRepo repository.ArchiveRepository,
	txManager trm.Manager,
	m *metrics.Metrics,
	log *zap.Logger,
) service.RouletteService {
	s := &serv{
		progressionRepo: progressionRepo,
		historyRepo:     historyRepo,
		sessionRepo:     sessionRepo,
		archiveRepo:     archiveRepo,
		txManager:       txManager,
		metrics:         m,
		log:             log,
		now:             time.Now,
	}
	s.startSession()
	return s
}

// startSession Новый ID, пустая история, прогрессия с нуля, баланс = стартовый банкролл из настроек
func (s *serv) startSession() model.SessionInfo {
	settings := s.sessionRepo.Settings()

	s.historyRepo.Clear()
	s.progressionRepo.Reset(settings.ActiveSectorSet())
	s.sessionRepo.Start(uuid.NewString(), s.now(), settings.InitialBankroll)
	s.metrics.Balance.Set(settings.InitialBankroll.InexactFloat64())

	return s.sessionRepo.Info()
}

// Session Текущее состояние сессии
func (s *serv) Session() model.SessionState {
	info := s.sessionRepo.Info()
	return model.SessionState{
		ID:              info.ID,
		StartTime:       info.StartTime,
		InitialBankroll: info.InitialBankroll,
		Balance:         s.sessionRepo.Balance(),
		Spins:           s.historyRepo.Len(),
	}
}

// History Копия истории спинов
func (s *serv) History() []model.SpinResult {
	return s.historyRepo.List()
}

// ProgressionStates Состояния прогрессии всех трансверсалей
func (s *serv) ProgressionStates() [6]model.ProgressionState {
	return s.progressionRepo.States()
}

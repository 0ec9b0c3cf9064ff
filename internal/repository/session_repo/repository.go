package session_repo

import (
	"sync"
	"time"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

type SessionRepo struct {
	mtx      sync.RWMutex
	info     model.SessionInfo
	balance  decimal.Decimal
	settings model.Settings
}

// NewSessionRepository Сессия с заданными настройками. Старт выполняется отдельно через Start
func NewSessionRepository(settings model.Settings) *SessionRepo {
	return &SessionRepo{
		settings: settings.Clone(),
	}
}

func (r *SessionRepo) Info() model.SessionInfo {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.info
}

// Start Начинает новую сессию: баланс становится равен стартовому банкроллу
func (r *SessionRepo) Start(id string, startTime time.Time, initialBankroll decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.info = model.SessionInfo{
		ID:              id,
		StartTime:       startTime,
		InitialBankroll: initialBankroll,
	}
	r.balance = initialBankroll
}

func (r *SessionRepo) Balance() decimal.Decimal {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.balance
}

func (r *SessionRepo) SetBalance(balance decimal.Decimal) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.balance = balance
}

// Settings Глубокая копия текущих настроек
func (r *SessionRepo) Settings() model.Settings {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return r.settings.Clone()
}

func (r *SessionRepo) SetSettings(settings model.Settings) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.settings = settings.Clone()
}

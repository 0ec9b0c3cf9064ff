package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionInfo Метаданные игровой сессии. InitialBankroll фиксируется при старте и сбросе
type SessionInfo struct {
	ID              string
	StartTime       time.Time
	InitialBankroll decimal.Decimal
}

// SessionState Текущее состояние сессии для клиента
type SessionState struct {
	ID              string          `json:"sessionId"`
	StartTime       time.Time       `json:"startTime"`
	InitialBankroll decimal.Decimal `json:"initialBankroll"`
	Balance         decimal.Decimal `json:"balance"`
	Spins           int             `json:"spins"`
}

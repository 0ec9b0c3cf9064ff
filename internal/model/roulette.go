package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BetKind string

const (
	BetKindSector   BetKind = "sector"
	BetKindCoverage BetKind = "coverage"
)

// BetPlacement Предлагаемая или рассчитанная ставка. После создания не меняется
type BetPlacement struct {
	Kind     BetKind         `json:"type"`
	Sector   Sector          `json:"sector,omitempty"`
	Coverage CoverageKind    `json:"coverage,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Numbers  []Number        `json:"numbers"`
}

// Target Имя цели ставки (LINE_31_36, ZERO_SPIEL)
func (b BetPlacement) Target() string {
	if b.Kind == BetKindCoverage {
		return b.Coverage.String()
	}
	return b.Sector.String()
}

// SkippedBet Трансверсаль, ставка на которую превысила лимит стола и не была предложена
type SkippedBet struct {
	Sector         Sector          `json:"sector"`
	FibonacciIndex int             `json:"fibonacciIndex"`
	Stake          decimal.Decimal `json:"stake"`
	TableLimit     decimal.Decimal `json:"tableLimit"`
}

// Proposal Ставки на следующий спин и трансверсали, пропущенные из-за лимита стола
type Proposal struct {
	Bets    []BetPlacement `json:"bets"`
	Skipped []SkippedBet   `json:"skipped"`
}

// TotalStake Сумма всех предложенных ставок
func (p Proposal) TotalStake() decimal.Decimal {
	total := decimal.Zero
	for _, b := range p.Bets {
		total = total.Add(b.Amount)
	}
	return total
}

// ProgressionState Состояние прогрессии Фибоначчи одной трансверсали
type ProgressionState struct {
	Sector            Sector `json:"id"`
	FibonacciIndex    int    `json:"fibonacciIndex"`
	Active            bool   `json:"isActive"`
	ConsecutiveLosses int    `json:"consecutiveLosses"`
	TotalWins         int    `json:"totalWins"`
	TotalLosses       int    `json:"totalLosses"`
}

// SectorOutcome Итог спина для одной трансверсали, на которую была ставка
type SectorOutcome struct {
	Sector Sector
	Won    bool
}

// SpinResult Результат спина. Хранится в истории и не меняется
type SpinResult struct {
	Number      Number          `json:"number"`
	WinningBets []BetPlacement  `json:"winningBets"`
	LosingBets  []BetPlacement  `json:"losingBets"`
	SkippedBets []SkippedBet    `json:"skippedBets,omitempty"`
	TotalWon    decimal.Decimal `json:"totalWon"`
	TotalLost   decimal.Decimal `json:"totalLost"`
	NetResult   decimal.Decimal `json:"netResult"`
	Balance     decimal.Decimal `json:"balance"`
}

// TotalStake Сумма всех ставок спина (выигравших и проигравших)
func (r SpinResult) TotalStake() decimal.Decimal {
	total := decimal.Zero
	for _, b := range r.WinningBets {
		total = total.Add(b.Amount)
	}
	for _, b := range r.LosingBets {
		total = total.Add(b.Amount)
	}
	return total
}

// SpinRecord Запись истории: результат + состояние прогрессии до спина (для точной отмены)
type SpinRecord struct {
	Result       SpinResult
	StatesBefore [6]ProgressionState
}

// SessionStats Статистика сессии
type SessionStats struct {
	TotalSpins          int             `json:"totalSpins"`
	TotalWagered        decimal.Decimal `json:"totalWagered"`
	TotalWon            decimal.Decimal `json:"totalWon"`
	TotalLost           decimal.Decimal `json:"totalLost"`
	NetProfit           decimal.Decimal `json:"netProfit"`
	HighestBet          decimal.Decimal `json:"highestBet"`
	LongestLosingStreak int             `json:"longestLosingStreak"`
	CurrentStreak       int             `json:"currentStreak"`
	ROI                 decimal.Decimal `json:"roi"`
	SkippedBets         int             `json:"skippedBets"`
	PendingSkipped      []SkippedBet    `json:"pendingSkipped,omitempty"`
	NextTotalStake      decimal.Decimal `json:"nextTotalStake"`
	CoveragePercentage  decimal.Decimal `json:"coveragePercentage"`
}

// WorstCaseScenario Прогноз серии проигрышей
type WorstCaseScenario struct {
	ConsecutiveLosses     int             `json:"consecutiveLosses"`
	TotalLoss             decimal.Decimal `json:"totalLoss"`
	FinalBet              decimal.Decimal `json:"finalBet"`
	FibonacciStepReached  int             `json:"fibonacciStepReached"`
	WouldExceedTableLimit bool            `json:"wouldExceedTableLimit"`
	WouldExceedBankroll   bool            `json:"wouldExceedBankroll"`
}

// HeatmapEntry Частота выпадения одного номера
type HeatmapEntry struct {
	Number            Number  `json:"number"`
	HitCount          int     `json:"hitCount"`
	LastSeenRoundsAgo int     `json:"lastSeenRoundsAgo"`
	Intensity         float64 `json:"intensity"`
	Color             Color   `json:"color"`
}

// CoverageInfo Какие номера закрыты текущей стратегией
type CoverageInfo struct {
	CoveredNumbers     []Number        `json:"coveredNumbers"`
	CoveragePercentage decimal.Decimal `json:"coveragePercentage"`
	Overlaps           []Number        `json:"overlaps"`
}

// SessionExport Выгрузка сессии
type SessionExport struct {
	SessionID  string       `json:"sessionId"`
	StartTime  time.Time    `json:"startTime"`
	EndTime    time.Time    `json:"endTime"`
	Settings   Settings     `json:"settings"`
	History    []SpinResult `json:"history"`
	FinalStats SessionStats `json:"finalStats"`

	// Не входят в файл выгрузки, нужны архиву
	InitialBankroll decimal.Decimal `json:"-"`
	FinalBalance    decimal.Decimal `json:"-"`
}

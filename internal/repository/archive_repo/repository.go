package archive_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	sessionsTable      = "roulette_sessions"
	colID              = "id"
	colStartedAt       = "started_at"
	colEndedAt         = "ended_at"
	colInitialBankroll = "initial_bankroll"
	colFinalBalance    = "final_balance"
	colSettings        = "settings"
	colStats           = "final_stats"

	spinsTable   = "roulette_spins"
	colSessionID = "session_id"
	colSeq       = "seq"
	colNumber    = "number"
	colTotalWon  = "total_won"
	colTotalLost = "total_lost"
	colNet       = "net_result"
	colBalance   = "balance"
	colBets      = "bets"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewArchiveRepository(dbc *pgxpool.Pool) repository.ArchiveRepository {
	return &repo{
		dbc: dbc,
	}
}

// SaveSession - сохраняет сессию и все ее спины.
// Повторное сохранение той же сессии перезаписывает строки спинов.
// Должен вызываться внутри транзакции trm, иначе запросы уйдут напрямую в пул
func (r *repo) SaveSession(ctx context.Context, export model.SessionExport) error {
	tr := trmpgx.DefaultCtxGetter.DefaultTrOrDB(ctx, r.dbc)

	settingsJSON, err := json.Marshal(export.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	statsJSON, err := json.Marshal(export.FinalStats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	// Формируем запрос на вставку сессии
	query := sq.Insert(sessionsTable).
		Columns(colID, colStartedAt, colEndedAt, colInitialBankroll, colFinalBalance, colSettings, colStats).
		Values(export.SessionID, export.StartTime, export.EndTime, export.InitialBankroll, export.FinalBalance, string(settingsJSON), string(statsJSON)).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " +
			colEndedAt + " = EXCLUDED." + colEndedAt + ", " +
			colFinalBalance + " = EXCLUDED." + colFinalBalance + ", " +
			colSettings + " = EXCLUDED." + colSettings + ", " +
			colStats + " = EXCLUDED." + colStats).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	// Спины перезаписываются целиком: после отмены хвост истории короче
	del := sq.Delete(spinsTable).
		Where(sq.Eq{colSessionID: export.SessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = del.ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("delete spins: %w", err)
	}

	if len(export.History) == 0 {
		return nil
	}

	insert := sq.Insert(spinsTable).
		Columns(colSessionID, colSeq, colNumber, colTotalWon, colTotalLost, colNet, colBalance, colBets).
		PlaceholderFormat(sq.Dollar)

	for i, spin := range export.History {
		betsJSON, err := json.Marshal(spinBets{Winning: spin.WinningBets, Losing: spin.LosingBets, Skipped: spin.SkippedBets})
		if err != nil {
			return fmt.Errorf("marshal bets of spin %d: %w", i+1, err)
		}
		insert = insert.Values(export.SessionID, i+1, int(spin.Number), spin.TotalWon, spin.TotalLost, spin.NetResult, spin.Balance, string(betsJSON))
	}

	sqlStr, args, err = insert.ToSql()
	if err != nil {
		return err
	}
	if _, err = tr.Exec(ctx, sqlStr, args...); err != nil {
		return fmt.Errorf("insert spins: %w", err)
	}

	return nil
}

type spinBets struct {
	Winning []model.BetPlacement `json:"winning"`
	Losing  []model.BetPlacement `json:"losing"`
	Skipped []model.SkippedBet   `json:"skipped,omitempty"`
}

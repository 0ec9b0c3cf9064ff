package app

import (
	"context"

	rouletteAPI "roulette_backend/internal/api/roulette"
	"roulette_backend/internal/config"
	"roulette_backend/internal/config/env"
	"roulette_backend/internal/logger"
	"roulette_backend/internal/metrics"
	"roulette_backend/internal/repository"
	"roulette_backend/internal/repository/archive_repo"
	"roulette_backend/internal/repository/history_repo"
	"roulette_backend/internal/repository/progression_repo"
	"roulette_backend/internal/repository/session_repo"
	"roulette_backend/internal/service"
	"roulette_backend/internal/service/roulette"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const configPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Logging and metrics
	loggerCfg config.LoggerConfig
	log       *zap.Logger
	registry  *prometheus.Registry
	metrics   *metrics.Metrics

	// Roulette bits
	strategyCfg     config.StrategyConfig
	progressionRepo repository.ProgressionRepository
	historyRepo     repository.HistoryRepository
	sessionRepo     repository.SessionRepository
	archiveRepo     repository.ArchiveRepository
	rouletteServ    service.RouletteService
	rouletteHand    *rouletteAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

type Option func(*ServiceProvider)

// WithLogger подменяет логгер (CLI работает с тихим логгером)
func WithLogger(l *zap.Logger) Option {
	return func(sp *ServiceProvider) {
		sp.log = l
	}
}

// WithStrategyConfig подменяет настройки стратегии вместо config.yaml
func WithStrategyConfig(cfg config.StrategyConfig) Option {
	return func(sp *ServiceProvider) {
		sp.strategyCfg = cfg
	}
}

// WithRegistry отдельный реестр метрик
func WithRegistry(reg *prometheus.Registry) Option {
	return func(sp *ServiceProvider) {
		sp.registry = reg
	}
}

func NewServiceProvider(opts ...Option) *ServiceProvider {
	sp := &ServiceProvider{}
	for _, opt := range opts {
		opt(sp)
	}
	return sp
}

func (sp *ServiceProvider) LoggerCfg() config.LoggerConfig {
	if sp.loggerCfg == nil {
		cfg, err := env.NewLoggerConfig()
		if err != nil {
			panic("failed to get logger config: " + err.Error())
		}
		sp.loggerCfg = cfg
	}
	return sp.loggerCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.log == nil {
		cfg := sp.LoggerCfg()
		l, err := logger.New(cfg.ServiceName(), cfg.Env(), cfg.Level())
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.log = l
	}
	return sp.log
}

func (sp *ServiceProvider) Registry() *prometheus.Registry {
	if sp.registry == nil {
		sp.registry = prometheus.NewRegistry()
	}
	return sp.registry
}

func (sp *ServiceProvider) Metrics() *metrics.Metrics {
	if sp.metrics == nil {
		sp.metrics = metrics.New(sp.Registry())
	}
	return sp.metrics
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

// TXManager nil, если архив отключен
func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil && sp.PgConfig().Enabled() {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}
		sp.txManager = m
	}
	return sp.txManager
}

// ArchiveRepository nil, если архив отключен
func (sp *ServiceProvider) ArchiveRepository(ctx context.Context) repository.ArchiveRepository {
	if sp.archiveRepo == nil && sp.PgConfig().Enabled() {
		sp.archiveRepo = archive_repo.NewArchiveRepository(sp.DBClient(ctx))
	}
	return sp.archiveRepo
}

func (sp *ServiceProvider) StrategyCfg() config.StrategyConfig {
	if sp.strategyCfg == nil {
		cfg, err := env.NewStrategyConfigFromYAML(configPath)
		if err != nil {
			panic("failed to get strategy config: " + err.Error())
		}
		sp.strategyCfg = cfg
	}
	return sp.strategyCfg
}

func (sp *ServiceProvider) ProgressionRepository() repository.ProgressionRepository {
	if sp.progressionRepo == nil {
		sp.progressionRepo = progression_repo.NewProgressionRepository(sp.StrategyCfg().Settings().ActiveSectorSet())
	}
	return sp.progressionRepo
}

func (sp *ServiceProvider) HistoryRepository() repository.HistoryRepository {
	if sp.historyRepo == nil {
		sp.historyRepo = history_repo.NewHistoryRepository()
	}
	return sp.historyRepo
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessionRepo == nil {
		sp.sessionRepo = session_repo.NewSessionRepository(sp.StrategyCfg().Settings())
	}
	return sp.sessionRepo
}

func (sp *ServiceProvider) RouletteService(ctx context.Context) service.RouletteService {
	if sp.rouletteServ == nil {
		sp.rouletteServ = roulette.NewRouletteService(
			sp.ProgressionRepository(),
			sp.HistoryRepository(),
			sp.SessionRepository(),
			sp.ArchiveRepository(ctx),
			sp.TXManager(ctx),
			sp.Metrics(),
			sp.Logger(),
		)
	}
	return sp.rouletteServ
}

func (sp *ServiceProvider) RouletteHandler(ctx context.Context) *rouletteAPI.Handler {
	if sp.rouletteHand == nil {
		sp.rouletteHand = rouletteAPI.NewHandler(rouletteAPI.HandlerDeps{
			Serv: sp.RouletteService(ctx),
			Log:  sp.Logger(),
		})
	}
	return sp.rouletteHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(middleware.Recoverer)

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			ExposedHeaders:   []string{"Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Roulette endpoints
		h := sp.RouletteHandler(ctx)
		r.Route("/roulette", func(rr chi.Router) {
			rr.Get("/session", h.Session)
			rr.Get("/bets", h.Bets)
			rr.Post("/spin", h.Spin)
			rr.Post("/undo", h.Undo)
			rr.Post("/reset", h.Reset)
			rr.Get("/settings", h.GetSettings)
			rr.Patch("/settings", h.UpdateSettings)
			rr.Get("/progression", h.Progression)
			rr.Get("/stats", h.Stats)
			rr.Get("/heatmap", h.Heatmap)
			rr.Get("/worst-case", h.WorstCase)
			rr.Get("/coverage", h.Coverage)
			rr.Get("/export/json", h.ExportJSON)
			rr.Get("/export/csv", h.ExportCSV)
			rr.Post("/archive", h.Archive)
		})

		r.Handle("/metrics", metrics.Handler(sp.Registry()))

		sp.router = r
	}

	return sp.router
}

// Close освобождает пул соединений, если он создавался
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.log != nil {
		_ = sp.log.Sync()
	}
}

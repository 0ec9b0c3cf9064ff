package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"roulette_backend/internal/config"

	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = NewServiceProvider()
}

func (s *App) Run() error {
	err := config.Load(".env")
	if err != nil {
		log.Printf("Error loading .env file: %v", err)
	}
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := s.ServiceProvider.Router(ctx)
	l := s.ServiceProvider.Logger()

	srv := &http.Server{
		Addr:    s.ServiceProvider.HTTPCfg().Address(),
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		l.Info("starting server", zap.String("addr", srv.Addr), zap.Bool("archive", s.ServiceProvider.PgConfig().Enabled()))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Shift Coach API
//
// REST API that scores sleep, rosters and daily check-ins for shift workers
// and turns them into a daily coaching tip.
//
//	@title			Shift Coach API
//	@version		1.0
//	@description	Wellness scoring and coaching for shift workers.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User profile endpoints
//
//	@tag.name			sleep-logs
//	@tag.description	Sleep session tracking endpoints
//
//	@tag.name			shifts
//	@tag.description	Roster endpoints
//
//	@tag.name			daily-logs
//	@tag.description	Mood, water and caffeine check-ins
//
//	@tag.name			wellness
//	@tag.description	Body clock, sleep debt, fuel and step scores
//
//	@tag.name			coach
//	@tag.description	Coaching state, daily tip and tip feedback
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/shift-coach/internal/api"
	"github.com/blaisecz/shift-coach/internal/api/handler"
	"github.com/blaisecz/shift-coach/internal/app"
	"github.com/blaisecz/shift-coach/internal/config"
	"github.com/blaisecz/shift-coach/internal/logger"
	"github.com/blaisecz/shift-coach/internal/telemetry"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, cfg.ServiceName)
	if err != nil {
		log.Fatal("failed to initialise tracing", zap.Error(err))
	}

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to start", zap.Error(err))
	}

	svc := a.Services
	router := api.NewRouter(api.Handlers{
		User:     handler.NewUserHandler(svc.User, log),
		SleepLog: handler.NewSleepLogHandler(svc.SleepLog, log),
		Shift:    handler.NewShiftHandler(svc.Shift, log),
		DailyLog: handler.NewDailyLogHandler(svc.DailyLog, log),
		Wellness: handler.NewWellnessHandler(svc.Wellness, log),
		Coach:    handler.NewCoachHandler(svc.Coach, log),
	}, log)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting server", zap.String("addr", srv.Addr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", zap.Error(err))
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", zap.Error(err))
	}
	if err := a.Close(shutdownCtx); err != nil {
		log.Warn("closing resources", zap.Error(err))
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
}

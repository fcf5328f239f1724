package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	cronjob "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/cron"
	authrepo "github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/repository"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	inj := bootstrap.BuildContainer(cfg)
	logger := do.MustInvoke[*zap.Logger](inj)
	defer logger.Sync()

	closers := do.MustInvoke[*bootstrap.Closers](inj)
	defer closers.CloseAll(logger)

	router, err := do.Invoke[*gin.Engine](inj)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}

	// in-process sessions need a sweeper; Redis expires keys itself
	var scheduler *cronjob.Scheduler
	if mem, ok := do.MustInvoke[authrepo.SessionRepository](inj).(*authrepo.MemorySessions); ok {
		scheduler = cronjob.NewScheduler(logger)
		if err := scheduler.ScheduleSweep(cronjob.DefaultSweepSpec, mem); err != nil {
			logger.Fatal("failed to schedule session sweep", zap.Error(err))
		}
		scheduler.Start()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.Store.Driver),
			zap.String("auth", cfg.Auth.Provider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Stop()
	}
}

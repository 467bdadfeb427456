package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/organiks/internal/config"
	"github.com/mamadbah2/organiks/internal/repository"
	"github.com/mamadbah2/organiks/internal/repository/memory"
	"github.com/mamadbah2/organiks/internal/repository/mongodb"
	"github.com/mamadbah2/organiks/internal/repository/sheets"
	"github.com/mamadbah2/organiks/internal/repository/sqlite"
	"github.com/mamadbah2/organiks/internal/scheduler"
	"github.com/mamadbah2/organiks/internal/server/handlers"
	"github.com/mamadbah2/organiks/internal/server/router"
	recordsvc "github.com/mamadbah2/organiks/internal/service/records"
	reportingsvc "github.com/mamadbah2/organiks/internal/service/reporting"
	whatsappclient "github.com/mamadbah2/organiks/pkg/clients/whatsapp"
	"github.com/mamadbah2/organiks/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	location, err := cfg.Reporting.Location()
	if err != nil {
		baseLogger.Fatal("invalid reporting timezone", zap.Error(err))
	}

	var (
		repo  *repository.Repository
		sinks reportingsvc.Sinks
	)
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		repo = memory.New()
		baseLogger.Warn("using in-memory storage, records are lost on restart")
	case config.BackendSQLite:
		sqliteRepo, err := sqlite.NewSQLiteRepository(context.Background(), cfg.SQLite.Path, baseLogger.Named("repo.sqlite"))
		if err != nil {
			baseLogger.Fatal("failed to init sqlite repository", zap.Error(err))
		}
		defer func() {
			if err := sqliteRepo.Close(); err != nil {
				baseLogger.Error("failed to close sqlite database", zap.Error(err))
			}
		}()
		repo = sqliteRepo.Repository()
		sinks.Archive = sqliteRepo
	default:
		mongoRepo, err := mongodb.NewMongoDBRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName, baseLogger.Named("repo.mongodb"))
		if err != nil {
			baseLogger.Fatal("failed to init mongodb repository", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		repo = mongoRepo.Repository()
		sinks.Archive = mongoRepo
	}

	if cfg.Sheets.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		sinks.Sheet = sheetsRepo
	} else {
		baseLogger.Warn("google sheets not configured, reports will not be mirrored")
	}

	if cfg.WhatsApp.Enabled() {
		sinks.Notifier = whatsappclient.NewClient(cfg.WhatsApp)
		sinks.Recipient = cfg.WhatsApp.ManagerID
	} else {
		baseLogger.Warn("whatsapp not configured, daily reports will not be messaged")
	}

	recordService := recordsvc.NewService(repo, baseLogger.Named("svc.records"))
	reportingService := reportingsvc.NewService(recordService, sinks, location, baseLogger.Named("svc.reporting"))

	engine := router.New(
		handlers.NewRecordHandler(recordService, baseLogger.Named("handlers.records")),
		handlers.NewReportHandler(reportingService, baseLogger.Named("handlers.reports")),
		baseLogger.Named("router"),
	)

	sched := scheduler.NewScheduler(cfg.Reporting.CronSchedule, location, reportingService, baseLogger.Named("scheduler"))
	if err := sched.Start(); err != nil {
		baseLogger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

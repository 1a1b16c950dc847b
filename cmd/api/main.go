package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "tasktracker/internal/adapter/db"
	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	httpmiddleware "tasktracker/internal/adapter/http/middleware"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/logger"
	"tasktracker/pkg/translator"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	log, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(log)
	defer func() {
		if err := log.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageEs},
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", zap.String("driver", cfg.DbDriver), zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close database connection", zap.Error(err))
		}
	}()

	if cfg.AutoMigrate {
		if err := dbadapter.Migrate(ctx, db); err != nil {
			log.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	taskRepository, err := dbadapter.NewTaskRepository(db)
	if err != nil {
		log.Fatal("failed to create task repository", zap.Error(err))
	}
	taskService := appservice.NewTaskService(taskRepository)

	routeHandlers := httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, cfg.AppName, cfg.AppVersion),
		Tasks: handlers.NewTaskHandler(taskService, domain.PageLimits{
			DefaultSize: cfg.DefaultPageSize,
			MaxSize:     cfg.MaxPageSize,
		}),
	}
	if cfg.EnableDiagnostics {
		routeHandlers.Diagnostics = handlers.NewDiagnosticsHandler()
	}

	gin.SetMode(cfg.GinMode)
	r, err := httpadapter.NewRouter(httpadapter.RouterConfig{
		BasePath:       cfg.APIBasePath,
		TrustedProxies: cfg.TrustedProxies,
		Logger:         log,
		Metrics:        httpmiddleware.NewMetrics("tasktracker"),
	}, routeHandlers)
	if err != nil {
		log.Fatal("failed to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("starting server",
			zap.String("addr", srv.Addr),
			zap.String("driver", db.DriverName()),
			zap.String("base_path", cfg.APIBasePath),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("could not start server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}

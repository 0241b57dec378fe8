// Package server wires the application together: configuration, storage
// backend selection, the audio blob store, services, and the HTTP server,
// plus signal-driven graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"digidiary/internal/logging"
	"digidiary/internal/server/auth"
	"digidiary/internal/server/blob"
	"digidiary/internal/server/config"
	"digidiary/internal/server/httpapi"
	"digidiary/internal/server/repositories/repomanager"
	"digidiary/internal/server/restdata"
	"digidiary/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := newRepositoryManager(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	blobs, err := blob.NewS3Store(ctx, blob.S3Config{
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Bucket:       cfg.S3Bucket,
		Region:       cfg.S3Region,
		BaseEndpoint: cfg.S3BaseEndpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	jwt := auth.NewJWTManager([]byte(cfg.SecretKey))

	userService := services.NewUserService(repos, jwt, cfg.AccessTokenValidityDuration)
	entryService := services.NewEntryService(repos.Entries())
	todoService := services.NewTodoService(repos.Todos())
	taskService := services.NewTaskService(repos.Tasks())
	moodService := services.NewMoodService(repos.Moods())
	noteService := services.NewNoteService(repos.Notes(), blobs, logger)

	srv := httpapi.New(logger, jwt,
		userService, entryService, todoService, taskService, moodService, noteService,
		httpapi.Options{
			Addr:          cfg.EndpointAddr,
			AudioMaxBytes: cfg.AudioMaxBytes,
		})

	return &App{config: cfg, logger: logger, repos: repos, server: srv}, nil
}

func newRepositoryManager(ctx context.Context, cfg *config.Config) (repomanager.RepositoryManager, error) {
	switch cfg.StoreBackend {
	case config.BackendRest:
		return repomanager.NewRestManager(restdata.Config{
			BaseURL:      cfg.RestBaseURL,
			APIKey:       cfg.RestAPIKey,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		}), nil
	case config.BackendPostgres:
		return repomanager.NewPostgresManager(ctx, cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "backend", app.config.StoreBackend)

	app.initSignalHandler(cancelFunc)

	err := app.server.Run(ctx)

	if closeErr := app.repos.Close(); closeErr != nil {
		app.logger.Error(ctx, "store close error", "error", closeErr)
	}
	return err
}

// Package server initializes and runs the case intake server.
// It selects the image storage backend, wires the intake services and
// handles graceful shutdown of the HTTP endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/caseintake/internal/logging"
	"github.com/dmitrijs2005/caseintake/internal/server/config"
	"github.com/dmitrijs2005/caseintake/internal/server/httpapi"
	"github.com/dmitrijs2005/caseintake/internal/server/mail"
	"github.com/dmitrijs2005/caseintake/internal/server/migrations"
	"github.com/dmitrijs2005/caseintake/internal/server/repositories/images"
	"github.com/dmitrijs2005/caseintake/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *httpapi.HTTPServer
	db     *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	repo, db, err := newImageRepository(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	mailer := mail.NewResendMailer(cfg.ResendAPIKey, nil)

	srv := httpapi.NewHTTPServer(
		httpapi.Options{
			Address:       cfg.EndpointAddr,
			PublicBaseURL: cfg.PublicBaseURL,
			ReadTimeout:   cfg.ReadTimeout,
			WriteTimeout:  cfg.WriteTimeout,
		},
		services.NewImageService(repo),
		services.NewSubmissionService(),
		services.NewNotificationService(mailer, cfg.EmailFrom, cfg.EmailRecipients),
		logger,
	)

	return &App{config: cfg, logger: logger, server: srv, db: db}, nil
}

// newImageRepository selects the storage backend: Postgres when a DSN is
// configured, S3 when a base endpoint is configured, in-memory otherwise.
func newImageRepository(ctx context.Context, cfg *config.Config, logger logging.Logger) (images.Repository, *sql.DB, error) {

	if cfg.DatabaseDSN != "" {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db open error: %w", err)
		}

		// the database container may still be starting
		backoff := retry.WithMaxRetries(5, retry.NewConstant(1*time.Second))
		err = retry.Do(ctx, backoff, func(ctx context.Context) error {
			if err := db.PingContext(ctx); err != nil {
				return retry.RetryableError(err)
			}
			return nil
		})
		if err != nil {
			return nil, nil, fmt.Errorf("db ping error: %w", err)
		}

		goose.SetBaseFS(migrations.Migrations)
		if err := goose.UpContext(ctx, db, "."); err != nil {
			return nil, nil, fmt.Errorf("db migration error: %w", err)
		}

		logger.Info(ctx, "Using Postgres image store")
		return images.NewPostgresRepository(db), db, nil
	}

	if cfg.S3BaseEndpoint != "" {
		repo, err := images.NewS3Repository(ctx, images.S3Options{
			User:         cfg.S3RootUser,
			Password:     cfg.S3RootPassword,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("s3 init error: %w", err)
		}
		logger.Info(ctx, "Using S3 image store", "bucket", cfg.S3Bucket)
		return repo, nil, nil
	}

	logger.Info(ctx, "Using in-memory image store")
	return images.NewInMemoryRepository(), nil, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "DB close error", "error", err)
		}
	}
}

package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/DRSN-tech/catalog-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/catalog-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/catalog-backend/internal/delivery/v1/ws"
	"github.com/DRSN-tech/catalog-backend/internal/repository/pgdb"
	sqliteRepo "github.com/DRSN-tech/catalog-backend/internal/repository/sqlite"
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/closer"
	"github.com/DRSN-tech/catalog-backend/pkg/e"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/DRSN-tech/catalog-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	c := closer.NewCloser(0)

	// Каталог товаров — PostgreSQL
	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	c.Add(func(ctx context.Context) error {
		db.Close()
		logger.Infof("postgres pool closed")
		return nil
	})

	// Журнал чата — отдельная SQLite-база; хранилища друг о друге не знают
	chatDB, err := sqliteRepo.Open(cfg.Chat.Path)
	if err != nil {
		logger.Errorf(err, "failed to open chat database")
		os.Exit(1)
	}
	c.Add(func(ctx context.Context) error {
		return chatDB.Close()
	})

	productRepo := pgdb.NewProductRepo(db.Pool)
	messageRepo := sqliteRepo.NewMessageRepo(chatDB)

	schemaCtx, schemaCancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = messageRepo.EnsureSchema(schemaCtx)
	schemaCancel()
	if err != nil {
		logger.Errorf(err, "failed to ensure chat schema")
		os.Exit(1)
	}

	catalogUC := usecase.NewCatalogUC(productRepo, logger)
	chatUC := usecase.NewChatUC(messageRepo, logger)

	hub := ws.NewHub()
	c.Add(func(ctx context.Context) error {
		hub.CloseAll()
		logger.Infof("ws sessions closed")
		return nil
	})
	realtime := ws.NewHandler(hub, catalogUC, chatUC, cfg.Ws, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, realtime)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	c.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown: ресурсы закрываются в обратном порядке регистрации ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := c.Close(shutdownCtx); err != nil {
		logger.Errorf(err, "shutdown error")
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db, logger)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}

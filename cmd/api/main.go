package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/encoder"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi"
	storagehandler "github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/storage"
	uploadhandler "github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/handlers/http/chi/v1/upload"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/ipfs"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/adapters/repository/postgres"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/config"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/port"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/cleanup"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/status"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/storage"
	"github.com/Mantequilla-Soft/3speakuploadservice/internal/core/service/upload"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//adapters
	ipfsAdapter := ipfs.NewAdapter(cfg.IPFS, logger)
	diskProber := ipfs.NewDiskProber()
	encoderGateway := encoder.NewGateway(cfg.Encoder, logger)

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	//services
	uploadService := upload.NewUploadService(unitOfWork, ipfsAdapter, cfg.Upload, logger)
	statusService := status.NewStatusService(unitOfWork, encoderGateway, logger)
	storageService := storage.NewStorageService(ipfsAdapter, diskProber, unitOfWork, cfg.IPFS, logger)
	cleanupService := cleanup.NewCleanupService(unitOfWork, logger)

	//http
	uploadHandler := uploadhandler.NewUploadHandlerV1(uploadService, statusService, logger)
	storageHandler := storagehandler.NewStorageHandlerV1(storageService, logger)

	router := chi.NewRouter(logger, uploadHandler, storageHandler, cfg.StorageAdmin, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init session reaper task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initReaperTask(ctx, cleanupService, cfg.Upload.ReaperEvery, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initReaperTask(ctx context.Context, service port.CleanupService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("session reaper initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("session reaper starting")
			err := service.CleanupExpiredSessions(ctx, time.Now())
			if err != nil {
				logger.Error("failed to reap expired sessions", "error", err)
			} else {
				logger.Info("session reaper completed successfully")
			}
		case <-ctx.Done():
			logger.Info("session reaper stopped")
			return
		}
	}

}

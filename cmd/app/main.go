package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pharmahub/backend/internal/address"
	apiHttp "github.com/pharmahub/backend/internal/api/http"
	"github.com/pharmahub/backend/internal/cache"
	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/db"
	"github.com/pharmahub/backend/internal/metrics"
	"github.com/pharmahub/backend/internal/queue/asynqserver"
	queueClient "github.com/pharmahub/backend/internal/queue/client"
	"github.com/pharmahub/backend/internal/repository"
	"github.com/pharmahub/backend/internal/server"
	"github.com/pharmahub/backend/internal/service"
	"github.com/pharmahub/backend/internal/service/licensecheck"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/worker"
	"github.com/pharmahub/backend/pkg/auth"
	"github.com/pharmahub/backend/pkg/email/smtp"
	"github.com/pharmahub/backend/pkg/hash"
	"github.com/pharmahub/backend/pkg/logger"
	"github.com/pharmahub/backend/pkg/otp"
)

const addressSourceMySQL = "mysql"

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	if _, err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		log.Fatalf("logger init failed: %s", err)
	}
	defer logger.Sync()

	logger.Info("starting signup api", zap.String("env", cfg.Env))
	logger.Debug("debug messages are enabled")

	// Init database
	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		logger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			logger.Error("error when closing mysql", zap.Error(err))
		}
	}()
	logger.Info("mysql connection done")

	redisClient, err := cache.NewRedis(cfg.Cache)
	if err != nil {
		logger.Fatal("redis connect problem", zap.Error(err))
	}
	defer func() { _ = redisClient.Close() }()
	store := cache.NewStore(redisClient, "pharmahub:")

	repos := repository.NewRepositories(dbMySQL)

	var gazetteer address.Gazetteer
	if cfg.Address.Source == addressSourceMySQL {
		gazetteer = repos.Gazetteer
	} else {
		gazetteer, err = address.NewEmbedded()
		if err != nil {
			logger.Fatal("embedded address data is broken", zap.Error(err))
		}
	}
	addresses := address.NewCached(gazetteer, store, cfg.Cache.AddressTTL)

	hasher := hash.NewBcryptHasher(cfg.Auth.PasswordPepper, cfg.Auth.BcryptCost)

	tokenManager, err := auth.NewManager(cfg.Auth.JWT)
	if err != nil {
		logger.Fatal("auth manager creation err", zap.Error(err))
	}

	emailSender, err := smtp.NewSMTPSender(cfg.SMTP.From, cfg.SMTP.Pass, cfg.SMTP.Host, cfg.SMTP.Port)
	if err != nil {
		logger.Fatal("smtp sender creation failed", zap.Error(err))
	}

	// Queue
	asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
	defer func() { _ = asynqClient.Close() }()
	restoreClient := queueClient.SetClient(asynqClient)
	defer restoreClient()

	workers := worker.NewWorkers(worker.Deps{
		EmailProvider:   emailSender,
		Config:          cfg,
		LicenseRegistry: licensecheck.NewClient(cfg.LicenseCheck.BaseURL, cfg.LicenseCheck.Timeout),
		Tenants:         repos.Tenants,
	})
	queueServer, mux := asynqserver.New(cfg, workers)

	// Services & API Handlers
	appMetrics := metrics.New(nil)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hasher,
		TokenManager: tokenManager,
		OtpGenerator: otp.NewGOTPGenerator(),
		Repos:        repos,
		Queue:        queueClient.Enqueuer{},
		Cooldowns:    store,
		Addresses:    addresses,
		Uploader:     storage.NewUploader(cfg.Storage, repos.Documents),
		Metrics:      appMetrics,
	})
	registry := services.Signup.Registry()
	appMetrics.TrackActiveSessions(registry.Len)

	handlers := apiHttp.NewHandlers(services, cfg, nil)
	srv := server.NewServer(cfg, handlers.Init(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server started", zap.String("port", cfg.HttpServer.Port))
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("queue server started")
		return queueServer.Start(mux)
	})

	g.Go(func() error {
		registry.RunSweeper(gctx, cfg.Wizard.SweepInterval, appMetrics.SessionsExpired)
		return nil
	})

	// Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()

		const timeout = 5 * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		queueServer.Shutdown()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("app stopped with error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("app stopped")
}

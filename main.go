package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/example/proctor-ai/internal/auth"
	"github.com/example/proctor-ai/internal/config"
	"github.com/example/proctor-ai/internal/dispatch"
	"github.com/example/proctor-ai/internal/grpcclient"
	"github.com/example/proctor-ai/internal/handlers"
	"github.com/example/proctor-ai/internal/logging"
	"github.com/example/proctor-ai/internal/pipeline"
	"github.com/example/proctor-ai/internal/repository"
	"github.com/example/proctor-ai/internal/stream"
	"github.com/example/proctor-ai/internal/usecase"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger, err := logging.NewLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := config.Load()

	db := initDatabase(ctx, cfg, logger)
	repo := repository.NewSessionRepository(db, logger)
	if err := repo.AutoMigrate(ctx); err != nil {
		logger.Fatal("auto migrate failed", zap.Error(err))
	}

	redisCtx, redisCancel := context.WithTimeout(ctx, 5*time.Second)
	defer redisCancel()
	redisClient := initRedis(redisCtx, cfg, logger)

	inference, conn, err := grpcclient.Dial(ctx, cfg.InferenceAddr, logger)
	if err != nil {
		logger.Fatal("failed to connect to inference sidecar", zap.Error(err))
	}
	defer conn.Close()

	dispatcher := dispatch.New(repo, cfg.EvidenceQueueLen, logger)
	defer dispatcher.Close()

	cache := usecase.NewRedisCache(redisClient)
	uc := usecase.NewSessionUseCase(repo, cache, logger)

	pipelineCfg := pipeline.Config{
		ConfidenceFloor: cfg.ConfidenceFloor,
		EARThreshold:    cfg.EARThreshold,
		HeadMoveMinPx:   cfg.HeadMoveMinPx,
	}
	streamHandler := stream.NewHandler(repo, func(session *repository.StudentSession) stream.FrameProcessor {
		return pipeline.New(session.ID, inference, inference, dispatcher, pipelineCfg, logger)
	}, logger)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.MaxMultipartMemory = handlers.MaxUploadSize

	authMiddleware := auth.JWTMiddleware(cfg.JWTSecret, cfg.JWTAudience)
	apiKeyMiddleware := auth.APIKeyMiddleware(cfg.ServiceAPIKey)

	checks := handlers.HealthChecks{
		"postgres": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
	}

	handlers.RegisterRoutes(r, uc, authMiddleware, apiKeyMiddleware, checks)
	streamHandler.Register(r)
	r.GET("/api/metrics/stream", func(c *gin.Context) {
		c.JSON(http.StatusOK, streamHandler.Metrics().Snapshot())
	})

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	logger.Info("proctoring API listening", zap.String("addr", cfg.HTTPAddr))
	if err := serveHTTPServer(server, 15*time.Second, logger); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func initDatabase(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) *gorm.DB {
	logMode := gormlogger.Warn
	if cfg.IsDev() {
		logMode = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{Logger: gormlogger.Default.LogMode(logMode)})
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to access db handle", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.PingContext(ctx); err != nil {
		zapLogger.Fatal("database ping failed", zap.Error(err))
	}

	return db
}

func initRedis(ctx context.Context, cfg *config.Config, zapLogger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	return client
}

func serveHTTPServer(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, nil, nil)
}

func serveHTTPServerWithListener(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener) error {
	return serveHTTPServerWithOptions(server, shutdownTimeout, logger, listener, nil)
}

func serveHTTPServerWithOptions(server *http.Server, shutdownTimeout time.Duration, logger *zap.Logger, listener net.Listener, signalCh <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		var err error
		if listener != nil {
			err = server.Serve(listener)
		} else {
			err = server.ListenAndServe()
		}
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	var (
		sigCh       <-chan os.Signal
		stopSignals func()
	)

	if signalCh != nil {
		sigCh = signalCh
		stopSignals = func() {}
	} else {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		sigCh = ch
		stopSignals = func() {
			signal.Stop(ch)
		}
	}
	defer stopSignals()

	select {
	case err := <-errCh:
		return err
	case sig, ok := <-sigCh:
		if !ok {
			return <-errCh
		}
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return <-errCh
	}
}

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"talent-hub-backend/config"
	_ "talent-hub-backend/docs" // Important for Swagger
	"talent-hub-backend/internal/delivery/http/middleware"
	v1 "talent-hub-backend/internal/delivery/http/v1"
	"talent-hub-backend/internal/repository/memory"
	"talent-hub-backend/internal/usecase"
	"talent-hub-backend/pkg/logger"
	redisclient "talent-hub-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Talent Hub API
// @version         1.0
// @description     Jobs, candidates and assessments for the talent hub client.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting talent hub backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Storage
	storage := memory.NewStorage()
	if cfg.SeedData {
		summary := memory.Seed(ctx, storage)
		logger.Log.Info("Sample data loaded",
			"jobs", summary.Jobs,
			"candidates", summary.Candidates,
			"assessments", summary.Assessments,
		)
	}

	// 4. Setup Redis (optional)
	var rdb *goredis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisclient.Connect(ctx, redisclient.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
			rdb = nil
		} else {
			defer rdb.Close()
			logger.Log.Info("Redis connected for rate limiting")
		}
	}

	limiter := middleware.NewRateLimiter(
		middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, cfg.RateLimitWindow()),
		rdb,
	)
	limiter.StartCleanup(ctx, cfg.RateLimitWindow())

	// 5. Setup UseCases
	validate := validator.New()
	jobUC := usecase.NewJobUsecase(storage.Jobs)
	candidateUC := usecase.NewCandidateUsecase(storage.Candidates, validate)
	assessmentUC := usecase.NewAssessmentUsecase(storage.Assessments)

	var redisAvailable func() bool
	if rdb != nil {
		redisAvailable = func() bool { return redisclient.IsAvailable(rdb) }
	}
	healthUC := usecase.NewHealthUsecase(storage, redisAvailable)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobUC:        jobUC,
		CandidateUC:  candidateUC,
		AssessmentUC: assessmentUC,
		HealthUC:     healthUC,
		RateLimiter:  limiter,
		Config:       cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// File: cpicareers/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpicareers/config"
	"cpicareers/cron"
	"cpicareers/database"
	applicationRepo "cpicareers/database/repository/application"
	jobPostingRepo "cpicareers/database/repository/jobposting"
	slotRepo "cpicareers/database/repository/slot"
	"cpicareers/handlers"
	"cpicareers/middleware"
	"cpicareers/routes"
	"cpicareers/services/applications"
	"cpicareers/services/intake"
	"cpicareers/services/jobs"
	"cpicareers/services/slots"
	"cpicareers/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	if err := utils.InitCache(rootCtx); err != nil {
		logger.Fatal("main: failed to connect to redis cache", zap.Error(err))
	}
	utils.StartHealthMonitor(rootCtx, utils.GetCacheClient(), database.MongoClient, 30*time.Second)

	cloudinaryStorageService, err := utils.Cloudinary(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// repositories.
	db := database.DB()
	slotsRepo := slotRepo.NewMongoSlotRepo(db)
	appsRepo := applicationRepo.NewMongoApplicationRepo(db)
	postingsRepo := jobPostingRepo.NewMongoJobPostingRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(rootCtx, 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"interview_slots": slotsRepo.EnsureIndexes,
		"applications":    appsRepo.EnsureIndexes,
		"job_postings":    postingsRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Warn("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	// services.
	queue := asynq.NewClient(cron.RedisOpt(cfg))
	defer queue.Close()

	slotService := slots.NewSlotService(slotsRepo, slots.NewRedisMonthCache(utils.GetCacheClient()), appsRepo, slots.Options{
		CacheTTL: cfg.SlotCacheTTL,
		Location: cfg.Location(),
		Logger:   logger.Named("slots"),
	})
	intakeService := intake.NewIntakeService(appsRepo, cloudinaryStorageService, queue, intake.Options{
		ReconcileAfter: cfg.ReconcileAfter,
		Logger:         logger.Named("intake"),
	})
	applicationService := applications.NewApplicationService(appsRepo, slotsRepo, logger.Named("applications"))
	jobService := jobs.NewJobService(postingsRepo)

	worker := cron.InitReconcileWorker(rootCtx, cfg, applicationService, logger.Named("worker"))

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewSlotHandler(slotService),
		handlers.NewApplicationHandler(intakeService, applicationService),
		handlers.NewJobHandler(jobService),
		cfg.JWTSecret,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

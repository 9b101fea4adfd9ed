package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studyplanner/config"
	"studyplanner/cron"
	"studyplanner/database"
	dayRepo "studyplanner/database/repository/day"
	homeworkRepo "studyplanner/database/repository/homework"
	subjectRepo "studyplanner/database/repository/subject"
	weekRepo "studyplanner/database/repository/week"
	"studyplanner/handlers"
	"studyplanner/middleware"
	"studyplanner/routes"
	"studyplanner/services/planner"
	"studyplanner/services/tasks"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	// repositories.
	days := dayRepo.NewMongoDayRepo()
	homework := homeworkRepo.NewMongoHomeworkRepo()
	mongoWeeks := weekRepo.NewMongoWeekRepo()
	subjects := subjectRepo.NewMongoSubjectRepo()

	if err := dayRepo.EnsureIndexes(days); err != nil {
		logger.Fatal("main: failed to ensure day indexes", zap.Error(err))
	}
	if err := homeworkRepo.EnsureIndexes(homework); err != nil {
		logger.Fatal("main: failed to ensure homework indexes", zap.Error(err))
	}
	if err := weekRepo.EnsureIndexes(mongoWeeks); err != nil {
		logger.Fatal("main: failed to ensure week indexes", zap.Error(err))
	}
	weeks := weekRepo.NewCachedWeekRepo(mongoWeeks, utils.GetCacheClient(), config.AppConfig.WeekCacheTTL, logger)

	// background reconciliation.
	queue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queue.Close()

	plannerService, err := planner.NewDefaultPlannerService(weeks, days, homework, subjects, tasks.NewAsynqEnqueuer(queue), logger)
	if err != nil {
		logger.Fatal("main: failed to build planner service", zap.Error(err))
	}
	worker := cron.InitReconcileWorker(plannerService, logger)

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, utils.GetCacheClient(), database.MongoClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlers.NewHandlerBundle(handlers.NewPlannerHandler(plannerService)))

	port := config.AppConfig.AppPort
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	worker.Shutdown()
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}

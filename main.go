// File: support-assistant/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"support-assistant/config"
	"support-assistant/cron"
	"support-assistant/database"
	meetingRepo "support-assistant/database/repository/meeting"
	slotRepo "support-assistant/database/repository/slot"
	"support-assistant/handlers"
	"support-assistant/middleware"
	"support-assistant/routes"
	"support-assistant/services/assistant"
	"support-assistant/services/guardrail"
	"support-assistant/services/intent"
	"support-assistant/services/knowledge"
	"support-assistant/services/notification"
	"support-assistant/services/scheduling"
	"support-assistant/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()
	utils.InitContextCache()

	// Mongo is optional; without it meetings live in memory and the
	// knowledge base has no retriever.
	var mongoClient *mongo.Client
	if config.AppConfig.DatabaseURL != "" {
		database.InitDB()
		mongoClient = database.MongoClient
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	inventory := slotRepo.NewMemoryInventory(
		config.AppConfig.SlotHorizonDays,
		config.AppConfig.BusinessHourStart,
		config.AppConfig.BusinessHourEnd,
	)
	var meetings meetingRepo.Repository
	if mongoClient != nil {
		meetings = meetingRepo.NewMongoMeetingRepo(config.AppConfig.DatabaseName)
	} else {
		meetings = meetingRepo.NewMemoryMeetingRepo()
	}

	// Services.
	guardrailSvc := guardrail.NewDefaultGuardrailService()
	detector := intent.NewDefaultDetector()

	notificationSvc := &notification.LogNotificationService{Logger: logger}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	reminders := &cron.AsynqReminderScheduler{Client: asynqClient}

	engine := &scheduling.DefaultSchedulingEngine{
		Inventory: inventory,
		Repo:      meetings,
		Notifier:  notificationSvc,
		Reminders: reminders,
		Logger:    logger,
	}

	knowledgeSvc := &knowledge.DefaultKnowledgeService{
		Cache:  knowledge.NewAnswerCache(utils.GetCacheClient(), 10*time.Minute),
		Logger: logger,
	}
	if mongoClient != nil {
		knowledgeSvc.Retriever = knowledge.NewMongoRetriever(config.AppConfig.DatabaseName)
	}
	if config.AppConfig.GeminiAPIKey != "" {
		knowledgeSvc.Generator = knowledge.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	} else {
		logger.Warn("GEMINI_API_KEY not set, chat answers degrade to a fallback message")
	}

	ctxStore := assistant.NewRedisContextStore(utils.GetContextCacheClient(), 30*time.Minute)
	assistantSvc := &assistant.DefaultAssistantService{
		Guardrail: guardrailSvc,
		Intent:    detector,
		Inventory: inventory,
		Knowledge: knowledgeSvc,
		Contexts:  ctxStore,
		Logger:    logger,
	}

	// Handlers.
	guardrailHandler := handlers.NewGuardrailHandler(guardrailSvc)
	intentHandler := handlers.NewIntentHandler(detector)
	meetingHandler := handlers.NewMeetingHandler(engine, inventory, logger)
	assistantHandler := handlers.NewAssistantHandler(assistantSvc, logger)

	handlerBundle := &handlers.HandlerBundle{
		ClassifyHandler:       guardrailHandler.ClassifyHandler,
		SanitizeHandler:       guardrailHandler.SanitizeHandler,
		GuardrailStatsHandler: guardrailHandler.StatsHandler,

		DetectIntentHandler: intentHandler.DetectHandler,

		QuerySlotsHandler:    meetingHandler.QuerySlotsHandler,
		ScheduleHandler:      meetingHandler.ScheduleHandler,
		CancelHandler:        meetingHandler.CancelHandler,
		MeetingStatusHandler: meetingHandler.StatusHandler,
		MeetingStatsHandler:  meetingHandler.StatsHandler,

		ChatQueryHandler: assistantHandler.QueryHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and health monitoring.
	cron.InitReminderWorker(engine, notificationSvc)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetContextCacheClient()}, mongoClient)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

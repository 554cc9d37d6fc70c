package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/handler"
	"quizdeck/internal/logger"
	"quizdeck/internal/middleware"
	"quizdeck/internal/repository"
	"quizdeck/internal/service"
	"quizdeck/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database and prepare the schema
	db, err := database.NewSQLXSQLiteDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		appLogger.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	// Initialize repositories
	quizRepository := repository.NewQuizDatabaseAdapter(db)
	attemptRepository := repository.NewAttemptDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize services
	quizService := service.NewQuizService(quizRepository, txManager)
	attemptService := service.NewAttemptService(attemptRepository, quizRepository)
	sessionService := service.NewSessionService(session.NewRegistry(), quizRepository, attemptService)

	// Initialize handlers
	quizHandler := handler.NewQuizHandler(quizService)
	attemptHandler := handler.NewAttemptHandler(attemptService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	validationMW := middleware.NewValidationMiddleware(cfg.Quiz.LeaderboardLimit)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Quiz.MaxUploadBytes,
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// Quiz routes. The static sample-csv route is registered before the
	// :id routes so it is never captured as a quiz ID.
	quizGroup := apiGroup.Group("/quizzes")
	quizGroup.Post("/", quizHandler.CreateQuiz)
	quizGroup.Get("/", quizHandler.ListQuizzes)
	quizGroup.Get("/sample-csv", quizHandler.DownloadSampleCSV)
	quizGroup.Get("/:id", validationMW.ValidateQuizID(), quizHandler.GetQuiz)
	quizGroup.Post("/:id/attempts", validationMW.ValidateQuizID(), attemptHandler.RecordAttempt)
	quizGroup.Get("/:id/leaderboard", validationMW.ValidateQuizID(), validationMW.ValidateLeaderboardParams(), attemptHandler.GetLeaderboard)
	quizGroup.Post("/:id/sessions", validationMW.ValidateQuizID(), sessionHandler.StartSession)

	// Session routes
	sessionGroup := apiGroup.Group("/sessions")
	sessionGroup.Get("/:id", sessionHandler.GetSession)
	sessionGroup.Post("/:id/select", sessionHandler.SelectOption)
	sessionGroup.Post("/:id/submit", sessionHandler.SubmitAnswer)
	sessionGroup.Post("/:id/next", sessionHandler.NextQuestion)
	sessionGroup.Post("/:id/result", sessionHandler.SaveResult)
	sessionGroup.Delete("/:id", sessionHandler.DeleteSession)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

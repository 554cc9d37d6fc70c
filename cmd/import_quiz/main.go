package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"quizdeck/internal/config"
	"quizdeck/internal/database"
	"quizdeck/internal/dto"
	"quizdeck/internal/logger"
	"quizdeck/internal/repository"
	"quizdeck/internal/service"

	"go.uber.org/zap"
)

// import_quiz loads a quiz CSV straight into the database, bypassing the
// HTTP server. Useful for seeding a fresh install.
func main() {
	filePath := flag.String("file", "", "path to the quiz CSV file")
	title := flag.String("title", "", "quiz title (defaults to the file name)")
	description := flag.String("description", "", "optional quiz description")
	flag.Parse()

	if *filePath == "" {
		fmt.Println("Usage: import_quiz -file questions.csv [-title \"My Quiz\"] [-description \"...\"]")
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger might not be initialized yet, so use fmt for this critical error
		fmt.Printf("Failed to load configuration: %v\n", err)
		return
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}
	defer logger.Sync()

	csvData, err := os.ReadFile(*filePath)
	if err != nil {
		logger.Get().Fatal("Failed to read CSV file", zap.String("file", *filePath), zap.Error(err))
	}

	if *title == "" {
		base := filepath.Base(*filePath)
		*title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	// Establish DB connection
	db, err := database.NewSQLXSQLiteDB(cfg.GetDSN())
	if err != nil {
		logger.Get().Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Bootstrap(db); err != nil {
		logger.Get().Fatal("Failed to prepare database schema", zap.Error(err))
	}

	quizRepo := repository.NewQuizDatabaseAdapter(db)
	txManager := repository.NewTransactionManagerAdapter(db)
	quizService := service.NewQuizService(quizRepo, txManager)

	ctx := context.Background()
	resp, err := quizService.CreateQuizFromCSV(ctx, &dto.CreateQuizRequest{
		Title:       *title,
		Description: *description,
	}, csvData)
	if err != nil {
		logger.Get().Fatal("Failed to import quiz", zap.Error(err))
	}

	fmt.Printf("Imported %q with %d questions (id %s)\n", resp.Title, resp.QuestionCount, resp.ID)
}

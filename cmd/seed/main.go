package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codeprep.net/internal/adapter/postgres/questionrepository"
	"gitlab.com/codeprep.net/internal/adapter/postgres/schema"
	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/domain"
	logger2 "gitlab.com/codeprep.net/internal/global/logger"
	"gitlab.com/codeprep.net/internal/seed"
)

// Usage: seed <env> [questions.yaml]
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	}
	if err := godotenv.Load(os.Args[1] + ".env"); err != nil {
		log.Fatalf("Error loading %s.env file", os.Args[1])
	}

	sysCfg := config.NewSystemConfig()
	logger2.Init(sysCfg.DebugMode)
	defer logger2.Sync()
	logger := logger2.Logger

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", sysCfg.PostgresConfig.Url)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := schema.Apply(ctx, db, sysCfg.PostgresConfig.Schema); err != nil {
		logger.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}

	questions, err := loadQuestions()
	if err != nil {
		logger.Error("Failed to load question bank", "error", err)
		os.Exit(1)
	}

	repo := questionrepository.NewQuestionRepository(db, logger, sysCfg.PostgresConfig.Schema)
	n, err := seed.NewSeeder(repo, logger).Run(ctx, questions)
	if err != nil {
		logger.Error("Seeding stopped", "written", n, "error", err)
		os.Exit(1)
	}
	logger.Info("Seed complete", "questions", n)
}

func loadQuestions() ([]*domain.Question, error) {
	if len(os.Args) < 3 {
		return seed.Default()
	}
	f, err := os.Open(os.Args[2])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}

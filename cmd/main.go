package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codeprep.net/internal/adapter/crypto"
	"gitlab.com/codeprep.net/internal/adapter/google"
	"gitlab.com/codeprep.net/internal/adapter/judge0"
	"gitlab.com/codeprep.net/internal/adapter/postgres/attemptrepository"
	"gitlab.com/codeprep.net/internal/adapter/postgres/contributionrepository"
	"gitlab.com/codeprep.net/internal/adapter/postgres/interviewrepository"
	"gitlab.com/codeprep.net/internal/adapter/postgres/questionrepository"
	"gitlab.com/codeprep.net/internal/adapter/postgres/userrepository"
	"gitlab.com/codeprep.net/internal/adapter/redis/questioncache"
	"gitlab.com/codeprep.net/internal/config"
	auth2 "gitlab.com/codeprep.net/internal/core/services/auth"
	"gitlab.com/codeprep.net/internal/core/services/coding"
	"gitlab.com/codeprep.net/internal/core/services/contribution"
	"gitlab.com/codeprep.net/internal/core/services/grading"
	"gitlab.com/codeprep.net/internal/core/services/interview"
	"gitlab.com/codeprep.net/internal/core/services/problem"
	logger2 "gitlab.com/codeprep.net/internal/global/logger"
	http2 "gitlab.com/codeprep.net/internal/http"
)

func main() {
	InitReader()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sysCfg := config.NewSystemConfig()
	logger2.Init(sysCfg.DebugMode)
	defer logger2.Sync()
	logger := logger2.Logger
	logger.Info("Starting codeprep service", "port", sysCfg.HTTPPort)

	db, err := setupDatabase(sysCfg.PostgresConfig)
	if err != nil {
		logger.Error("Failed to set up database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Url,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		// the cache falls back to postgres on every redis error
		logger.Warn("Redis unreachable, question cache degraded", "error", err)
	}

	// SECONDARY PORTS
	schema := sysCfg.PostgresConfig.Schema
	userPort := userrepository.New(db, logger, schema)
	questionRepo := questioncache.NewQuestionCache(
		questionrepository.NewQuestionRepository(db, logger, schema),
		redisClient, logger, sysCfg.RedisConfig.QuestionTTL)
	attemptRepo := attemptrepository.NewAttemptRepository(db, logger, schema)
	interviewRepo := interviewrepository.NewInterviewRepository(db, logger, schema)
	contributionRepo := contributionrepository.NewContributionRepository(db, logger, schema)
	executor := judge0.NewClient(sysCfg.Judge0Config, logger)
	identity := google.NewProvider(sysCfg.GGAuthConfig)

	//primary ports
	jwtProvider := crypto.NewJWTService(sysCfg.JwtConfig)

	//services
	grader := grading.NewGradingService(executor, logger, sysCfg.GradingSvcCfg.MaxParallel,
		grading.WithDeadline(sysCfg.GradingSvcCfg.Deadline))
	codingSvc := coding.NewCodingService(questionRepo, attemptRepo, grader, logger)
	problemSvc := problem.NewProblemService(questionRepo, logger)
	bank, err := interview.DefaultBank()
	if err != nil {
		logger.Error("Failed to load interview bank", "error", err)
		os.Exit(1)
	}
	interviewSvc := interview.NewInterviewService(bank, interviewRepo, logger)
	contributionSvc := contribution.NewContributionService(contributionRepo, sysCfg.ContributionsConfig, logger)
	ggAuth := auth2.NewGoogleAuthService(userPort, jwtProvider, sysCfg.GGAuthConfig)
	localAuth := auth2.NewLocalAuthService(userPort, jwtProvider)
	serviceProvider := http2.NewServiceProvider(
		codingSvc, problemSvc, interviewSvc, contributionSvc,
		ggAuth, localAuth, identity, sysCfg.GGAuthConfig,
		jwtProvider,
	)

	//server
	httpServer := http2.NewServer(sysCfg.HTTPPort, "codeprep", *serviceProvider, logger)
	httpServer.SetWriteTimeout(sysCfg.GradingSvcCfg.ResponseTimeout())
	if err := httpServer.Init(); err != nil {
		logger.Error("Failed to init http server", "error", err)
		os.Exit(1)
	}
	ctxBg, cancelBg := context.WithCancel(context.Background())
	defer cancelBg()
	errCh := httpServer.Start(ctxBg)

	select {
	case <-quit:
	case err := <-errCh:
		if err != nil {
			logger.Error("Server stopped unexpectedly", "error", err)
		}
	}
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Stop(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	logger.Info("successfully shutdown server")
}

// setupDatabase opens and pings the PostgreSQL connection
func setupDatabase(cfg *config.PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetConnMaxIdleTime(5 * time.Minute)
	return db, nil
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}

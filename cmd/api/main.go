// @title Text Quiz API
// @version 1.0
// @description Generates Japanese quiz questions from a short text.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "text-quiz/cmd/api/docs"
	"text-quiz/internal/adapter/quizgen"
	"text-quiz/internal/config"
	"text-quiz/internal/logger"
	"text-quiz/internal/server"
	"text-quiz/internal/service"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

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

	if cfg.File != "" {
		appLogger.Info("Using config file", zap.String("path", cfg.File))
	}

	// The provider call has no explicit timeout beyond the transport default.
	generator, err := quizgen.NewOpenAIQuizGenerator(cfg.LLM, &http.Client{}, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create quiz generator", zap.Error(err))
	}

	// API keys are looked up per request; a missing key is not a startup error.
	credentials := config.NewAPIKeyResolver(cfg.LLM.APIKeyEnvs)
	if _, ok := credentials.Resolve(); !ok {
		appLogger.Warn("No OpenAI API key found in environment; quiz generation will fail until one is set",
			zap.Strings("envs", cfg.LLM.APIKeyEnvs))
	}

	quizService := service.NewQuizService(generator, credentials)
	app := server.New(cfg.Server, quizService)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + strconv.Itoa(cfg.Server.Port)
		appLogger.Info("Starting server", zap.String("addr", addr), zap.String("env", os.Getenv("ENV")))
		return app.Listen(addr)
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

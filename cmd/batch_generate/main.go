// Command batch_generate generates quizzes for each text file given on the
// command line and writes one JSON result per line to stdout.
package main

import (
	"context"
	"encoding/json"
	"fmt" // For error printing before logger is up
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"text-quiz/internal/adapter/quizgen"
	"text-quiz/internal/config"
	"text-quiz/internal/logger"
	"text-quiz/internal/service"

	"go.uber.org/zap"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: batch_generate FILE...")
		os.Exit(2)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the results
	cfg.Logger.Output = "stderr"
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.File != "" {
		logger.Get().Info("Using config file", zap.String("path", cfg.File))
	}

	logger.Get().Info("Batch process starting up...", zap.Int("files", len(os.Args)-1))

	generator, err := quizgen.NewOpenAIQuizGenerator(cfg.LLM, &http.Client{}, logger.Get())
	if err != nil {
		logger.Get().Fatal("Failed to create quiz generator", zap.Error(err))
	}
	credentials := config.NewAPIKeyResolver(cfg.LLM.APIKeyEnvs)
	if _, ok := credentials.Resolve(); !ok {
		logger.Get().Fatal("No OpenAI API key found in environment", zap.Strings("envs", cfg.LLM.APIKeyEnvs))
	}

	inputs := service.ReadBatchInputs(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	batchService := service.NewBatchService(
		service.NewQuizService(generator, credentials),
		cfg.Batch.Concurrency,
		logger.Get(),
	)
	results := batchService.GenerateAll(ctx, inputs)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	failed := 0
	for _, result := range results {
		if result.Error != nil {
			failed++
		}
		if err := enc.Encode(result); err != nil {
			logger.Get().Error("Failed to write result", zap.String("name", result.Name), zap.Error(err))
		}
	}

	logger.Get().Info("Batch process finished", zap.Int("succeeded", len(results)-failed), zap.Int("failed", failed))
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/news-agent/internal/adapters/ai"
	"github.com/selivandex/news-agent/internal/adapters/config"
	"github.com/selivandex/news-agent/internal/adapters/newsapi"
	"github.com/selivandex/news-agent/internal/analysis"
	"github.com/selivandex/news-agent/internal/api"
	"github.com/selivandex/news-agent/internal/preferences"
	"github.com/selivandex/news-agent/internal/recommendations"
	"github.com/selivandex/news-agent/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("News Recommendation Agent starting...")

	newsClient, err := newsapi.NewClient(&cfg.NewsAPI, cfg.Cache.NewsCapacity, cfg.Cache.NewsTTL)
	if err != nil {
		return fmt.Errorf("failed to create NewsAPI client: %w", err)
	}

	provider := ai.NewOpenAIProvider(&cfg.OpenAI)
	analyzer := analysis.NewAnalyzer(provider, cfg.Cache.AnalysisCapacity, cfg.Cache.AnalysisTTL)
	store := preferences.NewStore()
	engine := recommendations.NewEngine()

	handler := api.NewHandler(store, newsClient, analyzer, engine)
	server := api.NewServer(handler, &cfg.Server)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

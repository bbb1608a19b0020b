package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skinwise/skinwise/internal/adapter/llm"
	"github.com/skinwise/skinwise/internal/agent"
	"github.com/skinwise/skinwise/internal/config"
	"github.com/skinwise/skinwise/internal/repository"
	"github.com/skinwise/skinwise/internal/service"
	handler "github.com/skinwise/skinwise/internal/transport/http"
	"github.com/skinwise/skinwise/policy"
)

func main() {
	// .env is optional; environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARN: failed to load .env: %v", err)
	}

	// Load configuration
	cfg := config.Load()

	log.Printf("Starting skinwise...")
	log.Printf("HTTP Port: %d", cfg.HTTPPort)
	log.Printf("Database: %s", cfg.DatabaseURL)
	log.Printf("Model: %s", cfg.AnthropicModel)

	// Initialize store
	db, err := repository.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer db.Close()

	// Initialize LLM client
	gen := llm.NewGenerator(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL, cfg.LLMTimeout)

	// Initialize policy engine
	ctx := context.Background()
	policyEngine, err := policy.NewEngine(ctx, policy.DefaultPolicy)
	if err != nil {
		log.Fatalf("Failed to initialize policy engine: %v", err)
	}

	// Initialize agents and router
	profileAgent := agent.NewProfileAgent(gen)
	analysisAgent := agent.NewAnalysisAgent(gen)
	recommendationAgent := agent.NewRecommendationAgent(gen)
	chatAgent := agent.NewChatAgent(gen)
	router := agent.NewRouter(gen, profileAgent, analysisAgent, recommendationAgent, chatAgent, policyEngine)

	// Initialize service
	svc := service.New(db, profileAgent, analysisAgent, recommendationAgent, router, cfg)

	// Create HTTP server
	server := handler.NewServer(svc)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := server.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("API started on port %d", cfg.HTTPPort)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down skinwise...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown server gracefully: %v", err)
	}

	log.Println("Skinwise stopped")
}

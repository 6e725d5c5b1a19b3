package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zizouhuweidi/trivia/internal/cache"
	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
	"github.com/zizouhuweidi/trivia/internal/domain"
	"github.com/zizouhuweidi/trivia/internal/handler"
	"github.com/zizouhuweidi/trivia/internal/repository/memory"
	"github.com/zizouhuweidi/trivia/internal/repository/postgres"
	"github.com/zizouhuweidi/trivia/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize repositories
	var (
		questionRepo domain.QuestionRepository
		categoryRepo domain.CategoryRepository
	)
	switch cfg.StoreDriver {
	case config.DriverMemory:
		log.Println("Using in-memory store")
		questionRepo = memory.NewQuestionRepository()
		categoryRepo = memory.NewCategoryRepository(memory.DefaultCategories())
	default:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()

		questionRepo = postgres.NewQuestionRepository(pool)
		categoryRepo = postgres.NewCategoryRepository(pool)
	}

	// Cache categories in Redis when it is reachable
	if cfg.CategoryCacheTTL > 0 {
		redisClient, err := database.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Category cache disabled: %v", err)
		} else {
			defer redisClient.Close()

			categoryCache := cache.NewCategoryCache(redisClient, categoryRepo, cfg.CategoryCacheTTL)
			// the store may have been reseeded since the last run
			if err := categoryCache.Invalidate(ctx); err != nil {
				log.Printf("Failed to reset category cache: %v", err)
			}
			categoryRepo = categoryCache
		}
	}

	triviaService := service.NewTriviaService(questionRepo, categoryRepo)
	e := handler.NewServer(triviaService)

	// Start server
	go func() {
		if err := e.Start(cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
}

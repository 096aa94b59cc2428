package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/pantrypal/backend/config"
	httpDelivery "github.com/pantrypal/backend/internal/delivery/http"
	"github.com/pantrypal/backend/internal/domain"
	"github.com/pantrypal/backend/internal/infrastructure/cache"
	"github.com/pantrypal/backend/internal/infrastructure/recipes"
	"github.com/pantrypal/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PantryPal Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	var cacheRepo domain.CacheRepository
	if cfg.Cache.Type == "redis" {
		redisCache, err := cache.NewRedisCache(context.Background(), cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		cacheRepo = redisCache
	} else {
		cacheRepo = cache.NewMemoryCache()
	}
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	recipeClient := recipes.NewClient(
		cfg.RecipeAPI.ClientID,
		cfg.RecipeAPI.ClientSecret,
		cfg.RecipeAPI.BaseURL,
		cfg.RecipeAPI.TokenURL,
		cfg.RateLimit.RecipeAPI,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		recipeClient.SetDebug(true)
		log.Printf("Recipe client debug mode enabled")
	}

	spellConfig := usecase.SpellConfig{
		MaxEditDistance:    cfg.Spelling.MaxEditDistance,
		AutoApplyThreshold: cfg.Spelling.AutoApplyThreshold,
		EnableDebugLogging: cfg.Spelling.EnableDebugLogging,
	}

	searchService := usecase.NewSearchService(
		cacheRepo,
		recipeClient,
		usecase.SearchServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			MaxFanOut:          cfg.Search.MaxFanOut,
			MaxResults:         cfg.Search.MaxResults,
			Spell:              spellConfig,
			EnableDebugLogging: cfg.Spelling.EnableDebugLogging,
		},
	)

	corrector := usecase.NewSpellCorrector(spellConfig)
	expander := usecase.NewMultilingualExpander(cfg.Spelling.EnableDebugLogging)

	log.Printf("Spelling: max distance=%d, auto-apply threshold=%.2f",
		cfg.Spelling.MaxEditDistance, cfg.Spelling.AutoApplyThreshold)
	log.Printf("Search: fan-out=%d, results per query=%d",
		cfg.Search.MaxFanOut, cfg.Search.MaxResults)

	handler := httpDelivery.NewHandler(searchService, corrector, expander)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/pantrypal/backend/internal/domain"
	"github.com/pantrypal/backend/internal/infrastructure/recipes"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL           time.Duration
	MaxFanOut          int
	MaxResults         int
	Spell              SpellConfig
	EnableDebugLogging bool
}

// SearchService orchestrates a recipe search: auto-correct the query,
// expand it across languages, fan out one API search per variant, and
// merge the results.
type SearchService struct {
	cache              domain.CacheRepository
	recipeClient       domain.RecipeSearchClient
	corrector          *SpellCorrector
	expander           *MultilingualExpander
	cacheTTL           time.Duration
	maxFanOut          int
	maxResults         int
	enableDebugLogging bool
}

// NewSearchService creates a search service with dependencies
func NewSearchService(
	cache domain.CacheRepository,
	recipeClient domain.RecipeSearchClient,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	maxFanOut := config.MaxFanOut
	if maxFanOut <= 0 {
		maxFanOut = 5
	}

	maxResults := config.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	return &SearchService{
		cache:              cache,
		recipeClient:       recipeClient,
		corrector:          NewSpellCorrector(config.Spell),
		expander:           NewMultilingualExpander(config.EnableDebugLogging),
		cacheTTL:           cacheTTL,
		maxFanOut:          maxFanOut,
		maxResults:         maxResults,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SearchRecipes looks up recipes for a raw user query.
// Flow: auto-correct -> expand -> check cache -> fan out API searches -> merge -> cache -> return
func (s *SearchService) SearchRecipes(
	ctx context.Context,
	request *domain.RecipeSearchRequest,
) (*domain.RecipeSearchResult, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	decision := s.corrector.AutoCorrect(request.Query, 0)
	enhanced := s.expander.EnhanceSearchQuery(decision.Query)

	cacheKey := s.generateCacheKey(enhanced.Normalized)

	cached, err := s.getFromCache(ctx, cacheKey)
	if err == nil && cached != nil {
		cached.Source = "Cache"
		return cached, nil
	}

	queries := enhanced.SearchQueries
	if len(queries) > s.maxFanOut {
		queries = queries[:s.maxFanOut]
	}

	maxResults := request.MaxResults
	if maxResults <= 0 || maxResults > s.maxResults {
		maxResults = s.maxResults
	}

	merged := []domain.Recipe{}
	seen := map[string]bool{}
	issued := make([]string, 0, len(queries))
	var lastErr error
	failures := 0

	for _, query := range queries {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		issued = append(issued, query)

		resp, err := s.recipeClient.SearchRecipes(ctx, query, maxResults)
		if err != nil {
			// One variant failing must not sink the whole search
			failures++
			lastErr = err
			if s.enableDebugLogging {
				log.Printf("[SEARCH] variant %q failed: %v", query, err)
			}
			continue
		}

		for _, recipe := range recipes.MapRecipes(resp.Recipes, query) {
			if seen[recipe.ID] {
				continue
			}
			seen[recipe.ID] = true
			merged = append(merged, recipe)
		}
	}

	if len(merged) == 0 {
		if failures == len(queries) && lastErr != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRecipeAPIFailure, lastErr)
		}
		return nil, domain.ErrRecipeNotFound
	}

	result := &domain.RecipeSearchResult{
		Query:          decision.Query,
		Original:       request.Query,
		Corrected:      decision.UseCorrection,
		CorrectionNote: decision.Message,
		QueriesIssued:  issued,
		Translations:   enhanced.Suggestions,
		Recipes:        merged,
		TotalResults:   len(merged),
		Source:         "API",
	}

	if err := s.setInCache(ctx, cacheKey, result); err != nil && s.enableDebugLogging {
		log.Printf("[SEARCH] cache write failed for %q: %v", cacheKey, err)
	}

	return result, nil
}

// generateCacheKey creates a normalized cache key from the expanded query.
// Format: "recipes:{normalized_query}"
func (s *SearchService) generateCacheKey(normalizedQuery string) string {
	return fmt.Sprintf("recipes:%s", normalizeForCacheKey(normalizedQuery))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// getFromCache retrieves a search result from cache. Cached values come
// back as generic JSON maps (both backends store JSON), so round-trip
// through json to recover the typed struct.
func (s *SearchService) getFromCache(ctx context.Context, key string) (*domain.RecipeSearchResult, error) {
	value, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	if result, ok := value.(*domain.RecipeSearchResult); ok {
		return result, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, domain.ErrCacheMiss
	}

	var result domain.RecipeSearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.ErrCacheMiss
	}

	return &result, nil
}

// setInCache stores a search result in cache
func (s *SearchService) setInCache(ctx context.Context, key string, result *domain.RecipeSearchResult) error {
	result.CachedAt = time.Now()
	return s.cache.Set(ctx, key, result, s.cacheTTL)
}

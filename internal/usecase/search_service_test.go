package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pantrypal/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data      map[string]interface{}
	getError  error
	setError  error
	setCalled bool
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{
		data: make(map[string]interface{}),
	}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (interface{}, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	m.setCalled = true
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockRecipeSearchClient is a mock implementation of domain.RecipeSearchClient
type MockRecipeSearchClient struct {
	responses map[string]*domain.RecipeAPIResponse
	errors    map[string]error
	failAll   error
	queries   []string
}

func NewMockRecipeSearchClient() *MockRecipeSearchClient {
	return &MockRecipeSearchClient{
		responses: make(map[string]*domain.RecipeAPIResponse),
		errors:    make(map[string]error),
	}
}

func (m *MockRecipeSearchClient) SearchRecipes(ctx context.Context, query string, maxResults int) (*domain.RecipeAPIResponse, error) {
	m.queries = append(m.queries, query)
	if m.failAll != nil {
		return nil, m.failAll
	}
	if err, ok := m.errors[query]; ok {
		return nil, err
	}
	if resp, ok := m.responses[query]; ok {
		return resp, nil
	}
	return &domain.RecipeAPIResponse{Recipes: []domain.APIRecipe{}}, nil
}

func apiResponse(ids ...int64) *domain.RecipeAPIResponse {
	recipes := make([]domain.APIRecipe, 0, len(ids))
	for _, id := range ids {
		recipes = append(recipes, domain.APIRecipe{RecipeID: id, Name: "recipe"})
	}
	return &domain.RecipeAPIResponse{Recipes: recipes, TotalResults: len(recipes)}
}

func TestNewSearchService(t *testing.T) {
	cache := NewMockCacheRepository()
	client := NewMockRecipeSearchClient()

	t.Run("creates service with default values", func(t *testing.T) {
		svc := NewSearchService(cache, client, SearchServiceConfig{})
		if svc == nil {
			t.Fatal("expected service to be created")
		}
		if svc.cacheTTL != 24*time.Hour {
			t.Errorf("cacheTTL = %v, want 24h", svc.cacheTTL)
		}
		if svc.maxFanOut != 5 {
			t.Errorf("maxFanOut = %d, want 5", svc.maxFanOut)
		}
		if svc.maxResults != 10 {
			t.Errorf("maxResults = %d, want 10", svc.maxResults)
		}
	})

	t.Run("creates service with custom values", func(t *testing.T) {
		svc := NewSearchService(cache, client, SearchServiceConfig{
			CacheTTL:  time.Hour,
			MaxFanOut: 2,
		})
		if svc.cacheTTL != time.Hour {
			t.Errorf("cacheTTL = %v, want 1h", svc.cacheTTL)
		}
		if svc.maxFanOut != 2 {
			t.Errorf("maxFanOut = %d, want 2", svc.maxFanOut)
		}
	})
}

func TestSearchRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("returns error for nil request", func(t *testing.T) {
		svc := NewSearchService(NewMockCacheRepository(), NewMockRecipeSearchClient(), SearchServiceConfig{})

		_, err := svc.SearchRecipes(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("returns error for blank query", func(t *testing.T) {
		svc := NewSearchService(NewMockCacheRepository(), NewMockRecipeSearchClient(), SearchServiceConfig{})

		_, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "   "})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("merges and dedupes results across query variants", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.responses["adobo"] = apiResponse(1, 2)
		client.responses["chicken adobo"] = apiResponse(2, 3)
		client.errors["pork adobo"] = domain.ErrRecipeAPIFailure

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		result, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "adobo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.TotalResults != 3 {
			t.Errorf("TotalResults = %d, want 3 after dedupe", result.TotalResults)
		}
		if len(result.QueriesIssued) != 3 {
			t.Errorf("QueriesIssued = %v, want 3 variants", result.QueriesIssued)
		}
		if result.Source != "API" {
			t.Errorf("Source = %q, want API", result.Source)
		}
		if result.Corrected {
			t.Error("expected Corrected=false for a clean query")
		}
		if !cache.setCalled {
			t.Error("expected result to be cached")
		}
	})

	t.Run("second identical search is served from cache", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.responses["turon"] = apiResponse(7)

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		if _, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "turon"}); err != nil {
			t.Fatalf("first search failed: %v", err)
		}
		callsAfterFirst := len(client.queries)

		result, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "turon"})
		if err != nil {
			t.Fatalf("second search failed: %v", err)
		}
		if result.Source != "Cache" {
			t.Errorf("Source = %q, want Cache", result.Source)
		}
		if len(client.queries) != callsAfterFirst {
			t.Errorf("client called %d more times, want 0", len(client.queries)-callsAfterFirst)
		}
	})

	t.Run("applies confident spelling correction before searching", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.responses["manok"] = apiResponse(5)

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		result, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "chikcne"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Corrected {
			t.Error("expected Corrected=true")
		}
		if result.Query != "chicken" {
			t.Errorf("Query = %q, want corrected %q", result.Query, "chicken")
		}
		if result.Original != "chikcne" {
			t.Errorf("Original = %q, want raw input", result.Original)
		}
		if !contains(result.QueriesIssued, "manok") {
			t.Errorf("QueriesIssued = %v, expected expanded variant manok", result.QueriesIssued)
		}
	})

	t.Run("caps fan-out at the configured maximum", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.responses["adobo"] = apiResponse(1)

		svc := NewSearchService(cache, client, SearchServiceConfig{MaxFanOut: 2})

		result, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "adobo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.QueriesIssued) != 2 {
			t.Errorf("QueriesIssued = %v, want exactly 2", result.QueriesIssued)
		}
	})

	t.Run("reports API failure when every variant fails", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.failAll = domain.ErrRecipeAPIFailure

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		_, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "adobo"})
		if !errors.Is(err, domain.ErrRecipeAPIFailure) {
			t.Errorf("error = %v, want ErrRecipeAPIFailure", err)
		}
	})

	t.Run("reports not found when variants succeed but return nothing", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		_, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "adobo"})
		if !errors.Is(err, domain.ErrRecipeNotFound) {
			t.Errorf("error = %v, want ErrRecipeNotFound", err)
		}
	})

	t.Run("tags merged recipes with the variant that matched them", func(t *testing.T) {
		cache := NewMockCacheRepository()
		client := NewMockRecipeSearchClient()
		client.responses["chicken adobo"] = apiResponse(9)

		svc := NewSearchService(cache, client, SearchServiceConfig{})

		result, err := svc.SearchRecipes(ctx, &domain.RecipeSearchRequest{Query: "adobo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Recipes) != 1 {
			t.Fatalf("Recipes = %v, want 1", result.Recipes)
		}
		if result.Recipes[0].MatchedBy != "chicken adobo" {
			t.Errorf("MatchedBy = %q, want %q", result.Recipes[0].MatchedBy, "chicken adobo")
		}
	})
}

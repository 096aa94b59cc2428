package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeSearchClient defines the interface for the external recipe search API
type RecipeSearchClient interface {
	SearchRecipes(ctx context.Context, query string, maxResults int) (*RecipeAPIResponse, error)
}

package domain

import "errors"

var (
	// ErrRecipeNotFound is returned when no recipes match any expanded query
	ErrRecipeNotFound = errors.New("no recipes found")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrRecipeAPIFailure is returned when the recipe API request fails
	ErrRecipeAPIFailure = errors.New("recipe API request failed")

	// ErrCacheUnavailable is returned when the cache backend is unreachable
	ErrCacheUnavailable = errors.New("cache service unavailable")
)

package domain

import "time"

// Recipe represents a single recipe returned by the external search API
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Calories    float64  `json:"calories,omitempty"`
	MatchedBy   string   `json:"matchedBy,omitempty"` // which expanded query produced this hit
}

// RecipeSearchRequest represents an incoming recipe search
type RecipeSearchRequest struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"maxResults,omitempty"`
}

// RecipeSearchResult is the orchestrated search response: merged recipes
// plus the correction/translation diagnostics that produced them.
type RecipeSearchResult struct {
	Query           string                  `json:"query"` // query actually searched (post-correction)
	Original        string                  `json:"original"`
	Corrected       bool                    `json:"corrected"`
	CorrectionNote  string                  `json:"correctionNote,omitempty"`
	QueriesIssued   []string                `json:"queriesIssued"`
	Translations    []TranslationSuggestion `json:"translations,omitempty"`
	Recipes         []Recipe                `json:"recipes"`
	TotalResults    int                     `json:"totalResults"`
	Source          string                  `json:"source"` // "API" or "Cache"
	CachedAt        time.Time               `json:"cachedAt,omitempty"`
}

// RecipeAPIResponse represents the raw response from the recipe search API
type RecipeAPIResponse struct {
	Recipes      []APIRecipe `json:"recipes"`
	TotalResults int         `json:"totalResults"`
	Page         int         `json:"page"`
}

// APIRecipe is a recipe as returned by the external API
type APIRecipe struct {
	RecipeID    int64    `json:"recipeId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Calories    float64  `json:"calories,omitempty"`
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pantrypal/backend/internal/domain"
	"github.com/pantrypal/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
	corrector     *usecase.SpellCorrector
	expander      *usecase.MultilingualExpander
}

// NewHandler creates a new HTTP handler
func NewHandler(
	searchService *usecase.SearchService,
	corrector *usecase.SpellCorrector,
	expander *usecase.MultilingualExpander,
) *Handler {
	return &Handler{
		searchService: searchService,
		corrector:     corrector,
		expander:      expander,
	}
}

// queryRequest is the body shape shared by the query endpoints
type queryRequest struct {
	Query     string  `json:"query" binding:"required"`
	Threshold float64 `json:"threshold,omitempty"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pantrypal-backend",
		"version": "1.0.0",
	})
}

// CorrectQuery spell-checks a search query and reports whether the
// correction is confident enough to apply automatically.
func (h *Handler) CorrectQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.corrector.CorrectSpelling(req.Query)
	decision := h.corrector.AutoCorrect(req.Query, req.Threshold)

	c.JSON(http.StatusOK, gin.H{
		"result":   result,
		"decision": decision,
	})
}

// ExpandQuery returns every known-language variant of a search query
func (h *Handler) ExpandQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.expander.ExpandSearchQuery(req.Query))
}

// EnhanceQuery returns the full expansion plus translation suggestions
// and the fan-out query list.
func (h *Handler) EnhanceQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.expander.EnhanceSearchQuery(req.Query))
}

// SearchRecipes runs the orchestrated search: correct, expand, fan out
// to the recipe API, merge.
func (h *Handler) SearchRecipes(c *gin.Context) {
	if h.searchService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search service unavailable"})
		return
	}

	var req domain.RecipeSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.searchService.SearchRecipes(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrRecipeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrRecipeAPIFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

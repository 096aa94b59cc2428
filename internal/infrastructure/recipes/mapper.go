package recipes

import (
	"strconv"

	"github.com/pantrypal/backend/internal/domain"
)

// MapRecipes converts API recipes to domain recipes, tagging each with
// the query variant that produced it.
func MapRecipes(apiRecipes []domain.APIRecipe, matchedBy string) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, len(apiRecipes))
	for _, r := range apiRecipes {
		recipes = append(recipes, domain.Recipe{
			ID:          strconv.FormatInt(r.RecipeID, 10),
			Name:        r.Name,
			Description: r.Description,
			Ingredients: r.Ingredients,
			ImageURL:    r.ImageURL,
			Calories:    r.Calories,
			MatchedBy:   matchedBy,
		})
	}
	return recipes
}

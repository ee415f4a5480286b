package types

// PlaceholderImage is shown for recipes without an image reference
const PlaceholderImage = "asset://images/demoRecipe.jpeg"

// Difficulty levels a recipe may declare
const (
	DifficultyEasy         = "Easy"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Ingredient is a single recipe line. Amount is free text and never parsed.
type Ingredient struct {
	Name   string `json:"name" validate:"required"`
	Amount string `json:"amount"`
}

// Recipe represents a recipe as served by the backend
type Recipe struct {
	ID           string       `json:"_id" validate:"required"`
	Name         string       `json:"name" validate:"required"`
	Category     string       `json:"category,omitempty" validate:"omitempty,category"`
	Cuisine      string       `json:"cuisine,omitempty"`
	Difficulty   string       `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Intermediate Advanced"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	Rating       *float64     `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Ingredients  []Ingredient `json:"ingredients,omitempty" validate:"dive"`
	Instructions string       `json:"instructions,omitempty"`
	CreatedBy    string       `json:"createdBy" validate:"required"`
}

// ImageOrPlaceholder returns the recipe image reference, or the placeholder
// when the recipe has none
func (r Recipe) ImageOrPlaceholder() string {
	if r.ImageURL == "" {
		return PlaceholderImage
	}
	return r.ImageURL
}

// RecipeInput is the body for creating or updating a recipe
type RecipeInput struct {
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Cuisine      string       `json:"cuisine"`
	Difficulty   string       `json:"difficulty,omitempty"`
	ImageURL     string       `json:"imageUrl,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	CreatedBy    string       `json:"createdBy,omitempty"`
}

// RecipeList is the envelope for recipe collections
type RecipeList struct {
	Recipes []Recipe `json:"recipes" validate:"dive"`
}

// IngredientSearchRequest is the body of an ingredient search
type IngredientSearchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RateRequest is the body of a rating submission
type RateRequest struct {
	Rating float64 `json:"rating"`
}

// FridgeScan is the result of uploading a fridge photo
type FridgeScan struct {
	Image       string   `json:"image"`
	Ingredients []string `json:"ingredients"`
}

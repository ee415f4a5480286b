package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pageza/fridgechef/internal/types"
)

// ListRecipes fetches one page of recipes. Page defaults to 1 and limit to 10.
func (c *Client) ListRecipes(ctx context.Context, cred types.Credential, page, limit int) ([]types.Recipe, error) {
	var resp types.RecipeList
	if err := c.doJSON(ctx, cred, http.MethodGet, "/recipes", pageQuery(page, limit), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}

// GetRecipe fetches a single recipe
func (c *Client) GetRecipe(ctx context.Context, cred types.Credential, id string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.doJSON(ctx, cred, http.MethodGet, "/recipes/"+url.PathEscape(id), nil, nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// CreateRecipe creates a recipe and returns it as stored
func (c *Client) CreateRecipe(ctx context.Context, cred types.Credential, in *types.RecipeInput) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.doJSON(ctx, cred, http.MethodPost, "/recipes", nil, in, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// UpdateRecipe replaces the editable fields of a recipe
func (c *Client) UpdateRecipe(ctx context.Context, cred types.Credential, id string, in *types.RecipeInput) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.doJSON(ctx, cred, http.MethodPut, "/recipes/"+url.PathEscape(id), nil, in, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe deletes a recipe by id
func (c *Client) DeleteRecipe(ctx context.Context, cred types.Credential, id string) error {
	return c.doJSON(ctx, cred, http.MethodDelete, "/recipes/"+url.PathEscape(id), nil, nil, nil)
}

// SearchByIngredients asks the backend for recipes using any of ingredients.
// The ingredient order is sent as given.
func (c *Client) SearchByIngredients(ctx context.Context, cred types.Credential, ingredients []string) ([]types.Recipe, error) {
	var resp types.RecipeList
	body := types.IngredientSearchRequest{Ingredients: ingredients}
	if err := c.doJSON(ctx, cred, http.MethodPost, "/recipes/by-ingredients", nil, body, &resp); err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}

// SearchRecipes runs a free-text search
func (c *Client) SearchRecipes(ctx context.Context, cred types.Credential, term string) ([]types.Recipe, error) {
	var resp types.RecipeList
	query := url.Values{"searchTerm": {term}}
	if err := c.doJSON(ctx, cred, http.MethodGet, "/recipes/search", query, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Recipes, nil
}

// RateRecipe submits a rating and returns the updated recipe
func (c *Client) RateRecipe(ctx context.Context, cred types.Credential, id string, rating float64) (*types.Recipe, error) {
	var recipe types.Recipe
	body := types.RateRequest{Rating: rating}
	if err := c.doJSON(ctx, cred, http.MethodPost, "/recipes/"+url.PathEscape(id)+"/rate", nil, body, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/category"
	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/search"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

const (
	// listPageSize is the page size used when fetching every recipe
	listPageSize = 50
	// maxListPages bounds a full fetch against a backend that never sends a
	// short page
	maxListPages = 200
)

// ErrImageStorageDisabled is returned when a recipe photo is given but no
// uploader is configured
var ErrImageStorageDisabled = errors.New("recipe image storage is not configured")

// ImageFile is a local photo to attach to a recipe
type ImageFile struct {
	Name string
	Body io.Reader
}

// RecipeService implements the browse, search and edit flows over the API
type RecipeService struct {
	api      RecipeAPI
	store    session.Store
	uploader ImageUploader
	logger   *zap.Logger
}

// NewRecipeService creates a RecipeService. uploader may be nil, in which
// case recipes cannot carry a local photo.
func NewRecipeService(api RecipeAPI, store session.Store, uploader ImageUploader, logger *zap.Logger) *RecipeService {
	return &RecipeService{
		api:      api,
		store:    store,
		uploader: uploader,
		logger:   logging.OrNop(logger),
	}
}

// List fetches one page of recipes
func (s *RecipeService) List(ctx context.Context, cred types.Credential, page, limit int) ([]types.Recipe, error) {
	recipes, err := s.api.ListRecipes(ctx, cred, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

// Explore lists recipes, classifies those without a category and keeps the
// ones in key. An empty key keeps everything.
func (s *RecipeService) Explore(ctx context.Context, cred types.Credential, key category.Key, page, limit int) ([]types.Recipe, error) {
	recipes, err := s.List(ctx, cred, page, limit)
	if err != nil {
		return nil, err
	}
	category.AssignMissing(recipes)
	return search.FilterByCategory(recipes, key), nil
}

// Search delegates q to the backend. An empty query fetches every recipe.
func (s *RecipeService) Search(ctx context.Context, cred types.Credential, q search.Query) ([]types.Recipe, error) {
	var (
		recipes []types.Recipe
		err     error
	)
	switch {
	case q.Empty():
		return s.listAll(ctx, cred)
	case q.Mode == search.ModeText:
		recipes, err = s.api.SearchRecipes(ctx, cred, q.Text)
	default:
		recipes, err = s.api.SearchByIngredients(ctx, cred, q.Ingredients)
	}
	if err != nil {
		return nil, fmt.Errorf("recipe search failed: %w", err)
	}
	s.logger.Debug("recipe search",
		zap.String("mode", string(q.Mode)),
		zap.Int("results", len(recipes)))
	return recipes, nil
}

// MyRecipes runs q and keeps the session user's recipes
func (s *RecipeService) MyRecipes(ctx context.Context, cred types.Credential, q search.Query) ([]types.Recipe, error) {
	userID, err := session.Current(ctx, s.store)
	if err != nil {
		return nil, err
	}
	recipes, err := s.Search(ctx, cred, q)
	if err != nil {
		return nil, err
	}
	return search.FilterByCreator(recipes, userID), nil
}

func (s *RecipeService) listAll(ctx context.Context, cred types.Credential) ([]types.Recipe, error) {
	var all []types.Recipe
	seen := make(map[string]struct{})
	for page := 1; page <= maxListPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recipes, err := s.List(ctx, cred, page, listPageSize)
		if err != nil {
			return nil, err
		}

		added := 0
		for _, r := range recipes {
			if _, dup := seen[r.ID]; dup {
				continue
			}
			seen[r.ID] = struct{}{}
			all = append(all, r)
			added++
		}
		// a page with nothing new means the backend ignores paging
		if len(recipes) < listPageSize || added == 0 {
			return all, nil
		}
	}
	s.logger.Warn("recipe listing truncated",
		zap.Int("pages", maxListPages),
		zap.Int("recipes", len(all)))
	return all, nil
}

// Get fetches one recipe
func (s *RecipeService) Get(ctx context.Context, cred types.Credential, id string) (*types.Recipe, error) {
	recipe, err := s.api.GetRecipe(ctx, cred, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return recipe, nil
}

// Create validates the form, uploads the optional photo and creates the
// recipe as the session user
func (s *RecipeService) Create(ctx context.Context, cred types.Credential, in *types.RecipeInput, image *ImageFile) (*types.Recipe, error) {
	if err := ValidateRecipe(in); err != nil {
		return nil, err
	}
	userID, err := session.Current(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, userID, in, image); err != nil {
		return nil, err
	}
	in.CreatedBy = userID

	recipe, err := s.api.CreateRecipe(ctx, cred, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	s.logger.Info("recipe created", zap.String("recipe_id", recipe.ID))
	return recipe, nil
}

// Update validates the form and replaces the recipe's fields
func (s *RecipeService) Update(ctx context.Context, cred types.Credential, id string, in *types.RecipeInput, image *ImageFile) (*types.Recipe, error) {
	if err := ValidateRecipe(in); err != nil {
		return nil, err
	}
	userID, err := session.Current(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.attachImage(ctx, userID, in, image); err != nil {
		return nil, err
	}

	recipe, err := s.api.UpdateRecipe(ctx, cred, id, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}
	return recipe, nil
}

// Delete removes a recipe
func (s *RecipeService) Delete(ctx context.Context, cred types.Credential, id string) error {
	if err := s.api.DeleteRecipe(ctx, cred, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	s.logger.Info("recipe deleted", zap.String("recipe_id", id))
	return nil
}

// Rate submits a rating and returns the recipe as the server now has it
func (s *RecipeService) Rate(ctx context.Context, cred types.Credential, id string, rating float64) (*types.Recipe, error) {
	if err := ValidateRating(rating); err != nil {
		return nil, err
	}
	recipe, err := s.api.RateRecipe(ctx, cred, id, rating)
	if err != nil {
		return nil, fmt.Errorf("failed to rate recipe: %w", err)
	}
	return recipe, nil
}

func (s *RecipeService) attachImage(ctx context.Context, userID string, in *types.RecipeInput, image *ImageFile) error {
	if image == nil {
		return nil
	}
	if s.uploader == nil {
		return ErrImageStorageDisabled
	}
	url, err := s.uploader.UploadRecipeImage(ctx, userID, image.Name, image.Body)
	if err != nil {
		return fmt.Errorf("failed to upload recipe image: %w", err)
	}
	in.ImageURL = url
	return nil
}

package service

import (
	"context"
	"io"

	"github.com/pageza/fridgechef/internal/types"
)

// AuthAPI is the backend surface used by AuthService
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*types.AuthResponse, error)
	Signup(ctx context.Context, fullName, email, password string) (*types.AuthResponse, error)
}

// UserAPI is the backend surface used by ProfileService
type UserAPI interface {
	GetUserProfile(ctx context.Context, cred types.Credential, userID string) (*types.UserProfile, error)
	UpdateUserProfile(ctx context.Context, cred types.Credential, userID string, req *types.UpdateProfileRequest) (*types.UserProfile, error)
	ListUsers(ctx context.Context, cred types.Credential, page, limit int) ([]types.UserProfile, error)
}

// RecipeAPI is the backend surface used by RecipeService
type RecipeAPI interface {
	ListRecipes(ctx context.Context, cred types.Credential, page, limit int) ([]types.Recipe, error)
	GetRecipe(ctx context.Context, cred types.Credential, id string) (*types.Recipe, error)
	CreateRecipe(ctx context.Context, cred types.Credential, in *types.RecipeInput) (*types.Recipe, error)
	UpdateRecipe(ctx context.Context, cred types.Credential, id string, in *types.RecipeInput) (*types.Recipe, error)
	DeleteRecipe(ctx context.Context, cred types.Credential, id string) error
	SearchByIngredients(ctx context.Context, cred types.Credential, ingredients []string) ([]types.Recipe, error)
	SearchRecipes(ctx context.Context, cred types.Credential, term string) ([]types.Recipe, error)
	RateRecipe(ctx context.Context, cred types.Credential, id string, rating float64) (*types.Recipe, error)
}

// FridgeAPI is the backend surface used by FridgeService
type FridgeAPI interface {
	UploadFridgeImage(ctx context.Context, cred types.Credential, filename string, image io.Reader) (*types.FridgeScan, error)
	SearchByIngredients(ctx context.Context, cred types.Credential, ingredients []string) ([]types.Recipe, error)
}

// ImageUploader stores a recipe photo and returns a URL for it
type ImageUploader interface {
	UploadRecipeImage(ctx context.Context, userID, filename string, body io.Reader) (string, error)
}

// Package mocks holds testify mocks of the backend client surfaces.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/fridgechef/internal/types"
)

// MockAPI is a mock implementation of every backend operation, so it can
// stand in for each of the narrower service interfaces
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AuthResponse), args.Error(1)
}

func (m *MockAPI) Signup(ctx context.Context, fullName, email, password string) (*types.AuthResponse, error) {
	args := m.Called(ctx, fullName, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.AuthResponse), args.Error(1)
}

func (m *MockAPI) ListRecipes(ctx context.Context, cred types.Credential, page, limit int) ([]types.Recipe, error) {
	args := m.Called(ctx, cred, page, limit)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockAPI) GetRecipe(ctx context.Context, cred types.Credential, id string) (*types.Recipe, error) {
	args := m.Called(ctx, cred, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockAPI) CreateRecipe(ctx context.Context, cred types.Credential, in *types.RecipeInput) (*types.Recipe, error) {
	args := m.Called(ctx, cred, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockAPI) UpdateRecipe(ctx context.Context, cred types.Credential, id string, in *types.RecipeInput) (*types.Recipe, error) {
	args := m.Called(ctx, cred, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockAPI) DeleteRecipe(ctx context.Context, cred types.Credential, id string) error {
	args := m.Called(ctx, cred, id)
	return args.Error(0)
}

func (m *MockAPI) SearchByIngredients(ctx context.Context, cred types.Credential, ingredients []string) ([]types.Recipe, error) {
	args := m.Called(ctx, cred, ingredients)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockAPI) SearchRecipes(ctx context.Context, cred types.Credential, term string) ([]types.Recipe, error) {
	args := m.Called(ctx, cred, term)
	return recipes(args.Get(0)), args.Error(1)
}

func (m *MockAPI) RateRecipe(ctx context.Context, cred types.Credential, id string, rating float64) (*types.Recipe, error) {
	args := m.Called(ctx, cred, id, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Recipe), args.Error(1)
}

func (m *MockAPI) GetUserProfile(ctx context.Context, cred types.Credential, userID string) (*types.UserProfile, error) {
	args := m.Called(ctx, cred, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockAPI) UpdateUserProfile(ctx context.Context, cred types.Credential, userID string, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	args := m.Called(ctx, cred, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserProfile), args.Error(1)
}

func (m *MockAPI) ListUsers(ctx context.Context, cred types.Credential, page, limit int) ([]types.UserProfile, error) {
	args := m.Called(ctx, cred, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.UserProfile), args.Error(1)
}

func (m *MockAPI) FollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error) {
	args := m.Called(ctx, cred, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FollowResponse), args.Error(1)
}

func (m *MockAPI) UnfollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error) {
	args := m.Called(ctx, cred, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FollowResponse), args.Error(1)
}

func (m *MockAPI) UploadFridgeImage(ctx context.Context, cred types.Credential, filename string, image io.Reader) (*types.FridgeScan, error) {
	args := m.Called(ctx, cred, filename, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.FridgeScan), args.Error(1)
}

func recipes(v any) []types.Recipe {
	if v == nil {
		return nil
	}
	return v.([]types.Recipe)
}

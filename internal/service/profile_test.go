package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fridgechef/internal/mocks"
	"github.com/pageza/fridgechef/internal/service"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

func TestProfileService(t *testing.T) {
	ctx := context.Background()
	api := new(mocks.MockAPI)
	svc := service.NewProfileService(api, signedIn(t, "me"), nil)

	api.On("GetUserProfile", mock.Anything, cred, "me").
		Return(&types.UserProfile{ID: "me", Name: "Ada Lovelace"}, nil)
	profile, err := svc.Profile(ctx, cred)
	require.NoError(t, err)
	assert.Equal(t, "AL", profile.Initials())

	bio := "cooks a lot"
	api.On("UpdateUserProfile", mock.Anything, cred, "me", &types.UpdateProfileRequest{Bio: &bio}).
		Return(&types.UserProfile{ID: "me", Name: "Ada Lovelace", Bio: bio}, nil)
	updated, err := svc.UpdateProfile(ctx, cred, &types.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)

	_, err = svc.UpdateProfile(ctx, cred, &types.UpdateProfileRequest{})
	assert.ErrorIs(t, err, service.ErrEmptyUpdate)

	blank := "  "
	_, err = svc.UpdateProfile(ctx, cred, &types.UpdateProfileRequest{Name: &blank})
	var verrs service.ValidationErrors
	assert.ErrorAs(t, err, &verrs)

	api.On("ListUsers", mock.Anything, cred, 1, 20).Return([]types.UserProfile{{ID: "a"}, {ID: "b"}}, nil)
	users, err := svc.Users(ctx, cred, 1, 20)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestProfileServiceNoSession(t *testing.T) {
	svc := service.NewProfileService(new(mocks.MockAPI), session.NewMemoryStore(), nil)
	_, err := svc.Profile(context.Background(), cred)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestFridgeService_Scan(t *testing.T) {
	ctx := context.Background()
	api := new(mocks.MockAPI)
	svc := service.NewFridgeService(api, nil)
	photo := strings.NewReader("jpeg")

	api.On("UploadFridgeImage", mock.Anything, cred, "fridge.jpg", photo).
		Return(&types.FridgeScan{Image: "data:...", Ingredients: []string{"milk", "egg"}}, nil)
	api.On("SearchByIngredients", mock.Anything, cred, []string{"milk", "egg"}).
		Return([]types.Recipe{{ID: "r1", Name: "Custard", CreatedBy: "x"}}, nil)

	result, err := svc.Scan(ctx, cred, "fridge.jpg", photo)
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "egg"}, result.Scan.Ingredients)
	require.Len(t, result.Suggestions, 1)
	api.AssertExpectations(t)
}

func TestFridgeService_ScanNothingDetected(t *testing.T) {
	api := new(mocks.MockAPI)
	svc := service.NewFridgeService(api, nil)
	api.On("UploadFridgeImage", mock.Anything, cred, "empty.jpg", mock.Anything).
		Return(&types.FridgeScan{Image: "data:..."}, nil)

	result, err := svc.Scan(context.Background(), cred, "empty.jpg", strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result.Suggestions)
	api.AssertNotCalled(t, "SearchByIngredients", mock.Anything, mock.Anything, mock.Anything)
}

func TestValidationErrors(t *testing.T) {
	err := service.ValidateSignup("", "", "")
	var verrs service.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 3)
	assert.Contains(t, err.Error(), "fullName: Please enter your full name")

	assert.NoError(t, service.ValidateLogin("ada@example.com", "secret"))
	assert.NoError(t, service.ValidateRating(0))
	assert.NoError(t, service.ValidateRating(5))
}

func TestValidatePasswordCountsCharacters(t *testing.T) {
	err := service.ValidateLogin("ada@example.com", "ééé")
	var verrs service.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Password should be at least 6 characters", verrs.Field("password"))

	// each emoji is two UTF-16 units, as the mobile screens count them
	assert.NoError(t, service.ValidateLogin("ada@example.com", "🍳🍳🍳"))
	assert.NoError(t, service.ValidateLogin("ada@example.com", "éééééé"))
}

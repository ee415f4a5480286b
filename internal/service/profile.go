package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

// ErrEmptyUpdate is returned when a profile update changes nothing
var ErrEmptyUpdate = errors.New("profile update has no fields")

// ProfileService handles the signed-in user's profile and the users list
type ProfileService struct {
	api    UserAPI
	store  session.Store
	logger *zap.Logger
}

func NewProfileService(api UserAPI, store session.Store, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		api:    api,
		store:  store,
		logger: logging.OrNop(logger),
	}
}

// Profile fetches the session user's profile
func (s *ProfileService) Profile(ctx context.Context, cred types.Credential) (*types.UserProfile, error) {
	userID, err := session.Current(ctx, s.store)
	if err != nil {
		return nil, err
	}
	profile, err := s.api.GetUserProfile(ctx, cred, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile sends a partial update for the session user
func (s *ProfileService) UpdateProfile(ctx context.Context, cred types.Credential, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	if req.Name == nil && req.Bio == nil && req.ProfilePicture == nil {
		return nil, ErrEmptyUpdate
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, ValidationErrors{{Field: "name", Message: "Please enter your full name"}}
	}

	userID, err := session.Current(ctx, s.store)
	if err != nil {
		return nil, err
	}
	profile, err := s.api.UpdateUserProfile(ctx, cred, userID, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	s.logger.Info("profile updated", zap.String("user_id", userID))
	return profile, nil
}

// Users fetches one page of the users list
func (s *ProfileService) Users(ctx context.Context, cred types.Credential, page, limit int) ([]types.UserProfile, error) {
	users, err := s.api.ListUsers(ctx, cred, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

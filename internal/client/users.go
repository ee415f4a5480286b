package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pageza/fridgechef/internal/types"
)

// GetUserProfile fetches a user's profile
func (c *Client) GetUserProfile(ctx context.Context, cred types.Credential, userID string) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := c.doJSON(ctx, cred, http.MethodGet, "/users/"+url.PathEscape(userID), nil, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateUserProfile applies a partial profile update
func (c *Client) UpdateUserProfile(ctx context.Context, cred types.Credential, userID string, req *types.UpdateProfileRequest) (*types.UserProfile, error) {
	var profile types.UserProfile
	if err := c.doJSON(ctx, cred, http.MethodPut, "/users/"+url.PathEscape(userID), nil, req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListUsers fetches one page of users
func (c *Client) ListUsers(ctx context.Context, cred types.Credential, page, limit int) ([]types.UserProfile, error) {
	var resp types.UserList
	if err := c.doJSON(ctx, cred, http.MethodGet, "/users", pageQuery(page, limit), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// FollowUser makes the credential's user follow userID
func (c *Client) FollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error) {
	return c.follow(ctx, cred, userID, "follow")
}

// UnfollowUser reverses FollowUser
func (c *Client) UnfollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error) {
	return c.follow(ctx, cred, userID, "unfollow")
}

func (c *Client) follow(ctx context.Context, cred types.Credential, userID, action string) (*types.FollowResponse, error) {
	var resp types.FollowResponse
	if err := c.doJSON(ctx, cred, http.MethodPost, "/users/"+url.PathEscape(userID)+"/"+action, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

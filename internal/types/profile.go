package types

import (
	"strings"
	"time"
)

// UserProfile represents a user's public profile. Counters mirror the
// server-reported values.
type UserProfile struct {
	ID             string    `json:"_id" validate:"required"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	RecipesCount   int       `json:"recipesCount" validate:"gte=0"`
	FollowersCount int       `json:"followersCount" validate:"gte=0"`
	FollowingCount int       `json:"followingCount" validate:"gte=0"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Initials returns the uppercased first letter of each part of the name
func (p UserProfile) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(p.Name) {
		r := []rune(part)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// UpdateProfileRequest represents a request to update a user's profile
type UpdateProfileRequest struct {
	Name           *string `json:"name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// UserList is the envelope for user collections
type UserList struct {
	Users []UserProfile `json:"users" validate:"dive"`
}

// FollowResponse reports both sides of a follow or unfollow
type FollowResponse struct {
	UpdatedUser    UserProfile `json:"updatedUser"`
	RequestingUser UserProfile `json:"requestingUser"`
}

// Package social holds the users list and the follow toggle that drives it.
package social

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/types"
)

// ErrToggleInFlight is returned when a follow request for the same user has
// not completed yet
var ErrToggleInFlight = errors.New("follow request already in flight")

// FollowAPI is the subset of the backend client the roster needs
type FollowAPI interface {
	FollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error)
	UnfollowUser(ctx context.Context, cred types.Credential, userID string) (*types.FollowResponse, error)
}

// State is the follow state of one user from the viewer's side
type State int

const (
	NotFollowed State = iota
	Followed
	Pending
)

func (s State) String() string {
	switch s {
	case Followed:
		return "followed"
	case Pending:
		return "pending"
	default:
		return "not followed"
	}
}

// Roster is an in-memory user list with the set of followed ids. It is safe
// for concurrent use; the lock is released while requests are in flight.
type Roster struct {
	api    FollowAPI
	logger *zap.Logger

	mu       sync.Mutex
	users    []types.UserProfile
	followed map[string]struct{}
	pending  map[string]struct{}
}

// NewRoster builds a roster over users. Nobody starts out followed.
func NewRoster(api FollowAPI, users []types.UserProfile, logger *zap.Logger) *Roster {
	return &Roster{
		api:      api,
		logger:   logging.OrNop(logger),
		users:    append([]types.UserProfile(nil), users...),
		followed: make(map[string]struct{}),
		pending:  make(map[string]struct{}),
	}
}

// Users returns a snapshot of the list
func (r *Roster) Users() []types.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]types.UserProfile(nil), r.users...)
}

// User returns the entry for id
func (r *Roster) User(id string) (types.UserProfile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return types.UserProfile{}, false
}

// State reports the follow state of id
func (r *Roster) State(id string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked(id)
}

// IsFollowed reports whether id is in the followed set
func (r *Roster) IsFollowed(id string) bool {
	return r.State(id) == Followed
}

func (r *Roster) stateLocked(id string) State {
	if _, ok := r.pending[id]; ok {
		return Pending
	}
	if _, ok := r.followed[id]; ok {
		return Followed
	}
	return NotFollowed
}

// Toggle follows id when it is not followed and unfollows it otherwise
func (r *Roster) Toggle(ctx context.Context, cred types.Credential, id string) (State, error) {
	return r.transition(ctx, cred, id, func(s State) bool { return s != Followed })
}

// Follow drives id to Followed, sending the request even if the roster
// already has it followed
func (r *Roster) Follow(ctx context.Context, cred types.Credential, id string) (State, error) {
	return r.transition(ctx, cred, id, func(State) bool { return true })
}

// Unfollow drives id to NotFollowed
func (r *Roster) Unfollow(ctx context.Context, cred types.Credential, id string) (State, error) {
	return r.transition(ctx, cred, id, func(State) bool { return false })
}

// transition marks id pending, sends the request chosen by target and
// applies the outcome
func (r *Roster) transition(ctx context.Context, cred types.Credential, id string, target func(State) bool) (State, error) {
	r.mu.Lock()
	current := r.stateLocked(id)
	if current == Pending {
		r.mu.Unlock()
		return Pending, ErrToggleInFlight
	}
	follow := target(current)
	r.pending[id] = struct{}{}
	r.mu.Unlock()

	var (
		resp *types.FollowResponse
		err  error
	)
	if follow {
		resp, err = r.api.FollowUser(ctx, cred, id)
	} else {
		resp, err = r.api.UnfollowUser(ctx, cred, id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, id)

	if err != nil {
		r.logger.Warn("follow request failed",
			zap.String("user_id", id),
			zap.Bool("follow", follow),
			zap.Error(err))
		return r.stateLocked(id), fmt.Errorf("failed to update follow state: %w", err)
	}

	if follow {
		r.followed[id] = struct{}{}
	} else {
		delete(r.followed, id)
	}
	r.applyCounts(resp)
	return r.stateLocked(id), nil
}

// applyCounts copies the server-reported counters onto the matching entries
func (r *Roster) applyCounts(resp *types.FollowResponse) {
	if resp == nil {
		return
	}
	for i := range r.users {
		if r.users[i].ID == resp.UpdatedUser.ID {
			r.users[i].FollowersCount = resp.UpdatedUser.FollowersCount
		}
		if r.users[i].ID == resp.RequestingUser.ID {
			r.users[i].FollowingCount = resp.RequestingUser.FollowingCount
		}
	}
}

package fakeapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/fridgechef/internal/types"
)

var (
	errNotFound      = errors.New("not found")
	errForbidden     = errors.New("forbidden")
	errUserExists    = errors.New("user already exists")
	errInvalidCreds  = errors.New("invalid credentials")
	errSelfFollow    = errors.New("users cannot follow themselves")
	errRatingInRange = errors.New("rating must be between 0 and 5")
)

type userRecord struct {
	profile      types.UserProfile
	passwordHash []byte
}

type recipeRecord struct {
	recipe  types.Recipe
	ratings map[string]float64
}

type followKey struct {
	follower string
	followee string
}

// store is the in-memory state of the stub backend
type store struct {
	mu      sync.RWMutex
	now     func() time.Time
	users   map[string]*userRecord
	emails  map[string]string
	order   []string
	recipes []*recipeRecord
	follows map[followKey]struct{}
}

func newStore(now func() time.Time) *store {
	return &store{
		now:     now,
		users:   make(map[string]*userRecord),
		emails:  make(map[string]string),
		follows: make(map[followKey]struct{}),
	}
}

func (s *store) createUser(name, email, password string) (types.UserProfile, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return types.UserProfile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.emails[key]; ok {
		return types.UserProfile{}, errUserExists
	}

	now := s.now()
	rec := &userRecord{
		profile: types.UserProfile{
			ID:        uuid.NewString(),
			Name:      name,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		},
		passwordHash: hash,
	}
	s.users[rec.profile.ID] = rec
	s.emails[key] = rec.profile.ID
	s.order = append(s.order, rec.profile.ID)
	return rec.profile, nil
}

func (s *store) authenticate(email, password string) (types.UserProfile, error) {
	s.mu.RLock()
	id, ok := s.emails[strings.ToLower(email)]
	var rec *userRecord
	if ok {
		rec = s.users[id]
	}
	s.mu.RUnlock()

	if rec == nil {
		return types.UserProfile{}, errInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return types.UserProfile{}, errInvalidCreds
	}
	return rec.profile, nil
}

func (s *store) user(id string) (types.UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return types.UserProfile{}, errNotFound
	}
	return rec.profile, nil
}

func (s *store) listUsers(page, limit int) []types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := paginate(s.order, page, limit)
	out := make([]types.UserProfile, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.users[id].profile)
	}
	return out
}

func (s *store) updateUser(id string, req types.UpdateProfileRequest) (types.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[id]
	if !ok {
		return types.UserProfile{}, errNotFound
	}
	if req.Name != nil {
		rec.profile.Name = *req.Name
	}
	if req.Bio != nil {
		rec.profile.Bio = *req.Bio
	}
	if req.ProfilePicture != nil {
		rec.profile.ProfilePicture = *req.ProfilePicture
	}
	rec.profile.UpdatedAt = s.now()
	return rec.profile, nil
}

// setFollow creates or removes the follower -> followee edge. Repeating the
// current state changes nothing.
func (s *store) setFollow(follower, followee string, follow bool) (types.FollowResponse, error) {
	if follower == followee {
		return types.FollowResponse{}, errSelfFollow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.users[follower]
	if !ok {
		return types.FollowResponse{}, errNotFound
	}
	to, ok := s.users[followee]
	if !ok {
		return types.FollowResponse{}, errNotFound
	}

	key := followKey{follower: follower, followee: followee}
	_, following := s.follows[key]
	switch {
	case follow && !following:
		s.follows[key] = struct{}{}
		to.profile.FollowersCount++
		from.profile.FollowingCount++
	case !follow && following:
		delete(s.follows, key)
		to.profile.FollowersCount = max(0, to.profile.FollowersCount-1)
		from.profile.FollowingCount = max(0, from.profile.FollowingCount-1)
	}

	return types.FollowResponse{UpdatedUser: to.profile, RequestingUser: from.profile}, nil
}

func (s *store) createRecipe(userID string, in types.RecipeInput) (types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author, ok := s.users[userID]
	if !ok {
		return types.Recipe{}, errNotFound
	}

	rec := &recipeRecord{ratings: make(map[string]float64)}
	rec.recipe = types.Recipe{ID: uuid.NewString(), CreatedBy: userID}
	applyInput(&rec.recipe, in)
	s.recipes = append(s.recipes, rec)
	author.profile.RecipesCount++
	return rec.recipe, nil
}

func (s *store) findRecipe(id string) (int, *recipeRecord) {
	for i, rec := range s.recipes {
		if rec.recipe.ID == id {
			return i, rec
		}
	}
	return -1, nil
}

func (s *store) recipe(id string) (types.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, rec := s.findRecipe(id)
	if rec == nil {
		return types.Recipe{}, errNotFound
	}
	return rec.recipe, nil
}

func (s *store) updateRecipe(userID, id string, in types.RecipeInput) (types.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.findRecipe(id)
	if rec == nil {
		return types.Recipe{}, errNotFound
	}
	if rec.recipe.CreatedBy != userID {
		return types.Recipe{}, errForbidden
	}
	applyInput(&rec.recipe, in)
	return rec.recipe, nil
}

func (s *store) deleteRecipe(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, rec := s.findRecipe(id)
	if rec == nil {
		return errNotFound
	}
	if rec.recipe.CreatedBy != userID {
		return errForbidden
	}
	s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	if author, ok := s.users[userID]; ok {
		author.profile.RecipesCount = max(0, author.profile.RecipesCount-1)
	}
	return nil
}

// rate records userID's score and sets the recipe rating to the mean
func (s *store) rate(userID, id string, rating float64) (types.Recipe, error) {
	if rating < 0 || rating > 5 {
		return types.Recipe{}, errRatingInRange
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, rec := s.findRecipe(id)
	if rec == nil {
		return types.Recipe{}, errNotFound
	}
	rec.ratings[userID] = rating

	var sum float64
	for _, r := range rec.ratings {
		sum += r
	}
	mean := sum / float64(len(rec.ratings))
	rec.recipe.Rating = &mean
	return rec.recipe, nil
}

func (s *store) listRecipes(page, limit int) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	recs := paginate(s.recipes, page, limit)
	out := make([]types.Recipe, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.recipe)
	}
	return out
}

// byIngredients returns recipes sharing at least one ingredient with terms,
// most matches first. Ties keep insertion order.
func (s *store) byIngredients(terms []string) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		recipe types.Recipe
		hits   int
	}
	var matches []scored
	for _, rec := range s.recipes {
		hits := 0
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			for _, ing := range rec.recipe.Ingredients {
				if strings.Contains(strings.ToLower(ing.Name), term) {
					hits++
					break
				}
			}
		}
		if hits > 0 {
			matches = append(matches, scored{recipe: rec.recipe, hits: hits})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].hits > matches[j].hits })

	out := make([]types.Recipe, len(matches))
	for i, m := range matches {
		out[i] = m.recipe
	}
	return out
}

func (s *store) searchText(term string) []types.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	term = strings.ToLower(term)
	out := []types.Recipe{}
	for _, rec := range s.recipes {
		r := rec.recipe
		if strings.Contains(strings.ToLower(r.Name), term) ||
			strings.Contains(strings.ToLower(r.Cuisine), term) ||
			strings.Contains(strings.ToLower(r.Category), term) {
			out = append(out, r)
		}
	}
	return out
}

func applyInput(r *types.Recipe, in types.RecipeInput) {
	r.Name = in.Name
	r.Category = in.Category
	r.Cuisine = in.Cuisine
	r.Difficulty = in.Difficulty
	r.ImageURL = in.ImageURL
	r.Ingredients = append([]types.Ingredient(nil), in.Ingredients...)
	r.Instructions = in.Instructions
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return nil
	}
	pages := len(items) / limit
	if len(items)%limit != 0 {
		pages++
	}
	if page > pages {
		return nil
	}
	start := (page - 1) * limit
	return items[start : start+min(limit, len(items)-start)]
}

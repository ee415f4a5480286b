package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fridgechef/internal/fakeapi"
	"github.com/pageza/fridgechef/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupClient(t *testing.T) *Client {
	t.Helper()
	srv := httptest.NewServer(fakeapi.New(fakeapi.Options{}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func signupCredential(t *testing.T, c *Client, name, email string) (types.Credential, string) {
	t.Helper()
	resp, err := c.Signup(context.Background(), name, email, "secret123")
	require.NoError(t, err)
	return types.NewCredential(resp.Token), resp.ID
}

func TestNew(t *testing.T) {
	_, err := New("localhost:3000")
	assert.Error(t, err)

	c, err := New("http://example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/api/recipes?limit=10&page=1", c.endpoint("/recipes", pageQuery(0, 0)))
}

func TestAuthFlow(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()

	signed, err := c.Signup(ctx, "Ada Lovelace", "ada@example.com", "secret123")
	require.NoError(t, err)
	require.NotNil(t, signed.User)
	assert.Equal(t, "Ada Lovelace", signed.User.Name)

	logged, err := c.Login(ctx, "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, signed.ID, logged.ID)

	claims, err := types.NewCredential(logged.Token).Claims()
	require.NoError(t, err)
	assert.Equal(t, logged.ID, claims.UserID)

	_, err = c.Login(ctx, "ada@example.com", "wrong")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	assert.Equal(t, "invalid credentials", apiErr.Payload["error"])
}

func TestRecipes(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()
	cred, userID := signupCredential(t, c, "Cook", "cook@example.com")

	created, err := c.CreateRecipe(ctx, cred, &types.RecipeInput{
		Name:         "Pancakes",
		Category:     "breakfastAndMorningMeals",
		Cuisine:      "American",
		Difficulty:   types.DifficultyEasy,
		Ingredients:  []types.Ingredient{{Name: "Flour", Amount: "200g"}, {Name: "Egg", Amount: "2"}},
		Instructions: "Mix and fry.",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, created.CreatedBy)
	assert.Equal(t, types.PlaceholderImage, created.ImageOrPlaceholder())

	got, err := c.GetRecipe(ctx, types.Credential{}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	list, err := c.ListRecipes(ctx, types.Credential{}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	updated, err := c.UpdateRecipe(ctx, cred, created.ID, &types.RecipeInput{
		Name:         "Fluffy Pancakes",
		Category:     "breakfastAndMorningMeals",
		Cuisine:      "American",
		Ingredients:  created.Ingredients,
		Instructions: created.Instructions,
	})
	require.NoError(t, err)
	assert.Equal(t, "Fluffy Pancakes", updated.Name)

	found, err := c.SearchRecipes(ctx, types.Credential{}, "fluffy")
	require.NoError(t, err)
	require.Len(t, found, 1)

	byIng, err := c.SearchByIngredients(ctx, types.Credential{}, []string{"egg"})
	require.NoError(t, err)
	require.Len(t, byIng, 1)

	rated, err := c.RateRecipe(ctx, cred, created.ID, 5)
	require.NoError(t, err)
	require.NotNil(t, rated.Rating)
	assert.Equal(t, 5.0, *rated.Rating)

	require.NoError(t, c.DeleteRecipe(ctx, cred, created.ID))
	_, err = c.GetRecipe(ctx, types.Credential{}, created.ID)
	assert.Equal(t, http.StatusNotFound, StatusCode(err))
}

func TestAuthorizationHeader(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"recipes":[]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	_, err = c.ListRecipes(context.Background(), types.Credential{}, 1, 10)
	require.NoError(t, err)
	_, err = c.ListRecipes(context.Background(), types.NewCredential("opaque-token"), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer opaque-token"}, seen)
}

func TestIngredientOrderPreserved(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(r.Body)
		body = buf.String()
		_, _ = w.Write([]byte(`{"recipes":[]}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)
	_, err = c.SearchByIngredients(context.Background(), types.Credential{}, []string{"tomato", "basil", "egg"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ingredients":["tomato","basil","egg"]}`, body)
}

func TestExpiredCredential(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c, err := New(srv.URL)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		UserID:           "u1",
	})
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = c.GetUserProfile(context.Background(), types.NewCredential(signed), "u1")
	assert.ErrorIs(t, err, types.ErrCredentialExpired)
	assert.False(t, called)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := New(url)
	require.NoError(t, err)
	_, err = c.ListRecipes(context.Background(), types.Credential{}, 1, 10)
	assert.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, 0, StatusCode(err))
}

func TestInvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		call func(*Client) error
	}{
		{
			name: "malformed json",
			body: `{"recipes":`,
			call: func(c *Client) error {
				_, err := c.ListRecipes(context.Background(), types.Credential{}, 1, 10)
				return err
			},
		},
		{
			name: "recipe without creator",
			body: `{"recipes":[{"_id":"r1","name":"Soup"}]}`,
			call: func(c *Client) error {
				_, err := c.ListRecipes(context.Background(), types.Credential{}, 1, 10)
				return err
			},
		},
		{
			name: "rating out of range",
			body: `{"_id":"r1","name":"Soup","createdBy":"u1","rating":7}`,
			call: func(c *Client) error {
				_, err := c.GetRecipe(context.Background(), types.Credential{}, "r1")
				return err
			},
		},
		{
			name: "unknown category",
			body: `{"_id":"r1","name":"Soup","createdBy":"u1","category":"brunch"}`,
			call: func(c *Client) error {
				_, err := c.GetRecipe(context.Background(), types.Credential{}, "r1")
				return err
			},
		},
		{
			name: "negative counter",
			body: `{"_id":"u1","name":"Ada","followersCount":-1}`,
			call: func(c *Client) error {
				_, err := c.GetUserProfile(context.Background(), types.Credential{}, "u1")
				return err
			},
		},
		{
			name: "auth without token",
			body: `{"id":"u1"}`,
			call: func(c *Client) error {
				_, err := c.Login(context.Background(), "a@b.co", "secret123")
				return err
			},
		},
		{
			name: "follow without requesting user",
			body: `{"updatedUser":{"_id":"u2","name":"B"}}`,
			call: func(c *Client) error {
				_, err := c.FollowUser(context.Background(), types.NewCredential("t"), "u2")
				return err
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := New(srv.URL)
			require.NoError(t, err)
			assert.ErrorIs(t, tt.call(c), ErrInvalidResponse)
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "message field", body: `{"message":"nope","code":7}`, message: "nope"},
		{name: "error field", body: `{"error":"bad"}`, message: "bad"},
		{name: "plain text", body: `upstream down`, message: "upstream down"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := newAPIError(http.StatusBadGateway, []byte(tt.body))
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.body, apiErr.Body)
			assert.Contains(t, apiErr.Error(), "502")
		})
	}

	var err error = newAPIError(http.StatusTeapot, nil)
	assert.Equal(t, http.StatusTeapot, StatusCode(err))
	assert.Equal(t, 0, StatusCode(errors.New("other")))
}

func TestUsersAndFollow(t *testing.T) {
	c := setupClient(t)
	ctx := context.Background()
	credA, idA := signupCredential(t, c, "Ada", "ada@example.com")
	_, idB := signupCredential(t, c, "Bob", "bob@example.com")

	users, err := c.ListUsers(ctx, types.Credential{}, 1, 10)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	resp, err := c.FollowUser(ctx, credA, idB)
	require.NoError(t, err)
	assert.Equal(t, idB, resp.UpdatedUser.ID)
	assert.Equal(t, 1, resp.UpdatedUser.FollowersCount)
	assert.Equal(t, idA, resp.RequestingUser.ID)
	assert.Equal(t, 1, resp.RequestingUser.FollowingCount)

	resp, err = c.UnfollowUser(ctx, credA, idB)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.UpdatedUser.FollowersCount)

	name := "Ada L."
	profile, err := c.UpdateUserProfile(ctx, credA, idA, &types.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", profile.Name)

	got, err := c.GetUserProfile(ctx, credA, idA)
	require.NoError(t, err)
	assert.Equal(t, "AL", got.Initials())
}

func TestUploadFridgeImage(t *testing.T) {
	c := setupClient(t)
	cred, _ := signupCredential(t, c, "Ada", "ada@example.com")

	scan, err := c.UploadFridgeImage(context.Background(), cred, "/tmp/milk_eggs.png", strings.NewReader("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"milk", "eggs"}, scan.Ingredients)
	assert.True(t, strings.HasPrefix(scan.Image, "data:image/png;base64,"))
}

func TestWithTracing(t *testing.T) {
	c, err := New("http://localhost:3000", WithTracing())
	require.NoError(t, err)
	assert.NotNil(t, c.http.Transport)
}

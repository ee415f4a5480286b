package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fridgechef/internal/client"
	"github.com/pageza/fridgechef/internal/mocks"
	"github.com/pageza/fridgechef/internal/service"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the user id", func(t *testing.T) {
		api := new(mocks.MockAPI)
		store := session.NewMemoryStore()
		svc := service.NewAuthService(api, store, nil)

		api.On("Login", mock.Anything, "ada@example.com", "secret123").
			Return(&types.AuthResponse{Token: "tok", ID: "u1"}, nil)

		sess, err := svc.Login(ctx, "ada@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "u1", sess.UserID)
		assert.Equal(t, "Bearer tok", sess.Credential.Header())

		id, err := svc.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, "u1", id)
		api.AssertExpectations(t)
	})

	t.Run("validation happens before any request", func(t *testing.T) {
		api := new(mocks.MockAPI)
		svc := service.NewAuthService(api, session.NewMemoryStore(), nil)

		tests := []struct {
			email, password string
			field, message  string
		}{
			{"", "secret123", "email", "Please enter your email"},
			{"not-an-email", "secret123", "email", "Please enter a valid email"},
			{"a@b", "secret123", "email", "Please enter a valid email"},
			{"ada@example.com", "", "password", "Please enter your password"},
			{"ada@example.com", "12345", "password", "Password should be at least 6 characters"},
		}
		for _, tt := range tests {
			_, err := svc.Login(ctx, tt.email, tt.password)
			var verrs service.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.message, verrs.Field(tt.field))
		}
		api.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("server rejection leaves no session", func(t *testing.T) {
		api := new(mocks.MockAPI)
		store := session.NewMemoryStore()
		svc := service.NewAuthService(api, store, nil)

		api.On("Login", mock.Anything, "ada@example.com", "wrongpass").
			Return(nil, &client.APIError{StatusCode: 401, Message: "invalid credentials"})

		_, err := svc.Login(ctx, "ada@example.com", "wrongpass")
		assert.Equal(t, 401, client.StatusCode(err))

		_, err = svc.Current(ctx)
		assert.ErrorIs(t, err, session.ErrNoSession)
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	api := new(mocks.MockAPI)
	svc := service.NewAuthService(api, session.NewMemoryStore(), nil)

	_, err := svc.Signup(ctx, " ", "ada@example.com", "secret123")
	var verrs service.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Please enter your full name", verrs.Field("fullName"))

	api.On("Signup", mock.Anything, "Ada", "ada@example.com", "secret123").
		Return(&types.AuthResponse{Token: "tok", ID: "u9"}, nil)
	sess, err := svc.Signup(ctx, "Ada", "ada@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u9", sess.UserID)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	svc := service.NewAuthService(new(mocks.MockAPI), store, nil)

	require.NoError(t, session.Save(ctx, store, "u1"))
	require.NoError(t, svc.Logout(ctx))
	_, err := svc.Current(ctx)
	assert.ErrorIs(t, err, session.ErrNoSession)

	require.NoError(t, svc.Logout(ctx))
}

type failingStore struct{ session.MemoryStore }

func (*failingStore) Set(context.Context, string, string) error { return errors.New("disk full") }

func TestAuthService_LoginStoreFailure(t *testing.T) {
	api := new(mocks.MockAPI)
	svc := service.NewAuthService(api, &failingStore{}, nil)
	api.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(&types.AuthResponse{Token: "tok", ID: "u1"}, nil)

	_, err := svc.Login(context.Background(), "ada@example.com", "secret123")
	assert.ErrorContains(t, err, "disk full")
}

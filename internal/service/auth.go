package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

// AuthService signs users in and out and keeps the session id
type AuthService struct {
	api    AuthAPI
	store  session.Store
	logger *zap.Logger
}

func NewAuthService(api AuthAPI, store session.Store, logger *zap.Logger) *AuthService {
	return &AuthService{
		api:    api,
		store:  store,
		logger: logging.OrNop(logger),
	}
}

// Login validates the form, authenticates and stores the returned user id
func (s *AuthService) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if err := ValidateLogin(email, password); err != nil {
		return nil, err
	}
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.start(ctx, resp)
}

// Signup validates the form, registers and stores the returned user id
func (s *AuthService) Signup(ctx context.Context, fullName, email, password string) (*session.Session, error) {
	if err := ValidateSignup(fullName, email, password); err != nil {
		return nil, err
	}
	resp, err := s.api.Signup(ctx, fullName, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	return s.start(ctx, resp)
}

func (s *AuthService) start(ctx context.Context, resp *types.AuthResponse) (*session.Session, error) {
	if err := session.Save(ctx, s.store, resp.ID); err != nil {
		return nil, err
	}
	s.logger.Info("session started", zap.String("user_id", resp.ID))
	return &session.Session{UserID: resp.ID, Credential: types.NewCredential(resp.Token)}, nil
}

// Logout removes the stored user id
func (s *AuthService) Logout(ctx context.Context) error {
	if err := session.Clear(ctx, s.store); err != nil {
		return err
	}
	s.logger.Info("session cleared")
	return nil
}

// Current returns the stored user id, or session.ErrNoSession
func (s *AuthService) Current(ctx context.Context) (string, error) {
	return session.Current(ctx, s.store)
}

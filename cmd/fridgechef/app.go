package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/config"
	"github.com/pageza/fridgechef/internal/client"
	"github.com/pageza/fridgechef/internal/logging"
	"github.com/pageza/fridgechef/internal/media"
	"github.com/pageza/fridgechef/internal/service"
	"github.com/pageza/fridgechef/internal/session"
	"github.com/pageza/fridgechef/internal/types"
)

// app wires the services for one CLI invocation
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client *client.Client
	store  session.Store
	cred   types.Credential

	auth     *service.AuthService
	profiles *service.ProfileService
	recipes  *service.RecipeService
	fridge   *service.FridgeService
}

func newApp(ctx context.Context, opts *options) (*app, error) {
	cfg, err := config.LoadConfigFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if opts.verbose {
		level = "debug"
	}
	logger, err := logging.New(cfg.Environment, level)
	if err != nil {
		return nil, err
	}

	clientOpts := []client.Option{client.WithLogger(logger)}
	if cfg.Tracing {
		clientOpts = append(clientOpts, client.WithTracing())
	}
	api, err := client.New(cfg.APIBaseURL, clientOpts...)
	if err != nil {
		return nil, err
	}

	store, err := session.NewStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	var uploader service.ImageUploader
	s3cfg, err := config.NewS3Config(ctx, cfg)
	switch {
	case err == nil:
		uploader = media.NewS3Uploader(s3cfg, cfg.ImageURLExpiry, logger)
	case errors.Is(err, config.ErrNoBucket):
		logger.Debug("recipe image storage disabled")
	default:
		logger.Warn("recipe image storage unavailable", zap.Error(err))
	}

	token := opts.token
	if token == "" {
		token = strings.TrimSpace(os.Getenv(tokenEnv))
	}

	return &app{
		cfg:      cfg,
		logger:   logger,
		client:   api,
		store:    store,
		cred:     types.NewCredential(token),
		auth:     service.NewAuthService(api, store, logger),
		profiles: service.NewProfileService(api, store, logger),
		recipes:  service.NewRecipeService(api, store, uploader, logger),
		fridge:   service.NewFridgeService(api, logger),
	}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close session store", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// formatError renders validation and API errors for a terminal
func formatError(err error) string {
	var verrs service.ValidationErrors
	if errors.As(err, &verrs) {
		lines := make([]string, len(verrs))
		for i, v := range verrs {
			lines[i] = fmt.Sprintf("  %s: %s", v.Field, v.Message)
		}
		return "Error:\n" + strings.Join(lines, "\n")
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Error: server responded %d: %s", apiErr.StatusCode, apiErr.Message)
	}
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "Error: not signed in, run 'fridgechef login' first"
	case errors.Is(err, types.ErrCredentialExpired):
		return "Error: your token has expired, run 'fridgechef login' again"
	case errors.Is(err, client.ErrTransport):
		return "Error: could not reach the FridgeChef backend: " + err.Error()
	}
	return "Error: " + err.Error()
}

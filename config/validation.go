package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// MaxImageURLExpiry is the longest lifetime SigV4 allows for a presigned URL
const MaxImageURLExpiry = 7 * 24 * time.Hour

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found in a Config
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ValidateConfig checks the settings shared by the client and the stub
// backend. Server-only requirements are in ValidateServer.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors

	u, err := url.Parse(cfg.APIBaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{Field: "api_base_url", Message: fmt.Sprintf("%q is not an absolute http(s) URL", cfg.APIBaseURL)})
	}

	switch cfg.SessionBackend {
	case SessionSQLite:
		if cfg.SessionPath == "" {
			errs = append(errs, ValidationError{Field: "session_path", Message: "required for the sqlite session backend"})
		}
	case SessionRedis:
		if cfg.RedisURL == "" && cfg.RedisHost == "" {
			errs = append(errs, ValidationError{Field: "redis_url", Message: "redis_url or redis_host is required for the redis session backend"})
		}
	case SessionMemory:
	default:
		errs = append(errs, ValidationError{Field: "session_backend", Message: fmt.Sprintf("unknown backend %q", cfg.SessionBackend)})
	}

	if cfg.ServerPort != "" {
		if _, err := strconv.Atoi(cfg.ServerPort); err != nil {
			errs = append(errs, ValidationError{Field: "server_port", Message: fmt.Sprintf("%q is not a port number", cfg.ServerPort)})
		}
	}

	if cfg.ImageURLExpiry < 0 {
		errs = append(errs, ValidationError{Field: "image_url_expiry", Message: "must not be negative"})
	}
	if cfg.ImageURLExpiry > MaxImageURLExpiry {
		errs = append(errs, ValidationError{Field: "image_url_expiry", Message: fmt.Sprintf("must be at most %v, the longest S3 presigned URL lifetime", MaxImageURLExpiry)})
	}

	if cfg.RecipeRateLimit < 0 {
		errs = append(errs, ValidationError{Field: "recipe_rate_limit", Message: "must not be negative"})
	}
	if cfg.RecipeRateLimit > 0 && cfg.RateLimitWindow <= 0 {
		errs = append(errs, ValidationError{Field: "rate_limit_window", Message: "must be positive when recipe_rate_limit is set"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateServer checks what the stub backend needs on top of ValidateConfig.
// The token signing secret never has to reach a client device.
func ValidateServer(cfg *Config) error {
	var errs ValidationErrors

	if cfg.Environment.IsProduction() && cfg.JWTSecret == "" {
		errs = append(errs, ValidationError{Field: "jwt_secret", Message: "jwt_secret secret is required in production"})
	}
	if cfg.ServerPort == "" {
		errs = append(errs, ValidationError{Field: "server_port", Message: "required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

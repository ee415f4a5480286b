package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Session storage backends
const (
	SessionSQLite = "sqlite"
	SessionRedis  = "redis"
	SessionMemory = "memory"
)

// Config holds all configuration for the client, the CLI and the stub backend
type Config struct {
	Environment Environment `yaml:"-"`

	// Remote API
	APIBaseURL string `yaml:"api_base_url"`
	Tracing    bool   `yaml:"tracing"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Session storage
	SessionBackend string `yaml:"session_backend"`
	SessionPath    string `yaml:"session_path"`

	// Redis configuration
	RedisURL      string `yaml:"redis_url"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// Recipe image storage
	S3Bucket       string        `yaml:"s3_bucket"`
	AWSRegion      string        `yaml:"aws_region"`
	ImageURLExpiry time.Duration `yaml:"image_url_expiry"`

	// Stub backend
	ServerHost     string   `yaml:"server_host"`
	ServerPort     string   `yaml:"server_port"`
	JWTSecret      string   `yaml:"jwt_secret"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// RecipeRateLimit caps recipe creations per user per RateLimitWindow on
	// the stub backend. Zero disables it; it needs Redis.
	RecipeRateLimit int           `yaml:"recipe_rate_limit"`
	RateLimitWindow time.Duration `yaml:"rate_limit_window"`
}

// Default returns a Config populated with development defaults
func Default() *Config {
	return &Config{
		Environment:     GetEnvironment(),
		APIBaseURL:      "http://localhost:3000",
		LogLevel:        "info",
		SessionBackend:  SessionSQLite,
		SessionPath:     defaultSessionPath(),
		RedisHost:       "localhost",
		RedisPort:       "6379",
		ImageURLExpiry:  7 * 24 * time.Hour,
		ServerHost:      "localhost",
		ServerPort:      "3000",
		AllowedOrigins:  []string{"http://localhost:8081", "http://localhost:19006"},
		RateLimitWindow: time.Hour,
	}
}

// LoadConfig creates a new Config from defaults, an optional YAML file,
// environment variables and secrets, in that order of precedence.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(os.Getenv("FRIDGECHEF_CONFIG"))
}

// LoadConfigFile is LoadConfig with an explicit YAML file path. An empty path
// skips the file.
func LoadConfigFile(path string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		if err := loadYAML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load environment configuration: %w", err)
	}

	if cfg.Environment.IsProduction() {
		loadProdSecrets(cfg)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadEnv overrides cfg with any environment variables that are set
func loadEnv(cfg *Config) error {
	setString(&cfg.APIBaseURL, "API_BASE_URL")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.SessionBackend, "SESSION_BACKEND")
	setString(&cfg.SessionPath, "SESSION_PATH")
	setString(&cfg.RedisURL, "REDIS_URL")
	setString(&cfg.RedisHost, "REDIS_HOST")
	setString(&cfg.RedisPort, "REDIS_PORT")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	setString(&cfg.S3Bucket, "S3_BUCKET_NAME")
	setString(&cfg.AWSRegion, "AWS_REGION")
	setString(&cfg.ServerHost, "SERVER_HOST")
	setString(&cfg.ServerPort, "SERVER_PORT")
	setString(&cfg.JWTSecret, "JWT_SECRET")

	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TRACING_ENABLED: %w", err)
		}
		cfg.Tracing = enabled
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("REDIS_DB: %w", err)
		}
		cfg.RedisDB = db
	}
	if v := os.Getenv("RECIPE_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("RECIPE_RATE_LIMIT: %w", err)
		}
		cfg.RecipeRateLimit = n
	}
	if v := os.Getenv("RATE_LIMIT_WINDOW"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("RATE_LIMIT_WINDOW: %w", err)
		}
		cfg.RateLimitWindow = d
	}
	if v := os.Getenv("IMAGE_URL_EXPIRY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("IMAGE_URL_EXPIRY: %w", err)
		}
		cfg.ImageURLExpiry = d
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	return nil
}

// loadProdSecrets fills sensitive values from Docker secrets when the
// environment did not provide them
func loadProdSecrets(cfg *Config) {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = readSecret("jwt_secret")
	}
	if cfg.RedisPassword == "" {
		cfg.RedisPassword = readSecret("redis_password")
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fridgechef-session.db"
	}
	return filepath.Join(dir, "fridgechef", "session.db")
}

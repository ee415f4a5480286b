// Command fakeapi serves an in-memory FridgeChef backend for local
// development and demos.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pageza/fridgechef/config"
	"github.com/pageza/fridgechef/internal/database"
	"github.com/pageza/fridgechef/internal/fakeapi"
	"github.com/pageza/fridgechef/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.LoadConfigFile(os.Getenv("FRIDGECHEF_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := config.ValidateServer(cfg); err != nil {
		log.Fatalf("Invalid server configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	opts := fakeapi.Options{
		JWTSecret:      cfg.JWTSecret,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
	}
	if cfg.RecipeRateLimit > 0 {
		redisClient, err := database.NewRedisClient(context.Background(), cfg, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		opts.RecipeLimiter = fakeapi.NewRecipeCreationRateLimiter(redisClient, cfg.RecipeRateLimit, cfg.RateLimitWindow)
		logger.Info("Recipe creation rate limit enabled",
			zap.Int("limit", cfg.RecipeRateLimit),
			zap.Duration("window", cfg.RateLimitWindow))
	}
	if !cfg.Environment.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	handler := fakeapi.New(opts)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		errChan <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
		return
	case sig := <-quit:
		logger.Info("Received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped")
}

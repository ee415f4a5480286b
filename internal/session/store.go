package session

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/fridgechef/config"
	"github.com/pageza/fridgechef/internal/database"
)

// NewStore opens the store selected by cfg.SessionBackend
func NewStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.SessionBackend {
	case config.SessionMemory:
		return NewMemoryStore(), nil
	case config.SessionSQLite, "":
		return NewSQLiteStore(cfg.SessionPath, logger)
	case config.SessionRedis:
		client, err := database.NewRedisClient(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return NewRedisStore(client, ""), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}

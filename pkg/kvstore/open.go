package kvstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/pips-site-api/pkg/cache"
	"github.com/noah-isme/pips-site-api/pkg/config"
	"github.com/noah-isme/pips-site-api/pkg/database"
)

// Open builds the backend selected by cfg.Storage.Driver.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Backend, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	driver := cfg.Storage.Driver
	if driver == "" {
		driver = config.StorageSQLite
	}

	switch driver {
	case config.StorageMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		return NewMemoryBackend(), nil
	case config.StorageRedis:
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return NewRedisBackend(client, cfg.Storage.KeyPrefix), nil
	case config.StoragePostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return ensureSQL(ctx, NewSQLBackend(db))
	case config.StorageSQLite:
		db, err := database.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		return ensureSQL(ctx, NewSQLBackend(db))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func ensureSQL(ctx context.Context, b *SQLBackend) (Backend, error) {
	if err := b.EnsureSchema(ctx); err != nil {
		_ = b.Close()
		return nil, err
	}
	return b, nil
}

// Package engine builds the storage Provider selected by configuration.
package engine

import (
	"fmt"

	"github.com/vibe-gaming/hbnb/internal/cache"
	"github.com/vibe-gaming/hbnb/internal/config"
	"github.com/vibe-gaming/hbnb/internal/db"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/filestore"
	"github.com/vibe-gaming/hbnb/internal/storage/redisstore"
	"github.com/vibe-gaming/hbnb/internal/storage/sqlstore"
)

func Open(cfg *config.Config, opts ...storage.Option) (*storage.Provider, error) {
	backend, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	return storage.NewProvider(backend, opts...), nil
}

func openBackend(cfg *config.Config) (storage.Backend, error) {
	switch cfg.Storage.Type {
	case config.StorageFile:
		store, err := filestore.New(cfg.Storage.FilePath)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		return store, nil

	case config.StorageDB:
		conn, err := db.New(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("%s connect problem: %w", cfg.Database.Driver, err)
		}
		if err := db.Migrate(cfg.Database, conn); err != nil {
			_ = conn.Close()
			return nil, err
		}
		return sqlstore.New(conn), nil

	case config.StorageRedis:
		client, err := cache.NewRedis(cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("redis connect problem: %w", err)
		}
		return redisstore.New(client, cfg.Cache.Prefix), nil
	}
	return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
}

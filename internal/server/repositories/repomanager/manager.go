// Package repomanager owns the storage backend handles and vends the
// repositories built on them.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devopschat/internal/server/config"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
)

// RepositoryManager is constructed once at startup and injected into the
// services. Close releases the backend connection.
type RepositoryManager interface {
	Users() users.Repository
	Messages() messages.Repository
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	Backend() string
}

// New connects to the backend selected in cfg, verifies it is reachable
// within cfg.StoreTimeout and applies migrations.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch cfg.StorageBackend {
	case config.StorageMemory:
		return NewMemoryRepositoryManager(), nil
	case config.StoragePostgres:
		m, err = OpenPostgres(cfg.DatabaseDSN)
	case config.StorageMongo:
		m, err = OpenMongo(cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	if err != nil {
		return nil, err
	}

	if err := prepare(ctx, m, cfg); err != nil {
		_ = m.Close(context.WithoutCancel(ctx))
		return nil, err
	}
	return m, nil
}

func prepare(ctx context.Context, m RepositoryManager, cfg *config.Config) error {
	pingCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	defer cancel()
	if err := m.Ping(pingCtx); err != nil {
		return fmt.Errorf("%s unreachable: %w", m.Backend(), err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		return fmt.Errorf("%s migrations: %w", m.Backend(), err)
	}
	return nil
}

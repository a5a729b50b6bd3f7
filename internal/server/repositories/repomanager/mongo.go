package repomanager

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/server/config"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoRepositoryManager vends MongoDB-backed repositories.
type MongoRepositoryManager struct {
	client   *mongo.Client
	users    *users.MongoRepository
	messages *messages.MongoRepository
}

// OpenMongo creates a client for uri. The driver connects lazily; server
// selection gives up after selectionTimeout.
func OpenMongo(uri, database string, selectionTimeout time.Duration) (*MongoRepositoryManager, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(selectionTimeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	db := client.Database(database)
	return &MongoRepositoryManager{
		client:   client,
		users:    users.NewMongoRepository(db),
		messages: messages.NewMongoRepository(db),
	}, nil
}

func (m *MongoRepositoryManager) Users() users.Repository       { return m.users }
func (m *MongoRepositoryManager) Messages() messages.Repository { return m.messages }
func (m *MongoRepositoryManager) Backend() string               { return config.StorageMongo }

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// RunMigrations creates the indexes; MongoDB needs no schema.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	if err := m.users.EnsureIndexes(ctx); err != nil {
		return err
	}
	return m.messages.EnsureIndexes(ctx)
}

package repomanager

import (
	"context"

	"github.com/dmitrijs2005/devopschat/internal/server/config"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	messages *messages.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		messages: messages.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Users() users.Repository             { return m.users }
func (m *MemoryRepositoryManager) Messages() messages.Repository       { return m.messages }
func (m *MemoryRepositoryManager) Backend() string                     { return config.StorageMemory }
func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Ping(context.Context) error          { return nil }
func (m *MemoryRepositoryManager) Close(context.Context) error         { return nil }

package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
)

// UnavailableRepositoryManager stands in for a backend that could not be
// reached at startup. Every repository call fails with an error matching
// common.ErrUnavailable, so the server keeps serving in degraded mode.
type UnavailableRepositoryManager struct {
	backend string
	err     error
}

func NewUnavailableRepositoryManager(backend string, cause error) *UnavailableRepositoryManager {
	return &UnavailableRepositoryManager{
		backend: backend,
		err:     fmt.Errorf("%w: %w", common.ErrUnavailable, cause),
	}
}

func (m *UnavailableRepositoryManager) Users() users.Repository { return unavailableUsers{m.err} }
func (m *UnavailableRepositoryManager) Messages() messages.Repository {
	return unavailableMessages{m.err}
}
func (m *UnavailableRepositoryManager) Backend() string { return m.backend }
func (m *UnavailableRepositoryManager) RunMigrations(context.Context) error {
	return m.err
}
func (m *UnavailableRepositoryManager) Ping(context.Context) error  { return m.err }
func (m *UnavailableRepositoryManager) Close(context.Context) error { return nil }

type unavailableUsers struct{ err error }

func (u unavailableUsers) Create(context.Context, *models.User) (*models.User, error) {
	return nil, u.err
}

func (u unavailableUsers) GetByEmail(context.Context, string) (*models.User, error) {
	return nil, u.err
}

type unavailableMessages struct{ err error }

func (u unavailableMessages) Append(context.Context, *models.ChatMessage) error { return u.err }

func (u unavailableMessages) AppendTurn(context.Context, *models.ChatMessage, *models.ChatMessage) error {
	return u.err
}

func (u unavailableMessages) ListByUser(context.Context, string) ([]*models.ChatMessage, error) {
	return nil, u.err
}

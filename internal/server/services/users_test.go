package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeUsersRepo struct {
	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getOut, f.getErr
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	users    users.Repository
	messages messages.Repository
}

func (f *fakeRepoManager) Users() users.Repository       { return f.users }
func (f *fakeRepoManager) Messages() messages.Repository { return f.messages }

func newUsers(m repomanager.RepositoryManager) *UserService {
	return NewUserService(m, logging.Nop{})
}

func downManager() repomanager.RepositoryManager {
	return repomanager.NewUnavailableRepositoryManager("postgres", errors.New("connection refused"))
}

// --- Register ---

func TestRegister_StoresHashOnly(t *testing.T) {
	m := repomanager.NewMemoryRepositoryManager()
	svc := newUsers(m)

	u, err := svc.Register(context.Background(), "alice@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.True(t, strings.HasPrefix(u.PasswordHash, "$argon2id$"))
	assert.NotContains(t, u.PasswordHash, "hunter2")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newUsers(repomanager.NewMemoryRepositoryManager())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.io", "p1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@x.io", "p2")
	assert.ErrorIs(t, err, common.ErrConflict)

	_, err = svc.Authenticate(ctx, "a@x.io", "p1")
	assert.NoError(t, err, "the first account is untouched")
}

func TestRegister_Validation(t *testing.T) {
	svc := newUsers(repomanager.NewMemoryRepositoryManager())

	tests := []struct {
		name, email, password string
	}{
		{"empty email", "", "pw"},
		{"no at sign", "not-an-email", "pw"},
		{"display name", "Alice <alice@example.com>", "pw"},
		{"surrounding space", " alice@example.com", "pw"},
		{"two addresses", "a@x.io, b@x.io", "pw"},
		{"empty password", "alice@example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.email, tt.password)
			assert.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestRegister_StoreUnreachable(t *testing.T) {
	_, err := newUsers(downManager()).Register(context.Background(), "a@x.io", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.NotErrorIs(t, err, common.ErrConflict)
}

// --- Authenticate ---

func TestAuthenticate(t *testing.T) {
	svc := newUsers(repomanager.NewMemoryRepositoryManager())
	ctx := context.Background()

	reg, err := svc.Register(ctx, "bob@example.com", "s3cret")
	require.NoError(t, err)

	u, err := svc.Authenticate(ctx, "bob@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, u.ID)

	_, err = svc.Authenticate(ctx, "bob@example.com", "wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "Bob@example.com", "s3cret")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials, "email is matched exactly")
}

func TestAuthenticate_UnknownAndWrongLookAlike(t *testing.T) {
	svc := newUsers(repomanager.NewMemoryRepositoryManager())
	ctx := context.Background()
	_, err := svc.Register(ctx, "c@x.io", "pw")
	require.NoError(t, err)

	_, errWrong := svc.Authenticate(ctx, "c@x.io", "nope")
	_, errUnknown := svc.Authenticate(ctx, "d@x.io", "nope")
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAuthenticate_StoreUnreachable(t *testing.T) {
	_, err := newUsers(downManager()).Authenticate(context.Background(), "a@x.io", "pw")
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthenticate_CorruptStoredHash(t *testing.T) {
	m := &fakeRepoManager{users: &fakeUsersRepo{getOut: &models.User{ID: "u1", Email: "a@x.io", PasswordHash: "plaintext"}}}
	_, err := newUsers(m).Authenticate(context.Background(), "a@x.io", "plaintext")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

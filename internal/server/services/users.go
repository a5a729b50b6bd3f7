// Package services contains the server-side business logic shared by the
// HTTP and gRPC adapters.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"sync"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/cryptox"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/repomanager"
)

// UserService registers accounts and verifies credentials.
type UserService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewUserService(m repomanager.RepositoryManager, log logging.Logger) *UserService {
	return &UserService{
		repomanager: m,
		log:         log.With("module", "users"),
	}
}

// Register creates an account. It returns common.ErrValidation for a
// malformed email or an empty password and common.ErrConflict when the email
// is already registered.
func (s *UserService) Register(ctx context.Context, email, password string) (*models.User, error) {
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	hash, err := cryptox.HashPassword(pw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	u, err := s.repomanager.Users().Create(ctx, &models.User{Email: email, PasswordHash: hash})
	if err != nil {
		if !errors.Is(err, common.ErrConflict) {
			s.log.Error(ctx, "error creating user", "error", err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", u.ID)
	return u, nil
}

// Authenticate returns the user owning email when password matches.
// Unknown email and wrong password both yield common.ErrInvalidCredentials;
// for unknown emails a hash is still verified so response time does not
// reveal whether the account exists.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	u, err := s.repomanager.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_, _ = cryptox.VerifyPassword(s.dummy(), pw)
			return nil, common.ErrInvalidCredentials
		}
		s.log.Error(ctx, "error looking up user", "error", err)
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := cryptox.VerifyPassword(u.PasswordHash, pw)
	if err != nil {
		s.log.Error(ctx, "stored password hash unreadable", "user_id", u.ID, "error", err)
		return nil, common.ErrInvalidCredentials
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	return u, nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		h, err := cryptox.HashPassword(common.GenerateRandByteArray(16))
		if err != nil {
			panic(err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

// validateEmail accepts a bare addr-spec such as "alice@example.com".
// Display names, angle brackets and surrounding whitespace are rejected.
func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Name != "" || addr.Address != email || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: %q is not a valid email address", common.ErrValidation, email)
	}
	return nil
}

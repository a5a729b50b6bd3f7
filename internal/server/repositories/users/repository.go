// Package users persists registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

// Repository stores users keyed by their unique email.
//
// Create fills in the store-assigned ID and CreatedAt and returns
// common.ErrConflict when the email is already taken. GetByEmail returns
// common.ErrorNotFound for an unknown email.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

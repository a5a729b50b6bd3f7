// Package messages persists the per-user chat history.
package messages

import (
	"context"

	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

// Repository is an append-only log of chat messages.
//
// Append stores one message and fills in its ID and Timestamp. AppendTurn
// stores a question and its answer so that either both or neither become
// visible. ListByUser returns all messages of a user ordered by timestamp,
// then ID.
type Repository interface {
	Append(ctx context.Context, msg *models.ChatMessage) error
	AppendTurn(ctx context.Context, question, answer *models.ChatMessage) error
	ListByUser(ctx context.Context, userID string) ([]*models.ChatMessage, error)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/repomanager"
)

// HistoryService is the per-user append-only conversation log.
type HistoryService struct {
	repomanager repomanager.RepositoryManager
	log         logging.Logger
}

func NewHistoryService(m repomanager.RepositoryManager, log logging.Logger) *HistoryService {
	return &HistoryService{
		repomanager: m,
		log:         log.With("module", "history"),
	}
}

func newMessage(userID, message string, sender models.Sender) (*models.ChatMessage, error) {
	userID = models.CanonicalUserID(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", common.ErrValidation)
	}
	if !sender.Valid() {
		return nil, fmt.Errorf("%w: unknown sender %q", common.ErrValidation, sender)
	}
	return &models.ChatMessage{UserID: userID, Message: message, Sender: sender}, nil
}

// Append stores one message with a store-assigned timestamp. Store failures
// are returned wrapped with common.ErrWriteFailed.
func (s *HistoryService) Append(ctx context.Context, userID, message string, sender models.Sender) error {
	msg, err := newMessage(userID, message, sender)
	if err != nil {
		return err
	}

	if err := s.repomanager.Messages().Append(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", common.ErrWriteFailed, err)
	}
	return nil
}

// AppendTurn stores a question and its answer as one unit.
func (s *HistoryService) AppendTurn(ctx context.Context, userID, question, answer string) error {
	q, err := newMessage(userID, question, models.SenderUser)
	if err != nil {
		return err
	}
	a, err := newMessage(userID, answer, models.SenderBot)
	if err != nil {
		return err
	}

	if err := s.repomanager.Messages().AppendTurn(ctx, q, a); err != nil {
		return fmt.Errorf("%w: %w", common.ErrWriteFailed, err)
	}
	return nil
}

// List returns the user's messages in ascending timestamp order. When the
// store cannot be read it logs a warning and returns an empty slice with
// ok=false instead of an error.
func (s *HistoryService) List(ctx context.Context, userID string) (msgs []*models.ChatMessage, ok bool) {
	userID = models.CanonicalUserID(userID)
	if userID == "" {
		return []*models.ChatMessage{}, true
	}

	msgs, err := s.repomanager.Messages().ListByUser(ctx, userID)
	if err != nil {
		s.log.Warn(ctx, "history read degraded", "user_id", userID, "error", err)
		return []*models.ChatMessage{}, false
	}
	if msgs == nil {
		msgs = []*models.ChatMessage{}
	}
	return msgs, true
}

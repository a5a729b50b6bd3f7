package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/llm"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

type historyWriter interface {
	Append(ctx context.Context, userID, message string, sender models.Sender) error
	AppendTurn(ctx context.Context, userID, question, answer string) error
}

type ChatOptions struct {
	MaxTokens    int
	LLMTimeout   time.Duration
	StoreTimeout time.Duration
	// AtomicTurns stores question and answer in one transaction instead of
	// two independent appends.
	AtomicTurns bool
}

// ChatService answers a question through the LLM and records the turn.
// It keeps no state between calls.
type ChatService struct {
	llm     llm.Client
	history historyWriter
	opts    ChatOptions
	log     logging.Logger
}

func NewChatService(client llm.Client, history historyWriter, opts ChatOptions, log logging.Logger) *ChatService {
	return &ChatService{
		llm:     client,
		history: history,
		opts:    opts,
		log:     log.With("module", "chat"),
	}
}

// Ask returns the model's answer to message.
//
// An empty user id or a blank message fails with common.ErrValidation before
// the model is called. A model failure returns an error matching
// common.ErrUpstream and nothing is stored. Once an answer exists it is
// returned even if recording the turn fails.
func (s *ChatService) Ask(ctx context.Context, userID, message string) (string, error) {
	userID = models.CanonicalUserID(userID)
	if userID == "" {
		return "", fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("%w: message is required", common.ErrValidation)
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()

	answer, err := s.llm.Complete(llmCtx, llm.SystemPolicy, message, s.opts.MaxTokens)
	if err != nil {
		s.log.Warn(ctx, "llm call failed", "user_id", userID, "error", err)
		if !errors.Is(err, common.ErrUpstream) {
			err = fmt.Errorf("%w: %w", common.ErrUpstream, err)
		}
		return "", fmt.Errorf("ask: %w", err)
	}

	s.record(ctx, userID, message, answer)
	return answer, nil
}

// record persists the turn on a context detached from the caller, so a
// client hanging up after the answer was produced does not drop the turn.
func (s *ChatService) record(ctx context.Context, userID, question, answer string) {
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.StoreTimeout)
	defer cancel()

	if s.opts.AtomicTurns {
		if err := s.history.AppendTurn(storeCtx, userID, question, answer); err != nil {
			s.log.Error(ctx, "failed to record turn", "user_id", userID, "error", err)
		}
		return
	}

	if err := s.history.Append(storeCtx, userID, question, models.SenderUser); err != nil {
		s.log.Error(ctx, "failed to record question", "user_id", userID, "error", err)
	}
	if err := s.history.Append(storeCtx, userID, answer, models.SenderBot); err != nil {
		s.log.Error(ctx, "failed to record answer", "user_id", userID, "error", err)
	}
}

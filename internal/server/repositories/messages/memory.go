package messages

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

// MemoryRepository keeps the chat log in process memory.
type MemoryRepository struct {
	mu     sync.RWMutex
	seq    int64
	byUser map[string][]models.ChatMessage
	clock  *monotonicClock
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUser: make(map[string][]models.ChatMessage),
		clock:  newMonotonicClock(time.Microsecond),
	}
}

func (r *MemoryRepository) Append(ctx context.Context, msg *models.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendLocked(msg)
	return nil
}

func (r *MemoryRepository) AppendTurn(ctx context.Context, question, answer *models.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.appendLocked(question)
	r.appendLocked(answer)
	return nil
}

func (r *MemoryRepository) appendLocked(msg *models.ChatMessage) {
	r.seq++
	msg.ID = strconv.FormatInt(r.seq, 10)
	msg.Timestamp = r.clock.Next()
	r.byUser[msg.UserID] = append(r.byUser[msg.UserID], *msg)
}

// ListByUser returns copies in insertion order, which is also timestamp
// order since the clock is monotonic and appends are serialised.
func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.ChatMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.byUser[userID]
	result := make([]*models.ChatMessage, 0, len(stored))
	for i := range stored {
		m := stored[i]
		result = append(result, &m)
	}
	return result, nil
}

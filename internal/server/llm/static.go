package llm

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/devopschat/internal/common"
)

const defaultStaticReply = "This is a development reply. Configure an LLM provider to get real answers."

// StaticClient answers every question with a fixed reply. It backs debug
// mode and local development without provider credentials.
type StaticClient struct {
	reply string
}

func NewStaticClient(reply string) *StaticClient {
	if strings.TrimSpace(reply) == "" {
		reply = defaultStaticReply
	}
	return &StaticClient{reply: reply}
}

func (c *StaticClient) Complete(ctx context.Context, _, userMessage string, _ int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", upstreamError(err)
	}
	if strings.TrimSpace(userMessage) == "" {
		return "", common.ErrValidation
	}
	return c.reply, nil
}

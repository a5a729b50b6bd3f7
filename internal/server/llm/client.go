// Package llm talks to the language model that answers course questions.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/config"
)

// Deflection is the reply the model is instructed to give for questions
// outside the course topics.
const Deflection = "I am sorry, I can only answer questions related to DevOps topics taught by Sir Qasim Malik."

// SystemPolicy is sent as the system instruction with every question.
// Topic scoping is left entirely to the model.
const SystemPolicy = `You are a helpful assistant that solves doubts about the DevOps class taught by Sir Qasim Malik.
Sir Qasim Malik is a DevOps Engineer and Instructor at the COMSATS University Islamabad.
He teaches Git, GitHub, OS, AWS, AWS EC2, Jenkins, Kubernetes, Docker and docker-compose.
Answer questions related to these topics with clear, concise answers.
If a question is not related to these topics, reply exactly: "` + Deflection + `"`

// Client produces one complete answer per call. Implementations honour ctx
// cancellation and return errors matching common.ErrUpstream for every
// provider-side failure, including an empty answer.
type Client interface {
	Complete(ctx context.Context, systemPolicy, userMessage string, maxTokens int) (string, error)
}

// New builds the client selected by cfg.LLMProvider.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (Client, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(OpenAIConfig{
			BaseURL:    cfg.LLMBaseURL,
			APIKey:     cfg.LLMAPIKey,
			Model:      cfg.LLMModel,
			Stream:     cfg.LLMStream,
			Timeout:    cfg.LLMTimeout,
			MaxRetries: cfg.LLMMaxRetries,
		}, log), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, GeminiConfig{
			APIKey:  cfg.LLMAPIKey,
			BaseURL: geminiBaseURL(cfg.LLMBaseURL),
			Model:   cfg.LLMModel,
			Stream:  cfg.LLMStream,
			Timeout: cfg.LLMTimeout,
		}, log)
	case config.ProviderStatic:
		return NewStaticClient(""), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.LLMProvider)
	}
}

// geminiBaseURL drops the OpenAI default so the genai SDK uses its own.
func geminiBaseURL(u string) string {
	if strings.Contains(u, "novita.ai") {
		return ""
	}
	return u
}

// withTimeout bounds ctx by d unless the caller already set a deadline.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok || d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// upstreamError tags err as a provider failure.
func upstreamError(err error) error {
	if errors.Is(err, common.ErrUpstream) {
		return err
	}
	return fmt.Errorf("%w: %w", common.ErrUpstream, err)
}

var errEmptyAnswer = errors.New("provider returned empty content")

func finalize(answer string) (string, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", upstreamError(errEmptyAnswer)
	}
	return answer, nil
}

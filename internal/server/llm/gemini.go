package llm

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/logging"
	"google.golang.org/genai"
)

type GeminiConfig struct {
	APIKey string
	// BaseURL overrides the Gemini API endpoint; empty uses the SDK default.
	BaseURL string
	Model   string
	Stream  bool
	Timeout time.Duration
}

// contentGenerator is the part of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	GenerateContentStream(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) iter.Seq2[*genai.GenerateContentResponse, error]
}

// GeminiClient answers through the Google Gemini API.
type GeminiClient struct {
	cfg    GeminiConfig
	models contentGenerator
	log    logging.Logger
}

func NewGeminiClient(ctx context.Context, cfg GeminiConfig, log logging.Logger) (*GeminiClient, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return newGeminiClient(cfg, client.Models, log), nil
}

func newGeminiClient(cfg GeminiConfig, models contentGenerator, log logging.Logger) *GeminiClient {
	return &GeminiClient{
		cfg:    cfg,
		models: models,
		log:    log.With("module", "llm", "provider", "gemini"),
	}
}

func (g *GeminiClient) Complete(ctx context.Context, systemPolicy, userMessage string, maxTokens int) (string, error) {
	ctx, cancel := withTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	contents := []*genai.Content{genai.NewContentFromText(userMessage, genai.RoleUser)}
	gc := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPolicy, genai.RoleUser),
		MaxOutputTokens:   int32(maxTokens),
	}

	var (
		answer string
		err    error
	)
	if g.cfg.Stream {
		answer, err = g.stream(ctx, contents, gc)
	} else {
		var res *genai.GenerateContentResponse
		res, err = g.models.GenerateContent(ctx, g.cfg.Model, contents, gc)
		if err == nil {
			answer = res.Text()
		}
	}
	if err != nil {
		g.log.Error(ctx, "gemini generate content failed", "model", g.cfg.Model, "error", err)
		return "", upstreamError(fmt.Errorf("gemini generate content: %w", err))
	}

	return finalize(answer)
}

func (g *GeminiClient) stream(ctx context.Context, contents []*genai.Content, gc *genai.GenerateContentConfig) (string, error) {
	var sb strings.Builder
	for res, err := range g.models.GenerateContentStream(ctx, g.cfg.Model, contents, gc) {
		if err != nil {
			return "", err
		}
		sb.WriteString(res.Text())
	}
	return sb.String(), nil
}

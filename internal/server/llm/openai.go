package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/sethvargo/go-retry"
)

// OpenAIConfig configures a client for any OpenAI-compatible
// /chat/completions endpoint (Novita, OpenAI, vLLM, Ollama...).
type OpenAIConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	Stream     bool
	Timeout    time.Duration
	MaxRetries int
	// Backoff is the first retry delay; it doubles on each attempt.
	Backoff time.Duration
}

type OpenAIClient struct {
	cfg        OpenAIConfig
	httpClient *http.Client
	log        logging.Logger
}

func NewOpenAIClient(cfg OpenAIConfig, log logging.Logger) *OpenAIClient {
	if cfg.Backoff <= 0 {
		cfg.Backoff = 500 * time.Millisecond
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &OpenAIClient{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log.With("module", "llm", "provider", "openai"),
	}
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
	Stream    bool            `json:"stream,omitempty"`
}

type openAIResponse struct {
	Choices []struct {
		Message *openAIMessage `json:"message,omitempty"`
		Delta   *openAIMessage `json:"delta,omitempty"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// statusError is a non-2xx reply from the provider.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.code, e.body)
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

// Complete sends the system policy and the question as a two-message chat
// and returns the trimmed answer. Rate limiting and server errors are retried
// with exponential backoff up to MaxRetries times.
func (c *OpenAIClient) Complete(ctx context.Context, systemPolicy, userMessage string, maxTokens int) (string, error) {
	ctx, cancel := withTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(openAIRequest{
		Model: c.cfg.Model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPolicy},
			{Role: "user", Content: userMessage},
		},
		MaxTokens: maxTokens,
		Stream:    c.cfg.Stream,
	})
	if err != nil {
		return "", upstreamError(fmt.Errorf("marshal request: %w", err))
	}

	start := time.Now()
	attempts := 0
	backoff := retry.WithMaxRetries(uint64(c.cfg.MaxRetries), retry.NewExponential(c.cfg.Backoff))

	answer, err := retry.DoValue(ctx, backoff, func(ctx context.Context) (string, error) {
		attempts++
		text, err := c.do(ctx, body)
		if err == nil {
			return text, nil
		}

		var se *statusError
		if errors.As(err, &se) && retryableStatus(se.code) {
			c.log.Warn(ctx, "provider call failed, retrying", "status", se.code, "attempt", attempts)
			return "", retry.RetryableError(err)
		}
		return "", err
	})
	if err != nil {
		c.log.Error(ctx, "completion failed", "model", c.cfg.Model, "attempts", attempts, "error", err)
		return "", upstreamError(err)
	}

	c.log.Debug(ctx, "completion done", "model", c.cfg.Model, "stream", c.cfg.Stream,
		"elapsed", time.Since(start), "answer_len", len(answer))
	return finalize(answer)
}

func (c *OpenAIClient) do(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	if c.cfg.Stream {
		req.Header.Set("Accept", "text/event-stream")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(b))}
	}

	if c.cfg.Stream {
		return readStream(resp.Body)
	}
	return readCompletion(resp.Body)
}

func readCompletion(r io.Reader) (string, error) {
	var out openAIResponse
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("provider error: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message == nil {
		return "", errors.New("response has no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// readStream accumulates the content deltas of a server-sent event stream
// until [DONE] or EOF.
func readStream(r io.Reader) (string, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "" {
			continue
		}
		if data == "[DONE]" {
			return sb.String(), nil
		}

		var chunk openAIResponse
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return "", fmt.Errorf("decode stream chunk: %w", err)
		}
		if chunk.Error != nil {
			return "", fmt.Errorf("provider error: %s", chunk.Error.Message)
		}
		for _, ch := range chunk.Choices {
			if ch.Delta != nil {
				sb.WriteString(ch.Delta.Content)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read stream: %w", err)
	}

	return sb.String(), nil
}

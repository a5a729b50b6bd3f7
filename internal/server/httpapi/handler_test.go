package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/llm"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devopschat/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChat struct {
	answer string
	err    error
	calls  int
}

func (f *fakeChat) Ask(ctx context.Context, userID, message string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type fakeExport struct {
	url string
	err error
}

func (f *fakeExport) Export(ctx context.Context, userID string) (string, error) {
	return f.url, f.err
}

type fakeHistory struct {
	msgs []*models.ChatMessage
	ok   bool
}

func (f *fakeHistory) List(ctx context.Context, userID string) ([]*models.ChatMessage, bool) {
	return f.msgs, f.ok
}

// newMemoryServer wires real services over the in-memory store.
func newMemoryServer(t *testing.T) http.Handler {
	t.Helper()

	m := repomanager.NewMemoryRepositoryManager()
	hist := services.NewHistoryService(m, logging.Nop{})
	chat := services.NewChatService(llm.NewStaticClient("Pods run containers."), hist,
		services.ChatOptions{MaxTokens: 100, LLMTimeout: time.Second, StoreTimeout: time.Second}, logging.Nop{})

	s := NewServer("127.0.0.1:0", logging.Nop{}, Deps{
		Users:   services.NewUserService(m, logging.Nop{}),
		Chat:    chat,
		History: hist,
		Export:  services.NewExportService(hist, services.ExportConfig{}, logging.Nop{}),
		Storage: m,
	})
	return s.Handler()
}

func newFakeServer(deps Deps) http.Handler {
	if deps.Storage == nil {
		deps.Storage = repomanager.NewMemoryRepositoryManager()
	}
	return NewServer("127.0.0.1:0", logging.Nop{}, deps).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSignupSigninAskHistory(t *testing.T) {
	h := newMemoryServer(t)

	w := do(t, h, http.MethodPost, "/signup", `{"email":"ops@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[signupResponse](t, w)
	assert.Equal(t, "ops@example.com", created.Email)
	assert.NotEmpty(t, created.ID)

	w = do(t, h, http.MethodPost, "/signup", `{"email":"ops@example.com","password":"other"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, h, http.MethodPost, "/signin", `{"email":"ops@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, h, http.MethodPost, "/signin", `{"email":"ops@example.com","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)
	signedIn := decode[signinResponse](t, w)
	assert.Equal(t, created.ID, signedIn.UserID)

	w = do(t, h, http.MethodPost, "/ask-devops-doubt", `{"user_id":"`+created.ID+`","message":"What is a pod?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pods run containers.", decode[askResponse](t, w).Response)

	w = do(t, h, http.MethodGet, "/chat-history?user_id="+url.QueryEscape(created.ID), "")
	require.Equal(t, http.StatusOK, w.Code)
	hist := decode[historyResponse](t, w)
	assert.False(t, hist.Degraded)
	require.Len(t, hist.History, 2)
	assert.Equal(t, "user", hist.History[0].Sender)
	assert.Equal(t, "What is a pod?", hist.History[0].Message)
	assert.Equal(t, "bot", hist.History[1].Sender)
}

func TestSignup_FormBody(t *testing.T) {
	h := newMemoryServer(t)

	form := url.Values{"email": {"form@example.com"}, "password": {"pw"}}
	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestSignup_BadInput(t *testing.T) {
	h := newMemoryServer(t)

	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/signup", `{`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/signup", `{"email":"nope","password":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/signup", `{"email":"a@b.io","password":""}`).Code)
}

func TestHistory_MissingUserID(t *testing.T) {
	h := newMemoryServer(t)

	w := do(t, h, http.MethodGet, "/chat-history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"history":[],"error":"No user ID provided"}`, w.Body.String())
}

func TestHistory_Degraded(t *testing.T) {
	h := newFakeServer(Deps{History: &fakeHistory{ok: false}})

	w := do(t, h, http.MethodGet, "/chat-history?user_id=u1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"history":[],"degraded":true}`, w.Body.String())
}

func TestAsk_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", common.ErrValidation, http.StatusBadRequest},
		{"upstream", errors.Join(common.ErrUpstream, errors.New("timeout")), http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeServer(Deps{Chat: &fakeChat{err: tt.err}})
			w := do(t, h, http.MethodPost, "/ask-devops-doubt", `{"user_id":"u1","message":"hi"}`)
			assert.Equal(t, tt.want, w.Code)
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}

func TestAsk_InvalidJSONSkipsService(t *testing.T) {
	chat := &fakeChat{answer: "x"}
	h := newFakeServer(Deps{Chat: chat})

	w := do(t, h, http.MethodPost, "/ask-devops-doubt", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, chat.calls)
}

func TestExport(t *testing.T) {
	tests := []struct {
		name string
		exp  *fakeExport
		want int
	}{
		{"ok", &fakeExport{url: "https://s3/x"}, http.StatusOK},
		{"disabled", &fakeExport{err: common.ErrExportDisabled}, http.StatusNotImplemented},
		{"store down", &fakeExport{err: common.ErrUnavailable}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeServer(Deps{Export: tt.exp})
			w := do(t, h, http.MethodPost, "/chat-history/export", `{"user_id":"u1"}`)
			assert.Equal(t, tt.want, w.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, "https://s3/x", decode[exportResponse](t, w).URL)
			}
		})
	}
}

func TestExport_NotConfigured(t *testing.T) {
	h := newMemoryServer(t)
	w := do(t, h, http.MethodPost, "/chat-history/export", `{"user_id":"u1"}`)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestHealthz(t *testing.T) {
	h := newMemoryServer(t)
	w := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, healthResponse{Status: "ok", Backend: "memory", Storage: "up"}, decode[healthResponse](t, w))

	down := repomanager.NewUnavailableRepositoryManager("postgres", errors.New("refused"))
	h = newFakeServer(Deps{Storage: down})
	w = do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "down", decode[healthResponse](t, w).Storage)
}

func TestMiddleware_RequestIDAndCORS(t *testing.T) {
	h := newMemoryServer(t)

	w := do(t, h, http.MethodGet, "/healthz", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))

	w = do(t, h, http.MethodOptions, "/ask-devops-doubt", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newMemoryServer(t)
	w := do(t, h, http.MethodGet, "/signup", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

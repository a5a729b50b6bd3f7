package httpapi

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

// maxBodyBytes bounds request bodies; questions are short text.
const maxBodyBytes = 1 << 20

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signupResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type signinResponse struct {
	UserID string `json:"user_id"`
}

type askRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type askResponse struct {
	Response string `json:"response"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

type historyResponse struct {
	History  []messageResponse `json:"history"`
	Degraded bool              `json:"degraded,omitempty"`
	Error    string            `json:"error,omitempty"`
}

type exportRequest struct {
	UserID string `json:"user_id"`
}

type exportResponse struct {
	URL string `json:"url"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
	Storage string `json:"storage"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := s.deps.Users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{ID: user.ID, Email: user.Email})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := s.deps.Users.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, signinResponse{UserID: user.ID})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	answer, err := s.deps.Chat.Ask(r.Context(), req.UserID, req.Message)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Response: answer})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := models.CanonicalUserID(r.URL.Query().Get("user_id"))
	if userID == "" {
		writeJSON(w, http.StatusOK, historyResponse{
			History: []messageResponse{},
			Error:   "No user ID provided",
		})
		return
	}

	msgs, ok := s.deps.History.List(r.Context(), userID)
	writeJSON(w, http.StatusOK, historyResponse{
		History:  toMessagesResponse(msgs),
		Degraded: !ok,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	url, err := s.deps.Export.Export(r.Context(), req.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, exportResponse{URL: url})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Backend: s.deps.Storage.Backend(), Storage: "up"}
	if err := s.deps.Storage.Ping(r.Context()); err != nil {
		resp.Storage = "down"
	}
	writeJSON(w, http.StatusOK, resp)
}

func toMessagesResponse(msgs []*models.ChatMessage) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponse{
			ID:        m.ID,
			UserID:    m.UserID,
			Message:   m.Message,
			Sender:    string(m.Sender),
			Timestamp: m.Timestamp,
		})
	}
	return out
}

// decodeCredentials accepts a JSON body or an HTML form post.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var req credentialsRequest

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			badRequest(w, "invalid form body")
			return req, false
		}
		req.Email = r.PostForm.Get("email")
		req.Password = r.PostForm.Get("password")
		return req, true
	}

	return req, decodeJSON(w, r, &req)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		badRequest(w, "invalid JSON body")
		return false
	}
	return true
}

// writeError maps service errors onto status codes. Details of internal
// failures stay in the log.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := http.StatusInternalServerError, "internal server error"

	switch {
	case errors.Is(err, common.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrConflict):
		status, msg = http.StatusConflict, "email already registered"
	case errors.Is(err, common.ErrInvalidCredentials):
		status, msg = http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrUpstream):
		status, msg = http.StatusBadGateway, "the assistant is unavailable, try again later"
	case errors.Is(err, common.ErrExportDisabled):
		status, msg = http.StatusNotImplemented, "export is not configured"
	case errors.Is(err, common.ErrUnavailable):
		status, msg = http.StatusServiceUnavailable, "storage unavailable"
	}

	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

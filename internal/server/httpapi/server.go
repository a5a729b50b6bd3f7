// Package httpapi exposes the chat services as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
)

type userService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type chatService interface {
	Ask(ctx context.Context, userID, message string) (string, error)
}

type historyService interface {
	List(ctx context.Context, userID string) ([]*models.ChatMessage, bool)
}

type exportService interface {
	Export(ctx context.Context, userID string) (string, error)
}

type storageProbe interface {
	Ping(ctx context.Context) error
	Backend() string
}

// Deps are the services the HTTP API dispatches to.
type Deps struct {
	Users   userService
	Chat    chatService
	History historyService
	Export  exportService
	Storage storageProbe
}

const shutdownTimeout = 10 * time.Second

type Server struct {
	address string
	deps    Deps
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, deps Deps) *Server {
	return &Server{
		address: address,
		deps:    deps,
		logger:  l.With("module", "http_server"),
	}
}

// Handler returns the routed API wrapped in its middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /signin", s.handleSignin)
	mux.HandleFunc("POST /ask-devops-doubt", s.handleAsk)
	mux.HandleFunc("GET /chat-history", s.handleHistory)
	mux.HandleFunc("POST /chat-history/export", s.handleExport)
	mux.HandleFunc("GET /healthz", s.handleHealthz)

	return chainMiddlewares(mux,
		s.withLogging,
		s.withRequestID,
		withCORS,
	)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "http shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}

// Package server wires configuration, storage, the LLM client and the
// services together and runs the HTTP and gRPC front ends until shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/dmitrijs2005/devopschat/internal/server/config"
	"github.com/dmitrijs2005/devopschat/internal/server/httpapi"
	"github.com/dmitrijs2005/devopschat/internal/server/llm"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/devopschat/internal/server/services"

	gs "github.com/dmitrijs2005/devopschat/internal/server/grpc"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	repomanager    repomanager.RepositoryManager
	userService    *services.UserService
	historyService *services.HistoryService
	chatService    *services.ChatService
	exportService  *services.ExportService
}

// NewApp builds every component from c. Logs go to w.
//
// A storage backend that cannot be reached does not stop the server: it
// starts in degraded mode where writes fail and history reads come back
// empty, and switches to the backend once it answers.
func NewApp(ctx context.Context, c *config.Config, w io.Writer) (*App, error) {

	logger, err := logging.New(c.LogFormat, c.LogLevel, w)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	rm, err := repomanager.New(ctx, c)
	if err != nil {
		logger.Error(ctx, "storage unavailable, starting degraded", "backend", c.StorageBackend, "error", err)
		rm = repomanager.NewReconnecting(c, err)
	}

	client, err := llm.New(ctx, c, logger)
	if err != nil {
		_ = rm.Close(ctx)
		return nil, fmt.Errorf("llm init error: %w", err)
	}

	hs := services.NewHistoryService(rm, logger)

	app := &App{
		config:         c,
		logger:         logger,
		repomanager:    rm,
		userService:    services.NewUserService(rm, logger),
		historyService: hs,
		chatService: services.NewChatService(client, hs, services.ChatOptions{
			MaxTokens:    c.LLMMaxTokens,
			LLMTimeout:   c.LLMTimeout,
			StoreTimeout: c.StoreTimeout,
			AtomicTurns:  c.AtomicTurns,
		}, logger),
		exportService: services.NewExportService(hs, services.ExportConfig{
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			AccessKey:    c.S3RootUser,
			SecretKey:    c.S3RootPassword,
			BaseEndpoint: c.S3BaseEndpoint,
			LinkTTL:      c.ExportLinkTTL,
		}, logger),
	}

	logger.Info(ctx, "app initialized",
		"storage", rm.Backend(),
		"llm_provider", c.LLMProvider,
		"export_enabled", app.exportService != nil,
	)
	return app, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(ctx, "signal received", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) httpDeps() httpapi.Deps {
	return httpapi.Deps{
		Users:   app.userService,
		Chat:    app.chatService,
		History: app.historyService,
		Export:  app.exportService,
		Storage: app.repomanager,
	}
}

func (app *App) grpcDeps() gs.Deps {
	return gs.Deps{
		Users:   app.userService,
		Chat:    app.chatService,
		History: app.historyService,
		Export:  app.exportService,
		Storage: app.repomanager,
	}
}

// Run serves HTTP and gRPC until ctx is cancelled, a termination signal
// arrives or either server fails. The storage handle is closed on return.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	run := func(name string, serve func(context.Context) error) {
		defer wg.Done()
		if err := serve(ctx); err != nil {
			app.logger.Error(ctx, "server failed", "server", name, "error", err)
			mu.Lock()
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			mu.Unlock()
			cancelFunc()
		}
	}

	if rr, ok := app.repomanager.(*repomanager.ReconnectingRepositoryManager); ok && !rr.Live() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.recoverStorage(ctx, rr)
		}()
	}

	wg.Add(2)
	go run("http", httpapi.NewServer(app.config.HTTPAddr, app.logger, app.httpDeps()).Run)
	go run("grpc", gs.NewGRPCServer(app.config.GRPCAddr, app.logger, app.grpcDeps()).Run)

	wg.Wait()

	if err := app.repomanager.Close(context.WithoutCancel(ctx)); err != nil {
		app.logger.Error(ctx, "closing storage", "error", err)
	}
	app.logger.Info(ctx, "App stopped")

	return errors.Join(errs...)
}

// recoverStorage redials a degraded backend until it answers or ctx ends.
func (app *App) recoverStorage(ctx context.Context, rr *repomanager.ReconnectingRepositoryManager) {
	if err := rr.Recover(ctx, repomanager.RecoveryBackoff()); err != nil {
		return
	}
	app.logger.Info(ctx, "storage reachable, leaving degraded mode", "backend", rr.Backend())
}

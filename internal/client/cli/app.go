package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/client/client"
	"github.com/dmitrijs2005/devopschat/internal/client/config"
)

type App struct {
	config *config.Config
	api    client.Client
	userID string
	email  string
	reader *bufio.Reader
	out    io.Writer
}

// NewApp connects to the server named in c and reads commands from stdin.
func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewDevOpsChatClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, api client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, api: api, reader: bufio.NewReader(in), out: out}
}

// Run blocks in the REPL until the user exits, then closes the connection.
func (a *App) Run(ctx context.Context) error {
	defer a.api.Close()
	a.Root(ctx)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}

// withTimeout bounds a single server call by the configured request timeout.
func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	d := a.config.RequestTimeout
	if d <= 0 {
		d = 90 * time.Second
	}
	return context.WithTimeout(ctx, d)
}

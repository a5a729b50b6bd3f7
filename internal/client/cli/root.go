package cli

import (
	"context"
	"fmt"
)

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

// Root prints a greeting, reports whether the server is reachable and runs
// the REPL.
func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the DevOps doubt solver (type 'help' for commands)")

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	if err := a.api.Ping(pingCtx); err != nil {
		fmt.Fprintf(a.out, "Warning: server at %s is not ready: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, a.reader)
}

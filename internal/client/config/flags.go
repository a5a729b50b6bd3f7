package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/devopschat/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string     address and port of the backend server (default from Config)
//	-t duration   per-request timeout, e.g. 90s (default from Config)
//
// Unknown flags are filtered out with flagx.FilterArgs so they do not
// interfere with other components.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("devopschat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "per-request timeout")

	return fs.Parse(args)
}

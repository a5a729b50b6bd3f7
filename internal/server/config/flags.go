package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/devopschat/internal/flagx"
)

// parseFlags overlays command-line flags onto cfg. Only flags defined here
// are considered; -c/-config and anything unknown are filtered out first.
//
// Boolean flags must be given as -flag or -flag=value.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("devopschat-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "a", cfg.GRPCAddr, "gRPC listen address")

	fs.StringVar(&cfg.StorageBackend, "storage", cfg.StorageBackend, "storage backend: postgres, mongo or memory")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", cfg.MongoURI, "MongoDB connection URI")
	fs.StringVar(&cfg.MongoDatabase, "mongo-db", cfg.MongoDatabase, "MongoDB database name")
	fs.DurationVar(&cfg.StoreTimeout, "store-timeout", cfg.StoreTimeout, "timeout for a single store operation")
	fs.BoolVar(&cfg.AtomicTurns, "atomic-turns", cfg.AtomicTurns, "persist question and answer in one transaction")

	fs.StringVar(&cfg.LLMProvider, "llm-provider", cfg.LLMProvider, "LLM provider: openai, gemini or static")
	fs.StringVar(&cfg.LLMBaseURL, "llm-base-url", cfg.LLMBaseURL, "OpenAI-compatible API base URL")
	fs.StringVar(&cfg.LLMAPIKey, "llm-api-key", cfg.LLMAPIKey, "LLM provider API key")
	fs.StringVar(&cfg.LLMModel, "llm-model", cfg.LLMModel, "LLM model name")
	fs.IntVar(&cfg.LLMMaxTokens, "llm-max-tokens", cfg.LLMMaxTokens, "max generated tokens per answer")
	fs.BoolVar(&cfg.LLMStream, "llm-stream", cfg.LLMStream, "request streamed completions and accumulate them")
	fs.DurationVar(&cfg.LLMTimeout, "llm-timeout", cfg.LLMTimeout, "timeout for a single LLM call")
	fs.IntVar(&cfg.LLMMaxRetries, "llm-max-retries", cfg.LLMMaxRetries, "retries on 429/5xx from the provider")

	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: json, text or zap")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "in-memory storage and static LLM replies")

	fs.StringVar(&cfg.S3RootUser, "u", cfg.S3RootUser, "S3 access key")
	fs.StringVar(&cfg.S3RootPassword, "p", cfg.S3RootPassword, "S3 secret key")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for transcript export; empty disables export")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint (e.g. http://127.0.0.1:9000/)")
	fs.DurationVar(&cfg.ExportLinkTTL, "export-link-ttl", cfg.ExportLinkTTL, "lifetime of presigned transcript links")

	var allowed []string
	fs.VisitAll(func(f *flag.Flag) {
		allowed = append(allowed, "-"+f.Name, "--"+f.Name)
	})

	return fs.Parse(flagx.FilterArgs(args, allowed))
}

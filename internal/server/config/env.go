package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const envPrefix = "DEVOPSCHAT_"

var lookupEnv = os.LookupEnv

// parseEnv overlays DEVOPSCHAT_<KEY> variables onto cfg, where KEY is the
// upper-cased config key (DEVOPSCHAT_LLM_API_KEY, DEVOPSCHAT_STORE_TIMEOUT...).
// MONGODB_URI and DEBUG are honoured without the prefix for compatibility
// with existing deployments; prefixed variables win.
func parseEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("MONGODB_URI"); ok && v != "" {
		cfg.MongoURI = v
	}
	if v, ok := lookup("DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env DEBUG: %w", err)
		}
		cfg.Debug = b
	}

	strs := map[string]*string{
		"HTTP_ADDR":        &cfg.HTTPAddr,
		"GRPC_ADDR":        &cfg.GRPCAddr,
		"STORAGE_BACKEND":  &cfg.StorageBackend,
		"DATABASE_DSN":     &cfg.DatabaseDSN,
		"MONGO_URI":        &cfg.MongoURI,
		"MONGO_DATABASE":   &cfg.MongoDatabase,
		"LLM_PROVIDER":     &cfg.LLMProvider,
		"LLM_BASE_URL":     &cfg.LLMBaseURL,
		"LLM_API_KEY":      &cfg.LLMAPIKey,
		"LLM_MODEL":        &cfg.LLMModel,
		"LOG_FORMAT":       &cfg.LogFormat,
		"LOG_LEVEL":        &cfg.LogLevel,
		"S3_ROOT_USER":     &cfg.S3RootUser,
		"S3_ROOT_PASSWORD": &cfg.S3RootPassword,
		"S3_BUCKET":        &cfg.S3Bucket,
		"S3_REGION":        &cfg.S3Region,
		"S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
	}
	for key, dst := range strs {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	ints := map[string]*int{
		"LLM_MAX_TOKENS":  &cfg.LLMMaxTokens,
		"LLM_MAX_RETRIES": &cfg.LLMMaxRetries,
	}
	for key, dst := range ints {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", envPrefix, key, err)
			}
			*dst = n
		}
	}

	bools := map[string]*bool{
		"ATOMIC_TURNS": &cfg.AtomicTurns,
		"LLM_STREAM":   &cfg.LLMStream,
		"DEBUG":        &cfg.Debug,
	}
	for key, dst := range bools {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", envPrefix, key, err)
			}
			*dst = b
		}
	}

	durations := map[string]*time.Duration{
		"STORE_TIMEOUT":   &cfg.StoreTimeout,
		"LLM_TIMEOUT":     &cfg.LLMTimeout,
		"EXPORT_LINK_TTL": &cfg.ExportLinkTTL,
	}
	for key, dst := range durations {
		if v, ok := lookup(envPrefix + key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return fmt.Errorf("env %s%s: %w", envPrefix, key, err)
			}
			*dst = d
		}
	}

	return nil
}

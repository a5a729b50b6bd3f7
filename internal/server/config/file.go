package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/devopschat/internal/timex"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for JSON and YAML files. Booleans are pointers
// so an explicit false in the file can be told apart from an absent key.
type fileConfig struct {
	HTTPAddr string `json:"http_addr" yaml:"http_addr"`
	GRPCAddr string `json:"grpc_addr" yaml:"grpc_addr"`

	StorageBackend string         `json:"storage_backend" yaml:"storage_backend"`
	DatabaseDSN    string         `json:"database_dsn" yaml:"database_dsn"`
	MongoURI       string         `json:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase  string         `json:"mongo_database" yaml:"mongo_database"`
	StoreTimeout   timex.Duration `json:"store_timeout" yaml:"store_timeout"`
	AtomicTurns    *bool          `json:"atomic_turns" yaml:"atomic_turns"`

	LLMProvider   string         `json:"llm_provider" yaml:"llm_provider"`
	LLMBaseURL    string         `json:"llm_base_url" yaml:"llm_base_url"`
	LLMAPIKey     string         `json:"llm_api_key" yaml:"llm_api_key"`
	LLMModel      string         `json:"llm_model" yaml:"llm_model"`
	LLMMaxTokens  int            `json:"llm_max_tokens" yaml:"llm_max_tokens"`
	LLMStream     *bool          `json:"llm_stream" yaml:"llm_stream"`
	LLMTimeout    timex.Duration `json:"llm_timeout" yaml:"llm_timeout"`
	LLMMaxRetries *int           `json:"llm_max_retries" yaml:"llm_max_retries"`

	LogFormat string `json:"log_format" yaml:"log_format"`
	LogLevel  string `json:"log_level" yaml:"log_level"`
	Debug     *bool  `json:"debug" yaml:"debug"`

	S3RootUser     string         `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	ExportLinkTTL  timex.Duration `json:"export_link_ttl" yaml:"export_link_ttl"`
}

// parseFile overlays the values present in the file at path onto cfg.
// .yaml and .yml files are decoded as YAML, anything else as JSON.
func parseFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	fc := &fileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(cfg)
	return nil
}

func (fc *fileConfig) apply(cfg *Config) {
	setString(&cfg.HTTPAddr, fc.HTTPAddr)
	setString(&cfg.GRPCAddr, fc.GRPCAddr)

	setString(&cfg.StorageBackend, fc.StorageBackend)
	setString(&cfg.DatabaseDSN, fc.DatabaseDSN)
	setString(&cfg.MongoURI, fc.MongoURI)
	setString(&cfg.MongoDatabase, fc.MongoDatabase)
	if fc.StoreTimeout.Duration > 0 {
		cfg.StoreTimeout = fc.StoreTimeout.Duration
	}
	if fc.AtomicTurns != nil {
		cfg.AtomicTurns = *fc.AtomicTurns
	}

	setString(&cfg.LLMProvider, fc.LLMProvider)
	setString(&cfg.LLMBaseURL, fc.LLMBaseURL)
	setString(&cfg.LLMAPIKey, fc.LLMAPIKey)
	setString(&cfg.LLMModel, fc.LLMModel)
	if fc.LLMMaxTokens != 0 {
		cfg.LLMMaxTokens = fc.LLMMaxTokens
	}
	if fc.LLMStream != nil {
		cfg.LLMStream = *fc.LLMStream
	}
	if fc.LLMTimeout.Duration > 0 {
		cfg.LLMTimeout = fc.LLMTimeout.Duration
	}
	if fc.LLMMaxRetries != nil {
		cfg.LLMMaxRetries = *fc.LLMMaxRetries
	}

	setString(&cfg.LogFormat, fc.LogFormat)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}

	setString(&cfg.S3RootUser, fc.S3RootUser)
	setString(&cfg.S3RootPassword, fc.S3RootPassword)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	if fc.ExportLinkTTL.Duration > 0 {
		cfg.ExportLinkTTL = fc.ExportLinkTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

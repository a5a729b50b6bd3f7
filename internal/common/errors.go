// Package common defines shared constants and sentinel errors used across
// the server, its adapters and the CLI client. Callers should use errors.Is
// to match these values; causes are attached with %w.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound  = errors.New("not found")
	ErrUnavailable = errors.New("storage unavailable")

	// Service-level errors.
	ErrorInternal         = errors.New("internal error")
	ErrValidation         = errors.New("validation error")
	ErrConflict           = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Upstream model provider failed, timed out or returned no content.
	ErrUpstream = errors.New("upstream failure")

	// History write failed. Absorbed by the chat flow, never shown to the user.
	ErrWriteFailed = errors.New("history write failed")

	// Transcript export is not configured on this server.
	ErrExportDisabled = errors.New("export disabled")
)

package client

import "errors"

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrUnauthorized      = errors.New("invalid email or password")
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrInvalidInput      = errors.New("invalid input")
	ErrExportDisabled    = errors.New("export is not enabled on the server")
)

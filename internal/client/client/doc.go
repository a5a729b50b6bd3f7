// Package client talks to the devopschat backend over gRPC.
//
// GRPCClient manages the connection, tags every call with an x-request-id
// and maps gRPC status codes to the sentinel errors in errors.go so callers
// can match them with errors.Is.
package client

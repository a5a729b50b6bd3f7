package common

// RequestIDHeaderName is the HTTP header and gRPC metadata key carrying the
// caller's request id.
const RequestIDHeaderName = "x-request-id"

// Sender values stored with every chat message.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

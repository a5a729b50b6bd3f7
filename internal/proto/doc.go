// Package proto holds the generated types for the devopschat.ChatService
// gRPC API defined in chat.proto.
package proto

//go:generate protoc --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative -I ../.. internal/proto/chat.proto

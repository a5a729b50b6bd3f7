package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/devopschat/internal/common"
	"github.com/dmitrijs2005/devopschat/internal/logging"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestRequestIDInterceptor_UsesIncoming(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, Deps{})

	md := metadata.New(map[string]string{common.RequestIDHeaderName: "req-7"})
	ctx := metadata.NewIncomingContext(context.Background(), md)
	info := &grpc.UnaryServerInfo{FullMethod: "/devopschat.ChatService/Ask"}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = logging.RequestID(ctx)
		return "ok", nil
	}

	resp, err := s.requestIDInterceptor(ctx, nil, info, h)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp)
	assert.Equal(t, "req-7", got)
}

func TestRequestIDInterceptor_GeneratesWhenMissing(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, Deps{})
	info := &grpc.UnaryServerInfo{FullMethod: "/devopschat.ChatService/Ask"}

	var got string
	h := func(ctx context.Context, req any) (any, error) {
		got = logging.RequestID(ctx)
		return nil, nil
	}

	_, err := s.requestIDInterceptor(context.Background(), nil, info, h)
	assert.NoError(t, err)
	assert.Len(t, got, 36)
}

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	s := NewGRPCServer("", logging.Nop{}, Deps{})
	info := &grpc.UnaryServerInfo{FullMethod: "/devopschat.ChatService/Ask"}

	called := false
	h := func(ctx context.Context, req any) (any, error) {
		called = true
		return req, nil
	}

	resp, err := s.loggingInterceptor(context.Background(), "in", info, h)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, "in", resp)
}

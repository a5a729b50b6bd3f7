package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/common"
	pb "github.com/dmitrijs2005/devopschat/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Message is one entry of a user's chat history.
type Message struct {
	ID        string
	Sender    string
	Message   string
	Timestamp time.Time
}

// Client is the API the CLI needs from the backend.
type Client interface {
	Close() error
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Ask(ctx context.Context, userID, message string) (string, error)
	History(ctx context.Context, userID string) ([]Message, bool, error)
	Export(ctx context.Context, userID string) (string, error)
	Ping(ctx context.Context) error
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.ChatServiceClient
	health      healthpb.HealthClient
}

var _ Client = (*GRPCClient)(nil)

func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.RequestIDHeaderName, uuid.NewString())
	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) requestIDInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

func NewDevOpsChatClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.requestIDInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatServiceClient(conn)
	s.health = healthpb.NewHealthClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// Register creates an account and returns its user id.
func (s *GRPCClient) Register(ctx context.Context, email, password string) (string, error) {

	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetId(), nil
}

// Login checks the credentials and returns the user id.
func (s *GRPCClient) Login(ctx context.Context, email, password string) (string, error) {

	resp, err := s.client.Authenticate(ctx, &pb.AuthenticateRequest{Email: email, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetUserId(), nil
}

func (s *GRPCClient) Ask(ctx context.Context, userID, message string) (string, error) {

	resp, err := s.client.Ask(ctx, &pb.AskRequest{UserId: userID, Message: message})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetResponse(), nil
}

// History returns the user's messages oldest first. degraded is true when
// the server could not read its store and the list may be incomplete.
func (s *GRPCClient) History(ctx context.Context, userID string) (msgs []Message, degraded bool, err error) {

	resp, err := s.client.GetHistory(ctx, &pb.GetHistoryRequest{UserId: userID})
	if err != nil {
		return nil, false, s.mapError(err)
	}

	msgs = make([]Message, 0, len(resp.GetHistory()))
	for _, m := range resp.GetHistory() {
		var ts time.Time
		if m.GetTimestamp() != nil {
			ts = m.GetTimestamp().AsTime()
		}
		msgs = append(msgs, Message{
			ID:        m.GetId(),
			Sender:    m.GetSender(),
			Message:   m.GetMessage(),
			Timestamp: ts,
		})
	}

	return msgs, resp.GetDegraded(), nil
}

// Export asks the server to store a transcript and returns a download link.
func (s *GRPCClient) Export(ctx context.Context, userID string) (string, error) {

	resp, err := s.client.ExportHistory(ctx, &pb.ExportHistoryRequest{UserId: userID})
	if err != nil {
		return "", s.mapError(err)
	}

	return resp.GetUrl(), nil
}

// Ping reports ErrUnavailable unless the server and its store are serving.
func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.ChatService_ServiceDesc.ServiceName})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.AlreadyExists:
		return ErrAlreadyRegistered
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unimplemented:
		return ErrExportDisabled
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/logging"
	pb "github.com/dmitrijs2005/devopschat/internal/proto"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type userService interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type chatService interface {
	Ask(ctx context.Context, userID, message string) (string, error)
}

type historyService interface {
	List(ctx context.Context, userID string) ([]*models.ChatMessage, bool)
}

type exportService interface {
	Export(ctx context.Context, userID string) (string, error)
}

type storageProbe interface {
	Ping(ctx context.Context) error
}

// Deps are the services the gRPC API dispatches to.
type Deps struct {
	Users   userService
	Chat    chatService
	History historyService
	Export  exportService
	Storage storageProbe
}

const healthProbeInterval = 15 * time.Second

type GRPCServer struct {
	pb.UnimplementedChatServiceServer
	address string
	deps    Deps
	logger  logging.Logger
	health  *health.Server
}

func NewGRPCServer(a string, l logging.Logger, deps Deps) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		deps:    deps,
		health:  health.NewServer(),
	}
}

// newServer builds the grpc.Server with the chat and health services.
func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.requestIDInterceptor,
		s.loggingInterceptor,
	))

	pb.RegisterChatServiceServer(srv, s)
	healthpb.RegisterHealthServer(srv, s.health)

	return srv
}

// probeStorage keeps the health status in line with the store until ctx ends.
func (s *GRPCServer) probeStorage(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.updateHealth(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *GRPCServer) updateHealth(ctx context.Context) {
	st := healthpb.HealthCheckResponse_SERVING
	if s.deps.Storage != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := s.deps.Storage.Ping(pingCtx)
		cancel()
		if err != nil {
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(pb.ChatService_ServiceDesc.ServiceName, st)
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	probeCtx, stopProbe := context.WithCancel(ctx)
	defer stopProbe()
	go s.probeStorage(probeCtx, healthProbeInterval)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	return srv.Serve(listen)
}

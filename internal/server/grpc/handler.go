package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/devopschat/internal/common"
	pb "github.com/dmitrijs2005/devopschat/internal/proto"
	"github.com/dmitrijs2005/devopschat/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	user, err := s.deps.Users.Register(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{Id: user.ID, Email: user.Email}, nil
}

func (s *GRPCServer) Authenticate(ctx context.Context, req *pb.AuthenticateRequest) (*pb.AuthenticateResponse, error) {

	user, err := s.deps.Users.Authenticate(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthenticateResponse{UserId: user.ID}, nil
}

func (s *GRPCServer) Ask(ctx context.Context, req *pb.AskRequest) (*pb.AskResponse, error) {

	answer, err := s.deps.Chat.Ask(ctx, req.GetUserId(), req.GetMessage())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AskResponse{Response: answer}, nil
}

func (s *GRPCServer) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {

	userID := models.CanonicalUserID(req.GetUserId())
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}

	msgs, ok := s.deps.History.List(ctx, userID)

	history := make([]*pb.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		history = append(history, &pb.ChatMessage{
			Id:        m.ID,
			UserId:    m.UserID,
			Message:   m.Message,
			Sender:    string(m.Sender),
			Timestamp: timestamppb.New(m.Timestamp),
		})
	}

	return &pb.GetHistoryResponse{History: history, Degraded: !ok}, nil
}

func (s *GRPCServer) ExportHistory(ctx context.Context, req *pb.ExportHistoryRequest) (*pb.ExportHistoryResponse, error) {

	url, err := s.deps.Export.Export(ctx, req.GetUserId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.ExportHistoryResponse{Url: url}, nil
}

func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, common.ErrConflict.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrUpstream):
		return status.Error(codes.Unavailable, "the assistant is unavailable, try again later")
	case errors.Is(err, common.ErrExportDisabled):
		return status.Error(codes.Unimplemented, "export is not configured")
	case errors.Is(err, common.ErrUnavailable):
		return status.Error(codes.Unavailable, common.ErrUnavailable.Error())
	}

	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, "internal error")
}

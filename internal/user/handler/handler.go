package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/internal/user"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("UserService")

type UserServer interface {
	ListUsers(ctx context.Context, req *emptypb.Empty) (*ListUsersResponse, error)
	UpsertUser(ctx context.Context, req *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error)
}

var _ UserServer = (*UserHandler)(nil)

type ListUsersResponse struct {
	Users []model.User `json:"users"`
}

type UserHandler struct {
	uc     user.UseCase
	logger logger.ZapLogger
}

func NewUserHandler(uc user.UseCase, log logger.ZapLogger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *UserHandler) ListUsers(ctx context.Context, _ *emptypb.Empty) (*ListUsersResponse, error) {
	users, err := h.uc.ListUsers(ctx)
	if err != nil {
		h.logger.Error("failed to list users", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ListUsersResponse{Users: users}, nil
}

func (h *UserHandler) UpsertUser(ctx context.Context, req *model.User) (*model.User, error) {
	u, err := h.uc.UpsertUser(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return u, nil
}

func (h *UserHandler) DeleteUser(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteUser(ctx, req.ID); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*UserServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ListUsers", (*UserHandler).ListUsers),
		rpc.Unary(ServiceName, "UpsertUser", (*UserHandler).UpsertUser),
		rpc.Unary(ServiceName, "DeleteUser", (*UserHandler).DeleteUser),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *UserHandler) {
	s.RegisterService(&serviceDesc, h)
}

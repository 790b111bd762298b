package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/order"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("OrderService")

type OrderServer interface {
	ListOrders(ctx context.Context, req *emptypb.Empty) (*ListOrdersResponse, error)
	UpsertOrder(ctx context.Context, req *model.Order) (*model.Order, error)
	DeleteOrder(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error)
}

var _ OrderServer = (*OrderHandler)(nil)

type ListOrdersResponse struct {
	Orders []model.Order `json:"orders"`
}

type OrderHandler struct {
	uc     order.UseCase
	logger logger.ZapLogger
}

func NewOrderHandler(uc order.UseCase, log logger.ZapLogger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: log,
	}
}

// The usecase logs failures with order context; handlers only map them.

func (h *OrderHandler) ListOrders(ctx context.Context, _ *emptypb.Empty) (*ListOrdersResponse, error) {
	orders, err := h.uc.ListOrders(ctx)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &ListOrdersResponse{Orders: orders}, nil
}

func (h *OrderHandler) UpsertOrder(ctx context.Context, req *model.Order) (*model.Order, error) {
	if req.Items == nil {
		req.Items = []model.OrderItem{}
	}
	o, err := h.uc.UpsertOrder(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return o, nil
}

func (h *OrderHandler) DeleteOrder(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteOrder(ctx, req.ID); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrderServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ListOrders", (*OrderHandler).ListOrders),
		rpc.Unary(ServiceName, "UpsertOrder", (*OrderHandler).UpsertOrder),
		rpc.Unary(ServiceName, "DeleteOrder", (*OrderHandler).DeleteOrder),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *OrderHandler) {
	s.RegisterService(&serviceDesc, h)
}

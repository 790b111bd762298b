package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/internal/table"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("TableService")

type TableServer interface {
	ListTables(ctx context.Context, req *emptypb.Empty) (*ListTablesResponse, error)
	UpsertTable(ctx context.Context, req *model.Table) (*model.Table, error)
	DeleteTable(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error)
}

var _ TableServer = (*TableHandler)(nil)

type ListTablesResponse struct {
	Tables []model.Table `json:"tables"`
}

type TableHandler struct {
	uc     table.UseCase
	logger logger.ZapLogger
}

func NewTableHandler(uc table.UseCase, log logger.ZapLogger) *TableHandler {
	return &TableHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TableHandler) ListTables(ctx context.Context, _ *emptypb.Empty) (*ListTablesResponse, error) {
	tables, err := h.uc.ListTables(ctx)
	if err != nil {
		h.logger.Error("failed to list tables", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ListTablesResponse{Tables: tables}, nil
}

func (h *TableHandler) UpsertTable(ctx context.Context, req *model.Table) (*model.Table, error) {
	t, err := h.uc.UpsertTable(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return t, nil
}

func (h *TableHandler) DeleteTable(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteTable(ctx, req.ID); err != nil {
		h.logger.Error("failed to delete table", zap.Int64("table_id", req.ID), zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TableServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ListTables", (*TableHandler).ListTables),
		rpc.Unary(ServiceName, "UpsertTable", (*TableHandler).UpsertTable),
		rpc.Unary(ServiceName, "DeleteTable", (*TableHandler).DeleteTable),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *TableHandler) {
	s.RegisterService(&serviceDesc, h)
}

package handler

import (
	"bytes"
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/internal/transfer"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("TransferService")

const workbookContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransferServer interface {
	ExportData(ctx context.Context, req *emptypb.Empty) (*model.Snapshot, error)
	ImportData(ctx context.Context, req *model.Snapshot) (*emptypb.Empty, error)
	ClearAllData(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
	ExportWorkbook(ctx context.Context, req *emptypb.Empty) (*WorkbookResponse, error)
}

var _ TransferServer = (*TransferHandler)(nil)

// WorkbookResponse carries the .xlsx bytes; JSON encodes them as base64.
type WorkbookResponse struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

type TransferHandler struct {
	uc     transfer.UseCase
	logger logger.ZapLogger
}

func NewTransferHandler(uc transfer.UseCase, log logger.ZapLogger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *TransferHandler) ExportData(ctx context.Context, _ *emptypb.Empty) (*model.Snapshot, error) {
	snap, err := h.uc.Export(ctx)
	if err != nil {
		h.logger.Error("failed to export data", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return snap, nil
}

func (h *TransferHandler) ImportData(ctx context.Context, req *model.Snapshot) (*emptypb.Empty, error) {
	if err := h.uc.Import(ctx, req); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *TransferHandler) ClearAllData(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.uc.ClearAll(ctx); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *TransferHandler) ExportWorkbook(ctx context.Context, _ *emptypb.Empty) (*WorkbookResponse, error) {
	var buf bytes.Buffer
	if err := h.uc.ExportWorkbook(ctx, &buf); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &WorkbookResponse{
		FileName:    "omnipos-export.xlsx",
		ContentType: workbookContentType,
		Data:        buf.Bytes(),
	}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransferServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ExportData", (*TransferHandler).ExportData),
		rpc.Unary(ServiceName, "ImportData", (*TransferHandler).ImportData),
		rpc.Unary(ServiceName, "ClearAllData", (*TransferHandler).ClearAllData),
		rpc.Unary(ServiceName, "ExportWorkbook", (*TransferHandler).ExportWorkbook),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *TransferHandler) {
	s.RegisterService(&serviceDesc, h)
}

package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/license"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("LicenseService")

type LicenseServer interface {
	GetStatus(ctx context.Context, req *emptypb.Empty) (*model.LicenseStatus, error)
	Activate(ctx context.Context, req *ActivateRequest) (*model.LicenseStatus, error)
	GetFingerprint(ctx context.Context, req *emptypb.Empty) (*FingerprintResponse, error)
	Clear(ctx context.Context, req *emptypb.Empty) (*emptypb.Empty, error)
}

var _ LicenseServer = (*LicenseHandler)(nil)

type ActivateRequest struct {
	Key   string `json:"key"`
	Email string `json:"email"`
}

type FingerprintResponse struct {
	Fingerprint string `json:"fingerprint"`
}

type LicenseHandler struct {
	uc     license.UseCase
	logger logger.ZapLogger
}

func NewLicenseHandler(uc license.UseCase, log logger.ZapLogger) *LicenseHandler {
	return &LicenseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *LicenseHandler) GetStatus(ctx context.Context, _ *emptypb.Empty) (*model.LicenseStatus, error) {
	st, err := h.uc.Status(ctx)
	if err != nil {
		h.logger.Error("failed to read license status", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return st, nil
}

func (h *LicenseHandler) Activate(ctx context.Context, req *ActivateRequest) (*model.LicenseStatus, error) {
	st, err := h.uc.Activate(ctx, req.Key, req.Email)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return st, nil
}

func (h *LicenseHandler) GetFingerprint(ctx context.Context, _ *emptypb.Empty) (*FingerprintResponse, error) {
	fp, err := h.uc.Fingerprint(ctx)
	if err != nil {
		h.logger.Warn("failed to fingerprint machine", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &FingerprintResponse{Fingerprint: fp}, nil
}

func (h *LicenseHandler) Clear(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.uc.Clear(ctx); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LicenseServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "GetStatus", (*LicenseHandler).GetStatus),
		rpc.Unary(ServiceName, "Activate", (*LicenseHandler).Activate),
		rpc.Unary(ServiceName, "GetFingerprint", (*LicenseHandler).GetFingerprint),
		rpc.Unary(ServiceName, "Clear", (*LicenseHandler).Clear),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *LicenseHandler) {
	s.RegisterService(&serviceDesc, h)
}

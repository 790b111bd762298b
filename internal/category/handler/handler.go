package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/category"
	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("CategoryService")

type CategoryServer interface {
	ListCategories(ctx context.Context, req *emptypb.Empty) (*ListCategoriesResponse, error)
	UpsertCategory(ctx context.Context, req *model.Category) (*model.Category, error)
	DeleteCategory(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error)
}

var _ CategoryServer = (*CategoryHandler)(nil)

type ListCategoriesResponse struct {
	Categories []model.Category `json:"categories"`
}

type CategoryHandler struct {
	uc     category.UseCase
	logger logger.ZapLogger
}

func NewCategoryHandler(uc category.UseCase, log logger.ZapLogger) *CategoryHandler {
	return &CategoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *CategoryHandler) ListCategories(ctx context.Context, _ *emptypb.Empty) (*ListCategoriesResponse, error) {
	cats, err := h.uc.ListCategories(ctx)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ListCategoriesResponse{Categories: cats}, nil
}

func (h *CategoryHandler) UpsertCategory(ctx context.Context, req *model.Category) (*model.Category, error) {
	cat, err := h.uc.UpsertCategory(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return cat, nil
}

func (h *CategoryHandler) DeleteCategory(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error) {
	err := h.uc.DeleteCategory(ctx, req.ID)
	if err != nil {
		h.logger.Error("failed to delete category", zap.Int64("category_id", req.ID), zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CategoryServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ListCategories", (*CategoryHandler).ListCategories),
		rpc.Unary(ServiceName, "UpsertCategory", (*CategoryHandler).UpsertCategory),
		rpc.Unary(ServiceName, "DeleteCategory", (*CategoryHandler).DeleteCategory),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *CategoryHandler) {
	s.RegisterService(&serviceDesc, h)
}

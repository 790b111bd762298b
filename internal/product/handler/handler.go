package handler

import (
	"context"

	"github.com/fekuna/omnipos-desktop/internal/model"
	"github.com/fekuna/omnipos-desktop/internal/product"
	"github.com/fekuna/omnipos-desktop/internal/rpc"
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

var ServiceName = rpc.ServiceName("ProductService")

type ProductServer interface {
	ListProducts(ctx context.Context, req *emptypb.Empty) (*ListProductsResponse, error)
	UpsertProduct(ctx context.Context, req *model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error)
}

var _ ProductServer = (*ProductHandler)(nil)

type ListProductsResponse struct {
	Products []model.Product `json:"products"`
}

type ProductHandler struct {
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) ListProducts(ctx context.Context, _ *emptypb.Empty) (*ListProductsResponse, error) {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return nil, rpc.ToStatus(err)
	}
	return &ListProductsResponse{Products: products}, nil
}

func (h *ProductHandler) UpsertProduct(ctx context.Context, req *model.Product) (*model.Product, error) {
	p, err := h.uc.UpsertProduct(ctx, req)
	if err != nil {
		return nil, rpc.ToStatus(err)
	}
	return p, nil
}

func (h *ProductHandler) DeleteProduct(ctx context.Context, req *rpc.IDRequest) (*emptypb.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.ID); err != nil {
		return nil, rpc.ToStatus(err)
	}
	return &emptypb.Empty{}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProductServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ServiceName, "ListProducts", (*ProductHandler).ListProducts),
		rpc.Unary(ServiceName, "UpsertProduct", (*ProductHandler).UpsertProduct),
		rpc.Unary(ServiceName, "DeleteProduct", (*ProductHandler).DeleteProduct),
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, h *ProductHandler) {
	s.RegisterService(&serviceDesc, h)
}

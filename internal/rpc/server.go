package rpc

import (
	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"google.golang.org/grpc"
)

// NewServer returns a gRPC server with the logging interceptor installed.
// Extra options are applied after it.
func NewServer(log logger.ZapLogger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryServerInterceptor(log)),
	}, opts...)
	return grpc.NewServer(opts...)
}

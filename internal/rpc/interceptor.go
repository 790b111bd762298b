package rpc

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/fekuna/omnipos-desktop/pkg/logger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor tags each call with a request id, logs its outcome
// and turns a panic into codes.Internal.
func UnaryServerInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		requestID := incomingRequestID(ctx)
		ctx = withRequestID(ctx, requestID)
		l := log.With(zap.String("request_id", requestID), zap.String("method", info.FullMethod))
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				l.Error("panic in handler", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}

			code := status.Code(err)
			fields := []zap.Field{zap.Duration("duration", time.Since(start)), zap.String("code", code.String())}
			if err != nil {
				l.Warn("rpc failed", append(fields, zap.Error(err))...)
				return
			}
			l.Debug("rpc handled", fields...)
		}()

		return handler(ctx, req)
	}
}

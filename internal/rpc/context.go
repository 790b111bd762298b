package rpc

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// RequestIDHeader lets a caller supply its own correlation id.
const RequestIDHeader = "x-request-id"

type requestIDKey struct{}

// RequestID returns the id the interceptor attached to ctx, or "".
func RequestID(ctx context.Context) string {
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// incomingRequestID prefers the caller's header and falls back to a new uuid.
func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if val := md.Get(RequestIDHeader); len(val) > 0 && val[0] != "" {
			return val[0]
		}
	}
	return uuid.NewString()
}

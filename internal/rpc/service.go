package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Package is the proto package all desktop services are registered under.
const Package = "omnipos.desktop.v1"

// ServiceName qualifies a short service name with Package.
func ServiceName(name string) string {
	return Package + "." + name
}

// IDRequest addresses a single record.
type IDRequest struct {
	ID int64 `json:"id"`
}

// Unary builds a method descriptor that decodes the request into a fresh
// Req and dispatches to call on the registered server.
func Unary[S any, Req any, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + service + "/" + method
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, status.Error(codes.InvalidArgument, status.Convert(err).Message())
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// Invoke calls a unary method using the JSON codec.
func Invoke(ctx context.Context, cc grpc.ClientConnInterface, fullMethod string, req, resp any, opts ...grpc.CallOption) error {
	opts = append(opts, grpc.CallContentSubtype(CodecName))
	return cc.Invoke(ctx, fullMethod, req, resp, opts...)
}

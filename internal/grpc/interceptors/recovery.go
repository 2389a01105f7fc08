package interceptors

import (
	"context"
	"fmt"
	"runtime/debug"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"resume-composer/internal/logging"
)

func logPanic(method string, r interface{}, kind string) {
	logging.GetGlobalLogger().Error("gRPC handler panic recovered", map[string]interface{}{
		"method":      method,
		"panic":       fmt.Sprintf("%v", r),
		"stack_trace": string(debug.Stack()),
		"type":        kind,
	})
}

// RecoveryInterceptor returns a gRPC unary interceptor that recovers from panics
func RecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(info.FullMethod, r, "grpc_panic")
				err = status.Errorf(codes.Internal, "internal server error: %v", r)
				resp = nil
			}
		}()

		return handler(ctx, req)
	}
}

// StreamRecoveryInterceptor returns a gRPC streaming interceptor that recovers from panics
func StreamRecoveryInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(info.FullMethod, r, "grpc_stream_panic")
				err = status.Errorf(codes.Internal, "internal server error: %v", r)
			}
		}()

		return handler(srv, ss)
	}
}

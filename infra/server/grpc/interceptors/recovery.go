// Package interceptors supplies the server-side interceptor chain the
// gRPC server installs on every unary and streaming call: panic
// recovery first, then structured request logging. There is no
// authentication interceptor here, unlike the per-tenant auth stream
// interceptor this package's shape is descended from — a tnc-gateway
// process has exactly one caller, the agent process hosting it, so
// there is no identity to inspect per call.
package interceptors

import (
	"context"
	"log/slog"
	"time"

	recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Recovery turns a panic inside any handler into an Internal status
// instead of taking the whole process down with it.
func Recovery(logger *slog.Logger) (grpc.UnaryServerInterceptor, grpc.StreamServerInterceptor) {
	opts := recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic in gRPC handler", "panic", p)
		return status.Errorf(codes.Internal, "panic: %v", p)
	})
	return recovery.UnaryServerInterceptor(opts), recovery.StreamServerInterceptor(opts)
}

// Logging records method, duration and outcome for every call that
// returns. The server chains it inside Recovery, so a panicking handler
// never reaches logCall; the panic is logged by Recovery's handler
// instead.
func Logging(logger *slog.Logger) (grpc.UnaryServerInterceptor, grpc.StreamServerInterceptor) {
	unary := func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logCall(logger, ctx, info.FullMethod, start, err)
		return resp, err
	}
	stream := func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		logCall(logger, ss.Context(), info.FullMethod, start, err)
		return err
	}
	return unary, stream
}

func logCall(logger *slog.Logger, ctx context.Context, method string, start time.Time, err error) {
	fields := []any{
		"method", method,
		"duration_ms", time.Since(start).Milliseconds(),
		"code", status.Code(err).String(),
	}
	if err != nil && status.Code(err) == codes.Internal {
		logger.ErrorContext(ctx, "grpc call failed", append(fields, "error", err)...)
		return
	}
	logger.DebugContext(ctx, "grpc call", fields...)
}

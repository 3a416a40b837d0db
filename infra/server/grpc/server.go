// Package grpc wraps google.golang.org/grpc's server in the shape the
// rest of this module expects: a single listener exposing all four
// service surfaces over the tncjson wire codec, with panic recovery and
// structured logging installed on every call and an otel stats handler
// wired in for tracing/metrics.
package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"

	"github.com/flowpro/tnc-gateway/infra/codec"
	"github.com/flowpro/tnc-gateway/infra/server/grpc/interceptors"
)

// Server owns the grpc.Server instance and the listener it serves on.
// Handler modules register themselves on Server during fx construction,
// before Serve is ever invoked.
type Server struct {
	Server *grpc.Server

	port   int
	logger *slog.Logger
}

func New(port int, logger *slog.Logger) *Server {
	recoveryUnary, recoveryStream := interceptors.Recovery(logger)
	loggingUnary, loggingStream := interceptors.Logging(logger)

	srv := grpc.NewServer(
		grpc.ForceServerCodec(codec.New()),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(recoveryUnary, loggingUnary),
		grpc.ChainStreamInterceptor(recoveryStream, loggingStream),
	)

	return &Server{Server: srv, port: port, logger: logger}
}

// Serve blocks until the listener closes, which GracefulStop triggers.
func (s *Server) Serve(ctx context.Context) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", s.port, err)
	}

	s.logger.InfoContext(ctx, "gRPC server listening", "port", s.port)
	return s.Server.Serve(lis)
}

func (s *Server) GracefulStop() {
	s.Server.GracefulStop()
}

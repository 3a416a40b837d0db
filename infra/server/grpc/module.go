package grpc

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/config"
)

var Module = fx.Module("grpc-server",
	fx.Provide(func(cfg *config.Config, logger *slog.Logger) *Server {
		return New(cfg.GRPCPort, logger)
	}),
	fx.Invoke(func(lc fx.Lifecycle, s *Server, logger *slog.Logger) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				go func() {
					if err := s.Serve(context.Background()); err != nil {
						logger.Error("grpc server exited", "error", err)
					}
				}()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				s.GracefulStop()
				return nil
			},
		})
	}),
)

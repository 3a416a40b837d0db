package bridge

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/config"
	"github.com/flowpro/tnc-gateway/infra/bus"
)

var Module = fx.Module("bridge",
	fx.Provide(func(cfg *config.Config, logger *slog.Logger) *Bridge {
		return New(bus.Options{
			URL:               cfg.BusURL,
			Namespace:         cfg.Namespace,
			Identity:          bus.Identity{ID: cfg.IdentityID, Name: cfg.IdentityName},
			Username:          cfg.Username,
			Password:          cfg.Password,
			TLSCert:           cfg.TLSCert,
			TLSKey:            cfg.TLSKey,
			VerifyServerCert:  cfg.VerifyServerCert,
			FailFastIfOffline: cfg.FailFastIfOffline,
		}, logger)
	}),
	fx.Invoke(func(lc fx.Lifecycle, b *Bridge) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error { return b.Start(ctx) },
			OnStop: func(ctx context.Context) error {
				b.Stop()
				return nil
			},
		})
	}),
)

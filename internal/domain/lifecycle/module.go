package lifecycle

import (
	"context"

	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/internal/domain/bridge"
)

var Module = fx.Module("lifecycle",
	fx.Provide(func(b *bridge.Bridge) *Tracker {
		t := New(b.CurrentClient())
		b.OnClientChange(t.Rebind)
		return t
	}),
	fx.Invoke(func(lc fx.Lifecycle, t *Tracker) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				t.Start()
				return nil
			},
			OnStop: func(ctx context.Context) error {
				t.Stop()
				return nil
			},
		})
	}),
)

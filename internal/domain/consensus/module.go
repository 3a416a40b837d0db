package consensus

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/config"
)

var Module = fx.Module("consensus",
	fx.Provide(func(cfg *config.Config, logger *slog.Logger) *Gateway {
		return New(cfg.ConsensusDataDir, logger)
	}),
	fx.Invoke(func(lc fx.Lifecycle, g *Gateway) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				g.Shutdown()
				return nil
			},
		})
	}),
	fx.Invoke(registerConnectedNodesGauge),
)

// registerConnectedNodesGauge exports the count of Connected Raft nodes
// through the global otel MeterProvider, so an agent running several
// consensus nodes shows up on whatever metrics backend the process is
// wired to without the consensus package needing to know about it.
func registerConnectedNodesGauge(g *Gateway) error {
	meter := otel.Meter("tnc-gateway/consensus")
	_, err := meter.Int64ObservableGauge(
		"tnc_consensus_connected_nodes",
		metric.WithDescription("Number of Raft nodes currently in the Connected state"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(g.ConnectedNodeCount())
			return nil
		}),
	)
	return err
}

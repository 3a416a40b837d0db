package cmd

import (
	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/config"
	grpcsrv "github.com/flowpro/tnc-gateway/infra/server/grpc"
	"github.com/flowpro/tnc-gateway/internal/domain/bridge"
	"github.com/flowpro/tnc-gateway/internal/domain/consensus"
	"github.com/flowpro/tnc-gateway/internal/domain/lifecycle"
	"github.com/flowpro/tnc-gateway/internal/domain/routing"
	grpchandler "github.com/flowpro/tnc-gateway/internal/handler/grpc"
)

func NewApp(cfg *config.Config) *fx.App {
	return fx.New(
		fx.Provide(
			func() *config.Config { return cfg },
			ProvideLogger,
		),
		routing.Module,
		bridge.Module,
		lifecycle.Module,
		consensus.Module,
		grpcsrv.Module,
		grpchandler.Module,
	)
}

package grpc

import (
	"go.uber.org/fx"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	grpcsrv "github.com/flowpro/tnc-gateway/infra/server/grpc"
)

var Module = fx.Module("handler-grpc",
	fx.Provide(
		NewRoutingHandler,
		NewCommunicationHandler,
		NewLifecycleHandler,
		NewConsensusHandler,
	),
	fx.Invoke(RegisterServices),
)

// RegisterServices wires every handler onto the shared gRPC server once
// all four are constructed, so a gateway process always exposes the
// full Routing/Communication/Lifecycle/Consensus surface together.
func RegisterServices(
	server *grpcsrv.Server,
	routing *RoutingHandler,
	communication *CommunicationHandler,
	lifecycle *LifecycleHandler,
	consensus *ConsensusHandler,
) {
	tncpb.RegisterRoutingServiceServer(server.Server, routing)
	tncpb.RegisterCommunicationServiceServer(server.Server, communication)
	tncpb.RegisterLifecycleServiceServer(server.Server, lifecycle)
	tncpb.RegisterConsensusServiceServer(server.Server, consensus)
}

package grpc

import (
	"context"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/internal/domain/consensus"
)

// ConsensusHandler implements tncpb.ConsensusServiceServer over a
// consensus.Gateway, which already speaks tncpb types on every method.
type ConsensusHandler struct {
	tncpb.UnimplementedConsensusServiceServer

	gateway *consensus.Gateway
}

func NewConsensusHandler(g *consensus.Gateway) *ConsensusHandler {
	return &ConsensusHandler{gateway: g}
}

func (h *ConsensusHandler) Create(ctx context.Context, req *tncpb.CreateNodeRequest) (*tncpb.CreateNodeResponse, error) {
	return h.gateway.Create(ctx, req)
}

func (h *ConsensusHandler) Connect(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	return h.gateway.Connect(ctx, req)
}

func (h *ConsensusHandler) Disconnect(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	return h.gateway.Disconnect(ctx, req)
}

func (h *ConsensusHandler) Stop(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	return h.gateway.Stop(ctx, req)
}

func (h *ConsensusHandler) Propose(ctx context.Context, req *tncpb.ProposeRequest) (*tncpb.StateResponse, error) {
	return h.gateway.Propose(ctx, req)
}

func (h *ConsensusHandler) GetState(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.StateResponse, error) {
	return h.gateway.GetState(ctx, req)
}

func (h *ConsensusHandler) ObserveState(req *tncpb.NodeRequest, stream tncpb.ConsensusService_ObserveStateServer) error {
	return h.gateway.ObserveState(stream.Context(), req, stream.Send)
}

func (h *ConsensusHandler) GetClusterConfiguration(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.ClusterConfigurationResponse, error) {
	return h.gateway.GetClusterConfiguration(ctx, req)
}

func (h *ConsensusHandler) ObserveClusterConfiguration(req *tncpb.NodeRequest, stream tncpb.ConsensusService_ObserveClusterConfigurationServer) error {
	return h.gateway.ObserveClusterConfiguration(stream.Context(), req, stream.Send)
}

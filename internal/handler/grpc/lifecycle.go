package grpc

import (
	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/internal/domain/lifecycle"
)

// LifecycleHandler implements tncpb.LifecycleServiceServer over a
// lifecycle.Tracker.
type LifecycleHandler struct {
	tncpb.UnimplementedLifecycleServiceServer

	tracker *lifecycle.Tracker
}

func NewLifecycleHandler(t *lifecycle.Tracker) *LifecycleHandler {
	return &LifecycleHandler{tracker: t}
}

func (h *LifecycleHandler) TrackAgents(sel *tncpb.AgentSelector, stream tncpb.LifecycleService_TrackAgentsServer) error {
	return h.tracker.TrackAgents(stream.Context(), sel, stream.Send)
}

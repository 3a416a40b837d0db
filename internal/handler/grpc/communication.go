package grpc

import (
	"context"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/internal/domain/bridge"
)

// CommunicationHandler implements tncpb.CommunicationServiceServer by
// delegating straight to the Bridge, which already speaks tncpb types
// on every method. There is no translation to do here.
type CommunicationHandler struct {
	tncpb.UnimplementedCommunicationServiceServer

	bridge *bridge.Bridge
}

func NewCommunicationHandler(b *bridge.Bridge) *CommunicationHandler {
	return &CommunicationHandler{bridge: b}
}

func (h *CommunicationHandler) Configure(ctx context.Context, req *tncpb.ConfigureOptions) (*tncpb.ConfigureAck, error) {
	return h.bridge.Configure(ctx, req)
}

func (h *CommunicationHandler) PublishChannel(ctx context.Context, req *tncpb.PublishChannelRequest) (*tncpb.EventAck, error) {
	return h.bridge.PublishChannel(ctx, req)
}

func (h *CommunicationHandler) ObserveChannel(req *tncpb.ObserveChannelRequest, stream tncpb.CommunicationService_ObserveChannelServer) error {
	return h.bridge.ObserveChannel(stream.Context(), req, stream.Send)
}

func (h *CommunicationHandler) PublishCall(req *tncpb.PublishCallRequest, stream tncpb.CommunicationService_PublishCallServer) error {
	return h.bridge.PublishCall(stream.Context(), req, stream.Send)
}

func (h *CommunicationHandler) ObserveCall(req *tncpb.ObserveCallRequest, stream tncpb.CommunicationService_ObserveCallServer) error {
	return h.bridge.ObserveCall(stream.Context(), req, stream.Send)
}

func (h *CommunicationHandler) PublishReturn(ctx context.Context, req *tncpb.PublishReturnRequest) (*tncpb.EventAck, error) {
	return h.bridge.PublishReturn(ctx, req)
}

func (h *CommunicationHandler) PublishComplete(ctx context.Context, req *tncpb.PublishCompleteRequest) (*tncpb.EventAck, error) {
	return h.bridge.PublishComplete(ctx, req)
}

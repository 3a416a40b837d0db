// Package grpc adapts the gateway's domain packages to the generated
// tncpb server interfaces. Each handler here is a thin translation
// layer: routing needs one because Engine speaks plain Go values, while
// the bridge, lifecycle and consensus handlers below delegate directly
// since their domain types already speak tncpb.
package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/internal/domain/routing"
)

// RoutingHandler implements tncpb.RoutingServiceServer over a routing.Engine.
type RoutingHandler struct {
	tncpb.UnimplementedRoutingServiceServer

	engine *routing.Engine
}

func NewRoutingHandler(engine *routing.Engine) *RoutingHandler {
	return &RoutingHandler{engine: engine}
}

// RegisterPushRoute holds the stream open for the lifetime of the
// registration, forwarding every PushEvent sent to the route until the
// client disconnects or the stream's context is cancelled.
func (h *RoutingHandler) RegisterPushRoute(req *tncpb.PushRoute, stream tncpb.RoutingService_RegisterPushRouteServer) error {
	if req.GetRoute() == "" {
		return status.Error(codes.InvalidArgument, "route must not be empty")
	}

	reg := h.engine.RegisterPush(req.Route)
	defer h.engine.DeregisterPush(reg)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-reg.Recv():
			if !ok {
				return nil
			}
			if err := stream.Send(ev); err != nil {
				return err
			}
		}
	}
}

// RegisterRequestRoute mirrors RegisterPushRoute for the request table,
// validating the requested dispatch policy up front.
func (h *RoutingHandler) RegisterRequestRoute(req *tncpb.RequestRoute, stream tncpb.RoutingService_RegisterRequestRouteServer) error {
	if req.GetRoute() == "" {
		return status.Error(codes.InvalidArgument, "route must not be empty")
	}

	reg, err := h.engine.RegisterRequest(req.Route, req.Policy)
	if err != nil {
		return err
	}
	defer h.engine.DeregisterRequest(reg)

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-reg.Recv():
			if !ok {
				return nil
			}
			if err := stream.Send(ev); err != nil {
				return err
			}
		}
	}
}

func (h *RoutingHandler) Push(ctx context.Context, req *tncpb.PushEvent) (*tncpb.RouteEventAck, error) {
	count := h.engine.Push(req.Route, req.Payload)
	return &tncpb.RouteEventAck{RoutingCount: count}, nil
}

// Request blocks until a correlated Respond arrives, the engine rejects
// the request outright (no live registration), or the caller's context
// ends first.
func (h *RoutingHandler) Request(ctx context.Context, req *tncpb.RequestEvent) (*tncpb.ResponseEvent, error) {
	reply, err := h.engine.Request(req.Route, req.Payload)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, status.FromContextError(ctx.Err()).Err()
	case out := <-reply:
		if out.Err != nil {
			return nil, out.Err
		}
		return &tncpb.ResponseEvent{Route: req.Route, Payload: out.Payload}, nil
	}
}

func (h *RoutingHandler) Respond(ctx context.Context, req *tncpb.ResponseEvent) (*tncpb.RouteEventAck, error) {
	count, err := h.engine.Respond(req.Route, req.RequestId, req.Payload)
	if err != nil {
		return nil, err
	}
	return &tncpb.RouteEventAck{RoutingCount: count}, nil
}

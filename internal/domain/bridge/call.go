package bridge

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
	"github.com/flowpro/tnc-gateway/internal/domain/payload"
)

// newCallCorrelationID is a package variable, not a plain call to
// uuid.NewString, so tests can pin the bus correlation id a PublishCall
// allocates and target it directly with a synthetic Return event.
var newCallCorrelationID = uuid.NewString

// PublishCall issues a Call on the bus and streams every Return that
// arrives for it. The stream is semantically unbounded: one call may
// draw many responses, from one or several responders, over an
// arbitrary span of time. It ends only on caller cancellation, deadline,
// or the bus going down — never merely because a responder finished.
func (b *Bridge) PublishCall(ctx context.Context, req *tncpb.PublishCallRequest, send func(*tncpb.ReturnEvent) error) error {
	if err := validateName("operation", req.Operation); err != nil {
		return err
	}

	client := b.currentClient()
	busCorrelationID := newCallCorrelationID()

	sub := client.Subscribe(client.ReturnTopic(req.Operation, busCorrelationID))
	defer client.Unsubscribe(sub)

	call := callMessage{
		CorrelationId: busCorrelationID,
		Payload:       payload.ToBus(req.Payload),
		SourceId:      client.Identity().ID,
	}
	body, err := json.Marshal(call)
	if err != nil {
		return status.Errorf(codes.Internal, "marshal call payload: %v", err)
	}

	if err := client.Publish(client.CallTopic(req.Operation), body, false); err != nil {
		if err == bus.ErrOffline && req.FailFastIfOffline {
			return status.Error(codes.Unavailable, "bus is offline")
		}
		if err != bus.ErrOffline {
			return status.Errorf(codes.Internal, "publish call: %v", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-sub.C():
			if !ok {
				return nil
			}
			var ret returnMessage
			if err := json.Unmarshal(m.Payload, &ret); err != nil {
				continue
			}
			any, err := payload.FromBus(ret.Payload)
			if err != nil {
				continue
			}
			ev := &tncpb.ReturnEvent{
				Operation:     req.Operation,
				CorrelationId: "",
				Payload:       any,
				IsError:       ret.IsError,
				ErrorMessage:  ret.ErrorMessage,
			}
			if err := send(ev); err != nil {
				return err
			}
		}
	}
}

// ObserveCall streams every inbound Call on the named operation. Each
// forwarded CallEvent carries a freshly allocated correlation id; the
// bus-internal correlation that the eventual Return/Complete must
// target is kept in the sink registry, never exposed outward.
func (b *Bridge) ObserveCall(ctx context.Context, req *tncpb.ObserveCallRequest, send func(*tncpb.CallEvent) error) error {
	if err := validateName("operation", req.Operation); err != nil {
		return err
	}

	client := b.currentClient()
	sub := client.Subscribe(client.CallTopic(req.Operation))
	defer client.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-sub.C():
			if !ok {
				return nil
			}
			var call callMessage
			if err := json.Unmarshal(m.Payload, &call); err != nil {
				continue
			}
			any, err := payload.FromBus(call.Payload)
			if err != nil {
				continue
			}

			localID := b.registerSink(req.Operation, call.CorrelationId)
			ev := &tncpb.CallEvent{
				Operation:     req.Operation,
				CorrelationId: localID,
				Payload:       any,
				SourceId:      call.SourceId,
			}
			if err := send(ev); err != nil {
				b.releaseSink(localID)
				return err
			}
		}
	}
}

// PublishReturn looks up the ResponseSink for a locally allocated
// correlation id and republishes the return to the original Call's bus
// correlation. A missing sink is expected in late-response or
// post-complete scenarios and is silently discarded.
func (b *Bridge) PublishReturn(ctx context.Context, req *tncpb.PublishReturnRequest) (*tncpb.EventAck, error) {
	sink, ok := b.lookupSink(req.CorrelationId)
	if !ok {
		return &tncpb.EventAck{}, nil
	}

	client := b.currentClient()
	body, err := json.Marshal(returnMessage{
		Payload:      payload.ToBus(req.Payload),
		IsError:      req.IsError,
		ErrorMessage: req.ErrorMessage,
	})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal return payload: %v", err)
	}

	if err := client.Publish(client.ReturnTopic(sink.operation, sink.busCorrelationID), body, false); err != nil {
		if err == bus.ErrOffline && b.failFastIfOffline() {
			return nil, status.Error(codes.Unavailable, "bus is offline")
		}
		if err != bus.ErrOffline {
			return nil, status.Errorf(codes.Internal, "publish return: %v", err)
		}
	}

	return &tncpb.EventAck{}, nil
}

// PublishComplete releases the ResponseSink for a correlation id. It is
// idempotent: a repeated or unknown correlation id still returns an
// ack without error.
func (b *Bridge) PublishComplete(ctx context.Context, req *tncpb.PublishCompleteRequest) (*tncpb.EventAck, error) {
	sink, ok := b.lookupSink(req.CorrelationId)
	if ok {
		client := b.currentClient()
		body, _ := json.Marshal(completeMessage{})
		_ = client.Publish(client.CompleteTopic(sink.operation, sink.busCorrelationID), body, false)
		b.releaseSink(req.CorrelationId)
	}
	return &tncpb.EventAck{}, nil
}

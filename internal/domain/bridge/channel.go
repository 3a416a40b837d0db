package bridge

import (
	"context"
	"encoding/json"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
	"github.com/flowpro/tnc-gateway/internal/domain/payload"
)

// PublishChannel publishes payload on the named channel. A failFast
// request against an offline bus is rejected; otherwise publication is
// best-effort and the ack is returned once the attempt has been
// dispatched.
func (b *Bridge) PublishChannel(ctx context.Context, req *tncpb.PublishChannelRequest) (*tncpb.EventAck, error) {
	if err := validateName("channel id", req.Id); err != nil {
		return nil, err
	}

	client := b.currentClient()
	msg := channelMessage{
		Payload:  payload.ToBus(req.Payload),
		SourceId: client.Identity().ID,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal channel payload: %v", err)
	}

	if err := client.Publish(client.ChannelTopic(req.Id), body, false); err != nil {
		if err == bus.ErrOffline && req.FailFastIfOffline {
			return nil, status.Error(codes.Unavailable, "bus is offline")
		}
		if err != bus.ErrOffline {
			return nil, status.Errorf(codes.Internal, "publish channel: %v", err)
		}
	}

	return &tncpb.EventAck{}, nil
}

// ObserveChannel streams every inbound event on the named channel until
// the context is cancelled or the bus subscription is ended (bus stop
// or reconfigure).
func (b *Bridge) ObserveChannel(ctx context.Context, req *tncpb.ObserveChannelRequest, send func(*tncpb.ChannelEvent) error) error {
	if err := validateName("channel id", req.Id); err != nil {
		return err
	}

	client := b.currentClient()
	sub := client.Subscribe(client.ChannelTopic(req.Id))
	defer client.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-sub.C():
			if !ok {
				return nil
			}
			var msg channelMessage
			if err := json.Unmarshal(m.Payload, &msg); err != nil {
				continue
			}
			any, err := payload.FromBus(msg.Payload)
			if err != nil {
				continue
			}
			if err := send(&tncpb.ChannelEvent{Id: req.Id, Payload: any, SourceId: msg.SourceId}); err != nil {
				return err
			}
		}
	}
}

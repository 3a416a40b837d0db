package bridge

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
	"github.com/flowpro/tnc-gateway/internal/domain/payload"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, validateName("channel id", "flowpro.icc.ftf"))
	assert.Error(t, validateName("channel id", ""))
	assert.Error(t, validateName("channel id", "a/b"))
	assert.Error(t, validateName("channel id", "a#b"))
	assert.Error(t, validateName("channel id", "a+b"))
}

func TestConfigureIdempotentWithIdenticalOptions(t *testing.T) {
	b := New(bus.Options{Namespace: "tnc", Identity: bus.Identity{ID: "a", Name: "Agent"}}, discardLogger())

	name := "Agent"
	id := "a"
	ack, err := b.Configure(context.Background(), &tncpb.ConfigureOptions{IdentityId: &id, IdentityName: &name})
	require.NoError(t, err)
	assert.False(t, ack.RestartedBus)
	assert.False(t, ack.IdentityChanged)
}

func TestConfigureDetectsIdentityChange(t *testing.T) {
	b := New(bus.Options{Namespace: "tnc", Identity: bus.Identity{ID: "a", Name: "Agent"}}, discardLogger())

	newID := "b"
	ack, err := b.Configure(context.Background(), &tncpb.ConfigureOptions{IdentityId: &newID})
	require.NoError(t, err)
	assert.True(t, ack.RestartedBus)
	assert.True(t, ack.IdentityChanged)
}

// TestCallReturnMultipleResponsesThenComplete exercises the multi-response
// scenario: an error Return, then a data Return, then Complete, with the
// caller's stream still open (Complete releases the sink but does not
// end the stream, which only ends on context cancellation).
func TestCallReturnMultipleResponsesThenComplete(t *testing.T) {
	b := New(bus.Options{Namespace: "tnc", Identity: bus.Identity{ID: "a", Name: "Agent"}}, discardLogger())
	client := b.currentClient()

	const correlationID = "fixed-correlation"
	orig := newCallCorrelationID
	newCallCorrelationID = func() string { return correlationID }
	defer func() { newCallCorrelationID = orig }()

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan *tncpb.ReturnEvent, 4)
	done := make(chan error, 1)

	go func() {
		done <- b.PublishCall(ctx, &tncpb.PublishCallRequest{Operation: "flowpro.icc.ftf.Add"}, func(ev *tncpb.ReturnEvent) error {
			events <- ev
			return nil
		})
	}()

	// Give PublishCall a moment to install its subscription before the
	// test starts delivering Return events onto the same topic.
	require.Eventually(t, func() bool { return client.HasSubscriber(client.ReturnTopic("flowpro.icc.ftf.Add", correlationID)) }, time.Second, time.Millisecond)

	errBody, err := json.Marshal(returnMessage{IsError: true, ErrorMessage: "boom"})
	require.NoError(t, err)
	client.DeliverForTest(client.ReturnTopic("flowpro.icc.ftf.Add", correlationID), errBody)

	first := <-events
	assert.True(t, first.IsError)
	assert.Equal(t, "boom", first.ErrorMessage)

	dataBody, err := json.Marshal(returnMessage{Payload: payload.ToBus(&tncpb.Any{TypeUrl: "x", Value: []byte("2")})})
	require.NoError(t, err)
	client.DeliverForTest(client.ReturnTopic("flowpro.icc.ftf.Add", correlationID), dataBody)

	second := <-events
	assert.False(t, second.IsError)
	require.NotNil(t, second.Payload)

	// Complete releases the sink on the ObserveCall side but must not,
	// by itself, end this PublishCall stream.
	completeBody, err := json.Marshal(completeMessage{})
	require.NoError(t, err)
	client.DeliverForTest(client.CompleteTopic("flowpro.icc.ftf.Add", correlationID), completeBody)

	select {
	case err := <-done:
		t.Fatalf("PublishCall ended before cancellation: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	cancel()
	require.NoError(t, <-done)
}

func TestReleaseSinkIsIdempotent(t *testing.T) {
	b := New(bus.Options{Namespace: "tnc"}, discardLogger())
	localID := b.registerSink("op", "bus-corr")
	b.releaseSink(localID)
	b.releaseSink(localID)

	_, ok := b.lookupSink(localID)
	assert.False(t, ok)
}

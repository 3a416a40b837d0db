/*
Package bridge implements the Bus Communication Bridge: the gRPC-facing
translation of the Channel (one-way multicast) and Call-Return
(two-way, unbounded response count) bus patterns, plus the Configure
surface that (re)starts the underlying bus connection.

Ground rule shared by every operation here: a component that notices
the bus stopping mid-operation must end its streams cleanly (EOF) and
never surface that as an error to an unrelated caller.
*/
package bridge

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
)

// Bridge owns the live bus.Client and the ResponseSink registry for the
// Call-Return pattern's responder side.
type Bridge struct {
	logger *slog.Logger

	mu     sync.RWMutex
	cfg    bus.Options
	client *bus.Client

	sinksMu sync.Mutex
	sinks   map[string]*responseSink

	listenersMu sync.Mutex
	listeners   []func(*bus.Client)
}

// responseSink is present iff a correlation id has had at least one
// matching inbound Call event and no matching Complete event yet.
type responseSink struct {
	operation        string
	busCorrelationID string
}

func New(initial bus.Options, logger *slog.Logger) *Bridge {
	b := &Bridge{
		logger: logger,
		cfg:    initial,
		sinks:  make(map[string]*responseSink),
	}
	b.client = bus.New(initial, logger)
	return b
}

// Start connects the bus if a URL is configured. A gateway started
// without a bus URL simply never brings the bus up until Configure
// supplies one.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.RLock()
	client := b.client
	b.mu.RUnlock()
	return client.Connect(ctx)
}

func (b *Bridge) Stop() {
	b.mu.RLock()
	client := b.client
	b.mu.RUnlock()
	client.EndAllSubscriptions()
	client.Disconnect()
}

// Configure merges opts into the live configuration and restarts the
// bus. Unset fields in opts keep their current value. FailFastIfOffline
// is tri-state: nil leaves it unchanged.
func (b *Bridge) Configure(ctx context.Context, opts *tncpb.ConfigureOptions) (*tncpb.ConfigureAck, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	merged := b.cfg
	identityChanged := false

	if opts.BusUrl != nil {
		merged.URL = *opts.BusUrl
	}
	if opts.Namespace != nil {
		merged.Namespace = *opts.Namespace
	}
	if opts.IdentityId != nil && *opts.IdentityId != merged.Identity.ID {
		merged.Identity.ID = *opts.IdentityId
		identityChanged = true
	}
	if opts.IdentityName != nil && *opts.IdentityName != merged.Identity.Name {
		merged.Identity.Name = *opts.IdentityName
		identityChanged = true
	}
	if opts.Username != nil {
		merged.Username = *opts.Username
	}
	if opts.Password != nil {
		merged.Password = *opts.Password
	}
	if opts.TlsCert != nil {
		merged.TLSCert = *opts.TlsCert
	}
	if opts.TlsKey != nil {
		merged.TLSKey = *opts.TlsKey
	}
	if opts.VerifyServerCert != nil {
		merged.VerifyServerCert = *opts.VerifyServerCert
	}
	if opts.FailFastIfOffline != nil {
		merged.FailFastIfOffline = *opts.FailFastIfOffline
	}

	unchanged := merged == b.cfg
	if unchanged {
		return &tncpb.ConfigureAck{RestartedBus: false, IdentityChanged: false}, nil
	}

	old := b.client
	old.EndAllSubscriptions()
	old.Disconnect()

	b.clearSinks()

	if identityChanged {
		b.client = bus.New(merged, b.logger)
	} else {
		old.Reconfigure(merged)
		b.client = old
	}
	b.cfg = merged

	if merged.URL != "" {
		if err := b.client.Connect(ctx); err != nil {
			return nil, err
		}
	}

	b.notifyClientChanged(b.client)

	return &tncpb.ConfigureAck{RestartedBus: true, IdentityChanged: identityChanged}, nil
}

func (b *Bridge) currentClient() *bus.Client {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.client
}

// CurrentClient exposes the live bus client to collaborators outside the
// package (the lifecycle tracker) that need to subscribe on the
// wildcard presence topic themselves.
func (b *Bridge) CurrentClient() *bus.Client {
	return b.currentClient()
}

// OnClientChange registers fn to be called with the new client every
// time Configure swaps it out or reconnects it. Every outstanding
// subscription is torn down on Configure (see EndAllSubscriptions
// above), so any collaborator holding its own subscription against the
// bus client must rebind through this hook rather than caching the
// client once.
func (b *Bridge) OnClientChange(fn func(*bus.Client)) {
	b.listenersMu.Lock()
	b.listeners = append(b.listeners, fn)
	b.listenersMu.Unlock()
}

func (b *Bridge) notifyClientChanged(client *bus.Client) {
	b.listenersMu.Lock()
	listeners := append([]func(*bus.Client){}, b.listeners...)
	b.listenersMu.Unlock()

	for _, fn := range listeners {
		fn(client)
	}
}

func (b *Bridge) failFastIfOffline() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cfg.FailFastIfOffline
}

func (b *Bridge) clearSinks() {
	b.sinksMu.Lock()
	b.sinks = make(map[string]*responseSink)
	b.sinksMu.Unlock()
}

func (b *Bridge) registerSink(operation, busCorrelationID string) string {
	localID := uuid.NewString()
	b.sinksMu.Lock()
	b.sinks[localID] = &responseSink{operation: operation, busCorrelationID: busCorrelationID}
	b.sinksMu.Unlock()
	return localID
}

func (b *Bridge) lookupSink(localID string) (*responseSink, bool) {
	b.sinksMu.Lock()
	defer b.sinksMu.Unlock()
	s, ok := b.sinks[localID]
	return s, ok
}

func (b *Bridge) releaseSink(localID string) {
	b.sinksMu.Lock()
	delete(b.sinks, localID)
	b.sinksMu.Unlock()
}

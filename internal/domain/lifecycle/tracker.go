/*
Package lifecycle maintains an in-memory directory of known agents,
built entirely from presence messages observed on the bus's wildcard
presence topic, and serves it through TrackAgents: a stream that opens
with a snapshot of every currently known agent matching the caller's
selector, followed by live JOIN/LEAVE events as presence changes.
*/
package lifecycle

import (
	"context"
	"encoding/json"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/bus"
)

const directorySize = 4096

type agentState struct {
	id     string
	name   string
	role   string
	online bool
}

// watcher is one active TrackAgents call: a selector and the channel it
// reads filtered events from.
type watcher struct {
	id  uuid.UUID
	sel *selector
	ch  chan *tncpb.AgentLifecycleEvent
}

type Tracker struct {
	mu          sync.Mutex
	client      *bus.Client
	presenceSub *bus.Subscription
	directory   *lru.Cache[string, *agentState]
	watchers    map[uuid.UUID]*watcher
}

func New(client *bus.Client) *Tracker {
	dir, _ := lru.New[string, *agentState](directorySize)
	return &Tracker{
		client:    client,
		directory: dir,
		watchers:  make(map[uuid.UUID]*watcher),
	}
}

// Start begins pumping presence messages into the directory. It is safe
// to call once the bus client is constructed even before it connects;
// messages simply won't arrive until the bus is up.
func (t *Tracker) Start() {
	t.mu.Lock()
	client := t.client
	t.mu.Unlock()
	t.bindTo(client)
}

func (t *Tracker) Stop() {
	t.mu.Lock()
	client, sub := t.client, t.presenceSub
	t.mu.Unlock()
	if sub != nil {
		client.Unsubscribe(sub)
	}
}

// Rebind switches the tracker onto a new bus client after Configure has
// replaced or restarted it. Every previously outstanding subscription
// (including the tracker's own presence subscription) has already been
// closed by the bridge, so this simply resubscribes against the new
// client and starts a fresh pump goroutine.
func (t *Tracker) Rebind(client *bus.Client) {
	t.mu.Lock()
	t.client = client
	t.mu.Unlock()
	t.bindTo(client)
}

func (t *Tracker) bindTo(client *bus.Client) {
	sub := client.Subscribe(client.PresenceWildcard())
	t.mu.Lock()
	t.presenceSub = sub
	t.mu.Unlock()
	go t.pump(sub)
}

func (t *Tracker) pump(sub *bus.Subscription) {
	for m := range sub.C() {
		t.handlePresence(m)
	}
}

func (t *Tracker) handlePresence(m bus.Message) {
	id, ok := t.client.ParsePresenceIdentity(m.Topic)
	if !ok {
		return
	}
	var env bus.PresenceEnvelope
	if err := json.Unmarshal(m.Payload, &env); err != nil {
		return
	}

	kind := tncpb.AgentLifecycleKind_JOIN
	online := true
	if env.Kind == "LEAVE" {
		kind = tncpb.AgentLifecycleKind_LEAVE
		online = false
	}

	state := &agentState{id: id, name: env.Name, role: env.Role, online: online}

	t.mu.Lock()
	t.directory.Add(id, state)
	watchers := make([]*watcher, 0, len(t.watchers))
	for _, w := range t.watchers {
		watchers = append(watchers, w)
	}
	selfID := t.client.Identity().ID
	t.mu.Unlock()

	ev := &tncpb.AgentLifecycleEvent{
		Kind:         kind,
		IdentityId:   id,
		IdentityName: env.Name,
		Role:         env.Role,
		Local:        id == selfID,
	}

	for _, w := range watchers {
		if !w.sel.matches(id, env.Name) {
			continue
		}
		select {
		case w.ch <- ev:
		default:
		}
	}
}

// TrackAgents registers a selector against the directory, emits a JOIN
// snapshot for every currently known matching agent that is online,
// then forwards live JOIN/LEAVE events until ctx is done.
func (t *Tracker) TrackAgents(ctx context.Context, sel *tncpb.AgentSelector, send func(*tncpb.AgentLifecycleEvent) error) error {
	compiled, err := compileSelector(sel)
	if err != nil {
		return err
	}

	w := &watcher{id: uuid.New(), sel: compiled, ch: make(chan *tncpb.AgentLifecycleEvent, 64)}

	t.mu.Lock()
	snapshot := make([]*tncpb.AgentLifecycleEvent, 0)
	selfID := t.client.Identity().ID
	for _, key := range t.directory.Keys() {
		state, ok := t.directory.Get(key)
		if !ok || !state.online {
			continue
		}
		if !compiled.matches(state.id, state.name) {
			continue
		}
		snapshot = append(snapshot, &tncpb.AgentLifecycleEvent{
			Kind:         tncpb.AgentLifecycleKind_JOIN,
			IdentityId:   state.id,
			IdentityName: state.name,
			Role:         state.role,
			Local:        state.id == selfID,
		})
	}
	t.watchers[w.id] = w
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		delete(t.watchers, w.id)
		t.mu.Unlock()
	}()

	for _, ev := range snapshot {
		if err := send(ev); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.ch:
			if !ok {
				return nil
			}
			if err := send(ev); err != nil {
				return err
			}
		}
	}
}

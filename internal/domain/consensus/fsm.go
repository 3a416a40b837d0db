package consensus

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/hashicorp/raft"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

// logCommand is the only shape ever written to the Raft log: set key to
// value. GetState is implemented by proposing a no-op command (an empty
// key) so that the call observes a state at least as current as every
// proposal accepted before it.
type logCommand struct {
	Key   string       `json:"key"`
	Value *tncpb.Value `json:"value"`
}

// kvFSM is the replicated state machine: a flat string-keyed map of
// tagged values. It notifies watchers after every applied command so
// ObserveState can stream without polling.
type kvFSM struct {
	mu    sync.RWMutex
	state map[string]*tncpb.Value

	watchMu sync.Mutex
	watch   map[int]chan struct{}
	nextID  int
}

func newKVFSM() *kvFSM {
	return &kvFSM{
		state: make(map[string]*tncpb.Value),
		watch: make(map[int]chan struct{}),
	}
}

func (f *kvFSM) Apply(entry *raft.Log) interface{} {
	var cmd logCommand
	if err := json.Unmarshal(entry.Data, &cmd); err != nil {
		return err
	}

	if cmd.Key != "" {
		f.mu.Lock()
		f.state[cmd.Key] = cmd.Value
		f.mu.Unlock()
		f.notify()
	}
	return nil
}

func (f *kvFSM) Snapshot() (raft.FSMSnapshot, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	copied := make(map[string]*tncpb.Value, len(f.state))
	for k, v := range f.state {
		copied[k] = v
	}
	return &kvFSMSnapshot{state: copied}, nil
}

func (f *kvFSM) Restore(rc io.ReadCloser) error {
	defer rc.Close()

	var restored map[string]*tncpb.Value
	if err := json.NewDecoder(rc).Decode(&restored); err != nil {
		return err
	}

	f.mu.Lock()
	f.state = restored
	f.mu.Unlock()
	f.notify()
	return nil
}

// Get returns a defensive copy of the current state.
func (f *kvFSM) Get() map[string]*tncpb.Value {
	f.mu.RLock()
	defer f.mu.RUnlock()

	copied := make(map[string]*tncpb.Value, len(f.state))
	for k, v := range f.state {
		copied[k] = v
	}
	return copied
}

// Subscribe returns a channel pinged (non-blocking) after every applied
// command, and a cancel function that must be called when done.
func (f *kvFSM) Subscribe() (<-chan struct{}, func()) {
	f.watchMu.Lock()
	id := f.nextID
	f.nextID++
	ch := make(chan struct{}, 1)
	f.watch[id] = ch
	f.watchMu.Unlock()

	return ch, func() {
		f.watchMu.Lock()
		delete(f.watch, id)
		f.watchMu.Unlock()
	}
}

func (f *kvFSM) notify() {
	f.watchMu.Lock()
	defer f.watchMu.Unlock()
	for _, ch := range f.watch {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

type kvFSMSnapshot struct {
	state map[string]*tncpb.Value
}

func (s *kvFSMSnapshot) Persist(sink raft.SnapshotSink) error {
	if err := json.NewEncoder(sink).Encode(s.state); err != nil {
		sink.Cancel()
		return err
	}
	return sink.Close()
}

func (s *kvFSMSnapshot) Release() {}

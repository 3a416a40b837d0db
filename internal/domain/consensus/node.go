package consensus

import (
	"sync"
	"time"

	"github.com/hashicorp/raft"

	"github.com/flowpro/tnc-gateway/infra/store"
)

// connectionState names mirror the wire-level ConnectionState string on
// NodeAck exactly, so the gateway never needs a translation table.
type connectionState string

const (
	stateCreated       connectionState = "Created"
	stateConnecting    connectionState = "Connecting"
	stateConnected     connectionState = "Connected"
	stateDisconnecting connectionState = "Disconnecting"
	stateDisconnected  connectionState = "Disconnected"
	stateStopping      connectionState = "Stopping"
	stateStopped       connectionState = "Stopped"
)

const maxQueuedProposals = 1000

// RaftNode is one named member of the consensus gateway's node
// registry. It owns its Raft instance, its on-disk store, and the
// connection state machine described in the component design.
type RaftNode struct {
	id                  string
	cluster             string
	shouldCreateCluster bool

	mu    sync.Mutex
	state connectionState

	fsm       *kvFSM
	raftNode  *raft.Raft
	transport *raft.InmemTransport
	backing   *store.RaftStore

	inflight int
}

func newRaftNode(id, cluster string, shouldCreateCluster bool) *RaftNode {
	return &RaftNode{
		id:                  id,
		cluster:             cluster,
		shouldCreateCluster: shouldCreateCluster,
		state:               stateCreated,
		fsm:                 newKVFSM(),
	}
}

func (n *RaftNode) currentState() connectionState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *RaftNode) transition(to connectionState) {
	n.mu.Lock()
	n.state = to
	n.mu.Unlock()
}

// reserveProposalSlot enforces the queued-proposal cap described in the
// component design, returning false when the node is already carrying
// maxQueuedProposals in flight.
func (n *RaftNode) reserveProposalSlot() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.inflight >= maxQueuedProposals {
		return false
	}
	n.inflight++
	return true
}

func (n *RaftNode) releaseProposalSlot() {
	n.mu.Lock()
	n.inflight--
	n.mu.Unlock()
}

func (n *RaftNode) isLeader() bool {
	return n.raftNode != nil && n.raftNode.State() == raft.Leader
}

func (n *RaftNode) apply(data []byte, timeout time.Duration) raft.ApplyFuture {
	return n.raftNode.Apply(data, timeout)
}

/*
Package consensus implements the Consensus Gateway: a per-agent
registry of named Raft nodes, each wrapping a hashicorp/raft instance
over a replicated key-value state machine, exposed through a strict
per-node connection state machine and streaming observers.

Nodes created in the same gateway process that share a cluster name are
wired together over an in-memory Raft transport; joining a cluster
means asking its current leader to AddVoter this node, mirroring how a
production deployment would ask a leader over the network. The network
transport itself is an external collaborator the component design
assumes away; in-memory wiring is the local stand-in for it.
*/
package consensus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/raft"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/flowpro/tnc-gateway/infra/store"
)

const (
	applyTimeout = 5 * time.Second
	joinTimeout  = 5 * time.Second
)

type Gateway struct {
	logger  *slog.Logger
	dataDir string

	mu         sync.Mutex
	nodes      map[string]*RaftNode
	transports map[string]*raft.InmemTransport
}

func New(dataDir string, logger *slog.Logger) *Gateway {
	return &Gateway{
		logger:     logger,
		dataDir:    dataDir,
		nodes:      make(map[string]*RaftNode),
		transports: make(map[string]*raft.InmemTransport),
	}
}

func (g *Gateway) Create(ctx context.Context, req *tncpb.CreateNodeRequest) (*tncpb.CreateNodeResponse, error) {
	id := uuid.NewString()

	g.mu.Lock()
	g.nodes[id] = newRaftNode(id, req.Cluster, req.ShouldCreateCluster)
	g.mu.Unlock()

	return &tncpb.CreateNodeResponse{Id: id}, nil
}

func (g *Gateway) lookup(id string) (*RaftNode, error) {
	g.mu.Lock()
	node, ok := g.nodes[id]
	g.mu.Unlock()
	if !ok {
		return nil, status.Error(codes.InvalidArgument, "Raft node with this id has not been created")
	}
	return node, nil
}

func rejectIfTransitional(state connectionState) error {
	switch state {
	case stateConnecting, stateDisconnecting, stateStopping:
		return status.Errorf(codes.Unavailable, "Raft node is currently %s", state)
	}
	return nil
}

// Connect brings a Created or Stopped node up, bootstrapping a fresh
// single-member cluster or joining an already-connected peer that
// shares its cluster name.
func (g *Gateway) Connect(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	node, err := g.lookup(req.Id)
	if err != nil {
		return nil, err
	}

	state := node.currentState()
	if err := rejectIfTransitional(state); err != nil {
		return nil, err
	}
	if state == stateConnected {
		return &tncpb.NodeAck{ConnectionState: string(stateConnected)}, nil
	}
	if state == stateDisconnected {
		return nil, status.Error(codes.Unavailable, "Raft node is currently Disconnected")
	}

	node.transition(stateConnecting)

	backing, err := store.Open(g.dataDir, node.id)
	if err != nil {
		node.transition(state)
		return nil, status.Errorf(codes.Internal, "open raft store: %v", err)
	}

	addr, transport := raft.NewInmemTransport(raft.ServerAddress(node.id))
	g.mu.Lock()
	for peerID, peerTransport := range g.transports {
		if peer, ok := g.nodes[peerID]; ok && peer.cluster == node.cluster {
			transport.Connect(raft.ServerAddress(peerID), peerTransport)
			peerTransport.Connect(addr, transport)
		}
	}
	g.transports[node.id] = transport
	g.mu.Unlock()

	cfg := raft.DefaultConfig()
	cfg.LocalID = raft.ServerID(node.id)
	cfg.Logger = nil

	raftInstance, err := raft.NewRaft(cfg, node.fsm, backing.Log, backing.Stable, backing.Snapshot, transport)
	if err != nil {
		node.transition(state)
		return nil, status.Errorf(codes.Internal, "start raft: %v", err)
	}
	node.raftNode = raftInstance
	node.backing = backing

	switch {
	case state == stateStopped:
		// The reopened store already holds this node's log and its
		// cluster membership, which Stop left in place.
	case node.shouldCreateCluster:
		fut := raftInstance.BootstrapCluster(raft.Configuration{
			Servers: []raft.Server{{ID: cfg.LocalID, Address: addr}},
		})
		if err := fut.Error(); err != nil {
			node.transition(stateCreated)
			return nil, status.Errorf(codes.Internal, "bootstrap cluster: %v", err)
		}
	default:
		leader := g.findClusterLeader(node.cluster, node.id)
		if leader == nil {
			node.transition(stateCreated)
			return nil, status.Error(codes.Unavailable, "no reachable leader for cluster")
		}
		fut := leader.raftNode.AddVoter(cfg.LocalID, addr, 0, joinTimeout)
		if err := fut.Error(); err != nil {
			node.transition(stateCreated)
			return nil, status.Errorf(codes.Unavailable, "join cluster: %v", err)
		}
	}

	node.transition(stateConnected)
	return &tncpb.NodeAck{ConnectionState: string(stateConnected)}, nil
}

func (g *Gateway) findClusterLeader(cluster, exceptID string) *RaftNode {
	g.mu.Lock()
	defer g.mu.Unlock()
	for id, n := range g.nodes {
		if id == exceptID || n.cluster != cluster {
			continue
		}
		if n.currentState() == stateConnected && n.isLeader() {
			return n
		}
	}
	return nil
}

// Disconnect removes the node from cluster membership and deletes its
// persisted state. It is terminal: the node can never be reconnected
// under this id again.
func (g *Gateway) Disconnect(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	node, err := g.lookup(req.Id)
	if err != nil {
		return nil, err
	}
	if err := rejectIfTransitional(node.currentState()); err != nil {
		return nil, err
	}

	node.transition(stateDisconnecting)

	if leader := g.findClusterLeader(node.cluster, ""); leader != nil && leader.id != node.id {
		_ = leader.raftNode.RemoveServer(raft.ServerID(node.id), 0, joinTimeout).Error()
	}
	if node.raftNode != nil {
		_ = node.raftNode.Shutdown().Error()
	}
	if node.backing != nil {
		_ = node.backing.Delete()
	}

	g.mu.Lock()
	delete(g.transports, node.id)
	g.mu.Unlock()

	node.transition(stateDisconnected)
	return &tncpb.NodeAck{ConnectionState: string(stateDisconnected)}, nil
}

// Stop leaves persisted state and cluster membership intact; the node
// can be reconnected later under the same id to rejoin with its
// replicated log.
func (g *Gateway) Stop(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.NodeAck, error) {
	node, err := g.lookup(req.Id)
	if err != nil {
		return nil, err
	}
	if err := rejectIfTransitional(node.currentState()); err != nil {
		return nil, err
	}

	node.transition(stateStopping)

	if node.raftNode != nil {
		_ = node.raftNode.Shutdown().Error()
	}
	if node.backing != nil {
		_ = node.backing.Close()
	}

	g.mu.Lock()
	delete(g.transports, node.id)
	g.mu.Unlock()

	node.transition(stateStopped)
	return &tncpb.NodeAck{ConnectionState: string(stateStopped)}, nil
}

func requireConnected(node *RaftNode) error {
	state := node.currentState()
	if err := rejectIfTransitional(state); err != nil {
		return err
	}
	if state != stateConnected {
		return status.Errorf(codes.Unavailable, "Raft node is currently %s", state)
	}
	return nil
}

func validateTaggedValue(v *tncpb.Value) error {
	set := 0
	if v.NullValue != nil {
		set++
	}
	if v.NumberValue != nil {
		set++
	}
	if v.StringValue != nil {
		set++
	}
	if v.BoolValue != nil {
		set++
	}
	if set != 1 {
		return status.Error(codes.Internal, "value is not a legal tagged value")
	}
	return nil
}

func classifyRaftError(err error) error {
	switch err {
	case raft.ErrNotLeader, raft.ErrLeadershipLost, raft.ErrLeadershipTransferInProgress:
		return status.Error(codes.Unavailable, "operation not supported in current connection state")
	case raft.ErrRaftShutdown:
		return status.Error(codes.Unavailable, "Raft node was disconnected before the operation completed")
	case raft.ErrEnqueueTimeout:
		return status.Error(codes.OutOfRange, "too many queued up input proposals")
	default:
		return status.Errorf(codes.Internal, "raft: %v", err)
	}
}

func (g *Gateway) propose(node *RaftNode, key string, value *tncpb.Value) (map[string]*tncpb.Value, error) {
	if err := requireConnected(node); err != nil {
		return nil, err
	}
	if value == nil {
		value = tncpb.NewNullValue()
	}
	if err := validateTaggedValue(value); err != nil {
		return nil, err
	}

	if !node.reserveProposalSlot() {
		return nil, status.Error(codes.OutOfRange, "too many queued up input proposals")
	}
	defer node.releaseProposalSlot()

	data, err := json.Marshal(logCommand{Key: key, Value: value})
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal proposal: %v", err)
	}

	// Only the leader accepts Apply; a proposal made through a follower
	// is applied on its cluster's leader in this process, and the state
	// committed there is returned.
	target := node
	if !node.isLeader() {
		if leader := g.findClusterLeader(node.cluster, node.id); leader != nil {
			target = leader
		}
	}

	fut := target.apply(data, applyTimeout)
	if err := fut.Error(); err != nil {
		return nil, classifyRaftError(err)
	}

	return target.fsm.Get(), nil
}

func (g *Gateway) Propose(ctx context.Context, req *tncpb.ProposeRequest) (*tncpb.StateResponse, error) {
	node, err := g.lookup(req.NodeId)
	if err != nil {
		return nil, err
	}
	state, err := g.propose(node, req.Key, req.Value)
	if err != nil {
		return nil, err
	}
	return &tncpb.StateResponse{NodeId: req.NodeId, State: state}, nil
}

// GetState proposes an internal no-op so the returned state is
// guaranteed to be at least as current as every proposal already
// accepted at the time of the call.
func (g *Gateway) GetState(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.StateResponse, error) {
	node, err := g.lookup(req.Id)
	if err != nil {
		return nil, err
	}
	state, err := g.propose(node, "", nil)
	if err != nil {
		return nil, err
	}
	return &tncpb.StateResponse{NodeId: req.Id, State: state}, nil
}

func (g *Gateway) ObserveState(ctx context.Context, req *tncpb.NodeRequest, send func(*tncpb.StateResponse) error) error {
	node, err := g.lookup(req.Id)
	if err != nil {
		return err
	}
	if err := requireConnected(node); err != nil {
		return err
	}

	changed, cancel := node.fsm.Subscribe()
	defer cancel()

	if err := send(&tncpb.StateResponse{NodeId: req.Id, State: node.fsm.Get()}); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changed:
			if node.currentState() != stateConnected {
				return nil
			}
			if err := send(&tncpb.StateResponse{NodeId: req.Id, State: node.fsm.Get()}); err != nil {
				return err
			}
		}
	}
}

func (g *Gateway) clusterConfiguration(node *RaftNode) ([]string, error) {
	if node.raftNode == nil {
		return nil, status.Error(codes.Unavailable, "Raft node is not connected")
	}
	fut := node.raftNode.GetConfiguration()
	if err := fut.Error(); err != nil {
		return nil, status.Errorf(codes.Internal, "raft: %v", err)
	}
	servers := fut.Configuration().Servers
	ids := make([]string, 0, len(servers))
	for _, s := range servers {
		ids = append(ids, string(s.ID))
	}
	return ids, nil
}

func (g *Gateway) GetClusterConfiguration(ctx context.Context, req *tncpb.NodeRequest) (*tncpb.ClusterConfigurationResponse, error) {
	node, err := g.lookup(req.Id)
	if err != nil {
		return nil, err
	}
	ids, err := g.clusterConfiguration(node)
	if err != nil {
		return nil, err
	}
	return &tncpb.ClusterConfigurationResponse{NodeId: req.Id, MemberIds: ids}, nil
}

const configurationPollInterval = 250 * time.Millisecond

func (g *Gateway) ObserveClusterConfiguration(ctx context.Context, req *tncpb.NodeRequest, send func(*tncpb.ClusterConfigurationResponse) error) error {
	node, err := g.lookup(req.Id)
	if err != nil {
		return err
	}

	var last string
	ticker := time.NewTicker(configurationPollInterval)
	defer ticker.Stop()

	for {
		ids, err := g.clusterConfiguration(node)
		if err == nil {
			key := memberKey(ids)
			if key != last {
				last = key
				if err := send(&tncpb.ClusterConfigurationResponse{NodeId: req.Id, MemberIds: ids}); err != nil {
					return err
				}
			}
		}
		if node.currentState() != stateConnected {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func memberKey(ids []string) string {
	data, _ := json.Marshal(ids)
	return string(data)
}

// ConnectedNodeCount reports how many nodes are currently Connected, for
// the per-agent Raft gauge exported over otel.
func (g *Gateway) ConnectedNodeCount() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	var n int64
	for _, node := range g.nodes {
		if node.currentState() == stateConnected {
			n++
		}
	}
	return n
}

// Shutdown disconnects every Connected node, best-effort and in
// parallel, leaving persisted state intact for other gateway instances
// that may share the data directory.
func (g *Gateway) Shutdown() {
	g.mu.Lock()
	nodes := make([]*RaftNode, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	g.mu.Unlock()

	var wg sync.WaitGroup
	for _, n := range nodes {
		if n.currentState() != stateConnected {
			continue
		}
		wg.Add(1)
		go func(n *RaftNode) {
			defer wg.Done()
			_ = n.raftNode.Shutdown().Error()
		}(n)
	}
	wg.Wait()
}

/*
Package store builds the on-disk log/stable/snapshot stack each Raft
node needs, one bolt database per node keyed by node id so that several
gateway processes sharing a data directory never collide, and so a
Stop'd node can be reconnected later against the same files.
*/
package store

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/raft"
	raftboltdb "github.com/hashicorp/raft-boltdb/v2"
)

const snapshotsToRetain = 2

// RaftStore bundles the three store interfaces hashicorp/raft needs
// plus enough bookkeeping to delete everything for one node later.
type RaftStore struct {
	Log      raft.LogStore
	Stable   raft.StableStore
	Snapshot raft.SnapshotStore

	boltPath    string
	snapshotDir string
	bolt        *raftboltdb.BoltStore
}

// Open creates (or reopens) the on-disk state for nodeID under dataDir.
func Open(dataDir, nodeID string) (*RaftStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	boltPath := filepath.Join(dataDir, nodeID+".raft.bolt")
	bolt, err := raftboltdb.NewBoltStore(boltPath)
	if err != nil {
		return nil, err
	}

	snapshotDir := filepath.Join(dataDir, nodeID+".raft.snapshots")
	if err := os.MkdirAll(snapshotDir, 0o755); err != nil {
		return nil, err
	}
	snaps, err := raft.NewFileSnapshotStore(snapshotDir, snapshotsToRetain, os.Stderr)
	if err != nil {
		return nil, err
	}

	return &RaftStore{
		Log:         bolt,
		Stable:      bolt,
		Snapshot:    snaps,
		boltPath:    boltPath,
		snapshotDir: snapshotDir,
		bolt:        bolt,
	}, nil
}

// Close releases the open bolt handle without deleting any files, used
// on Stop where the node may be reconnected later against the same log.
func (s *RaftStore) Close() error {
	return s.bolt.Close()
}

// Delete closes and permanently removes every file backing this node,
// used on Disconnect where the node is leaving for good.
func (s *RaftStore) Delete() error {
	_ = s.bolt.Close()
	if err := os.Remove(s.boltPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.RemoveAll(s.snapshotDir)
}

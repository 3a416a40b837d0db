package consensus

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func mustCreateAndConnect(t *testing.T, gw *Gateway, cluster string, bootstrap bool) string {
	t.Helper()
	ctx := context.Background()
	created, err := gw.Create(ctx, &tncpb.CreateNodeRequest{Cluster: cluster, ShouldCreateCluster: bootstrap})
	require.NoError(t, err)

	ack, err := gw.Connect(ctx, &tncpb.NodeRequest{Id: created.Id})
	require.NoError(t, err)
	require.Equal(t, "Connected", ack.ConnectionState)
	return created.Id
}

// TestThreeNodeReplicatedState exercises a proposal made against the
// bootstrap node becoming visible on two nodes that joined afterward.
func TestThreeNodeReplicatedState(t *testing.T) {
	dir := t.TempDir()
	gw := New(dir, discardLogger())

	a := mustCreateAndConnect(t, gw, "cluster-1", true)
	waitForLeader(t, gw, a)
	b := mustCreateAndConnect(t, gw, "cluster-1", false)
	c := mustCreateAndConnect(t, gw, "cluster-1", false)

	ctx := context.Background()
	_, err := gw.Propose(ctx, &tncpb.ProposeRequest{NodeId: a, Key: "foo", Value: tncpb.NewNumberValue(42)})
	require.NoError(t, err)

	for _, id := range []string{b, c} {
		assert.Eventually(t, func() bool {
			resp, err := gw.GetState(ctx, &tncpb.NodeRequest{Id: id})
			if err != nil {
				return false
			}
			v, ok := resp.State["foo"]
			return ok && v.Native() == float64(42)
		}, 2*time.Second, 20*time.Millisecond)
	}
}

func waitForLeader(t *testing.T, gw *Gateway, id string) {
	t.Helper()
	node, err := gw.lookup(id)
	require.NoError(t, err)
	assert.Eventually(t, node.isLeader, time.Second, 10*time.Millisecond)
}

func TestProposeEmptyValueBecomesNull(t *testing.T) {
	dir := t.TempDir()
	gw := New(dir, discardLogger())
	id := mustCreateAndConnect(t, gw, "cluster-2", true)
	waitForLeader(t, gw, id)

	ctx := context.Background()
	resp, err := gw.Propose(ctx, &tncpb.ProposeRequest{NodeId: id, Key: "k", Value: nil})
	require.NoError(t, err)

	v := resp.State["k"]
	require.NotNil(t, v.NullValue)
}

func TestProposeInvalidTaggedValueIsInternal(t *testing.T) {
	dir := t.TempDir()
	gw := New(dir, discardLogger())
	id := mustCreateAndConnect(t, gw, "cluster-3", true)
	waitForLeader(t, gw, id)

	ctx := context.Background()
	_, err := gw.Propose(ctx, &tncpb.ProposeRequest{NodeId: id, Key: "k", Value: &tncpb.Value{}})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestOperationOnUnknownNodeIsInvalidArgument(t *testing.T) {
	dir := t.TempDir()
	gw := New(dir, discardLogger())

	_, err := gw.Connect(context.Background(), &tncpb.NodeRequest{Id: "does-not-exist"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestProposeBeforeConnectIsUnavailable(t *testing.T) {
	dir := t.TempDir()
	gw := New(dir, discardLogger())

	created, err := gw.Create(context.Background(), &tncpb.CreateNodeRequest{Cluster: "cluster-4", ShouldCreateCluster: true})
	require.NoError(t, err)

	_, err = gw.Propose(context.Background(), &tncpb.ProposeRequest{NodeId: created.Id, Key: "k", Value: tncpb.NewBoolValue(true)})
	require.Error(t, err)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

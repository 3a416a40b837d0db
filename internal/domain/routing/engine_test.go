package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

func TestPushFanOut(t *testing.T) {
	e := NewEngine()
	r1 := e.RegisterPush("flowpro.icc.ftf.FtfStatus")
	r2 := e.RegisterPush("flowpro.icc.ftf.FtfStatus")

	count := e.Push("flowpro.icc.ftf.FtfStatus", &tncpb.Any{TypeUrl: "x", Value: []byte("1")})
	assert.Equal(t, uint32(2), count)
	assert.Len(t, r1.mailbox, 1)
	assert.Len(t, r2.mailbox, 1)

	e.DeregisterPush(r1)
	count = e.Push("flowpro.icc.ftf.FtfStatus", &tncpb.Any{TypeUrl: "x", Value: []byte("2")})
	assert.Equal(t, uint32(1), count)

	e.DeregisterPush(r2)
	count = e.Push("flowpro.icc.ftf.FtfStatus", &tncpb.Any{TypeUrl: "x", Value: []byte("3")})
	assert.Equal(t, uint32(0), count)
	assert.Empty(t, e.pushTable)
}

func TestRequestDispatchNextPolicyRoundRobin(t *testing.T) {
	e := NewEngine()
	r0, err := e.RegisterRequest("flowpro.icc.ftf.Add", tncpb.DispatchPolicy_NEXT)
	require.NoError(t, err)
	r1, err := e.RegisterRequest("flowpro.icc.ftf.Add", tncpb.DispatchPolicy_NEXT)
	require.NoError(t, err)

	reply, err := e.Request("flowpro.icc.ftf.Add", nil)
	require.NoError(t, err)
	ev := <-r0.mailbox
	assert.Equal(t, uint32(1), ev.RequestId)
	_, err = e.Respond("flowpro.icc.ftf.Add", ev.RequestId, &tncpb.Any{TypeUrl: "x", Value: []byte("44")})
	require.NoError(t, err)
	out := <-reply
	require.NoError(t, out.Err)

	reply, err = e.Request("flowpro.icc.ftf.Add", nil)
	require.NoError(t, err)
	ev = <-r1.mailbox
	_, err = e.Respond("flowpro.icc.ftf.Add", ev.RequestId, nil)
	require.NoError(t, err)
	<-reply

	reply, err = e.Request("flowpro.icc.ftf.Add", nil)
	require.NoError(t, err)
	ev = <-r0.mailbox
	_, err = e.Respond("flowpro.icc.ftf.Add", ev.RequestId, nil)
	require.NoError(t, err)
	<-reply
}

func TestConflictingPolicyRejected(t *testing.T) {
	e := NewEngine()
	_, err := e.RegisterRequest("route", tncpb.DispatchPolicy_SINGLE)
	require.NoError(t, err)

	_, err = e.RegisterRequest("route", tncpb.DispatchPolicy_SINGLE)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	e2 := NewEngine()
	_, err = e2.RegisterRequest("route2", tncpb.DispatchPolicy_FIRST)
	require.NoError(t, err)
	_, err = e2.RegisterRequest("route2", tncpb.DispatchPolicy_LAST)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRequestCancellationCascades(t *testing.T) {
	e := NewEngine()
	reg, err := e.RegisterRequest("route", tncpb.DispatchPolicy_SINGLE)
	require.NoError(t, err)

	reply, err := e.Request("route", nil)
	require.NoError(t, err)
	ev := <-reg.mailbox

	e.DeregisterRequest(reg)

	out := <-reply
	require.Error(t, out.Err)
	assert.Equal(t, codes.Cancelled, status.Code(out.Err))

	_, err = e.Respond("route", ev.RequestId, nil)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestRespondUnknownPendingRequestIsInvalidArgument(t *testing.T) {
	e := NewEngine()
	_, err := e.Respond("route", 7, nil)
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

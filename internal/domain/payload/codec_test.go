package payload

import (
	"testing"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cases := []*tncpb.Any{
		{TypeUrl: "tnc.v1.Message", Value: []byte("hello world")},
		{TypeUrl: "tnc.v1.Empty", Value: []byte{}},
		{TypeUrl: "tnc.v1.Binary", Value: []byte{0x00, 0xff, 0x10, 0x7f}},
	}

	for _, want := range cases {
		busObj := ToBus(want)
		require.NotNil(t, busObj)
		assert.Equal(t, want.TypeUrl, busObj.ObjectType)

		got, err := FromBus(busObj)
		require.NoError(t, err)
		assert.Equal(t, want.TypeUrl, got.TypeUrl)
		assert.Equal(t, want.Value, got.Value)
	}
}

func TestToBusWithSourceStampsSourceId(t *testing.T) {
	obj := ToBusWithSource(&tncpb.Any{TypeUrl: "x", Value: []byte("y")}, "agent-1")
	assert.Equal(t, "agent-1", obj.SourceId)
}

func TestFromBusNilIsNil(t *testing.T) {
	v, err := FromBus(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestFromBusInvalidBase64Errors(t *testing.T) {
	_, err := FromBus(&BusObject{ObjectType: "x", Value: "not-base64!!"})
	assert.Error(t, err)
}

// Package payload mediates between the wire shape of an opaque typed
// payload (as seen on the gRPC surface) and the shape it must take to
// cross the JSON-object-oriented message bus.
package payload

import (
	"encoding/base64"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

// BusObject is the representation a payload takes once it is about to
// be published on the bus: the type URL renamed to objectType, the raw
// bytes base64-encoded, and an optional sourceId stamped by the caller.
type BusObject struct {
	ObjectType string `json:"objectType"`
	Value      string `json:"value"`
	SourceId   string `json:"sourceId,omitempty"`
}

// ToBus converts a wire Any into its bus representation. The payload
// body is never inspected, only base64-encoded.
func ToBus(any *tncpb.Any) *BusObject {
	if any == nil {
		return nil
	}
	return &BusObject{
		ObjectType: any.TypeUrl,
		Value:      base64.StdEncoding.EncodeToString(any.Value),
	}
}

// ToBusWithSource is ToBus plus a sourceId stamp, used when publishing
// on behalf of a known local agent.
func ToBusWithSource(any *tncpb.Any, sourceId string) *BusObject {
	obj := ToBus(any)
	if obj == nil {
		return nil
	}
	obj.SourceId = sourceId
	return obj
}

// FromBus is the inverse of ToBus. An invalid base64 body yields an
// error rather than silently truncating the payload.
func FromBus(obj *BusObject) (*tncpb.Any, error) {
	if obj == nil {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(obj.Value)
	if err != nil {
		return nil, err
	}
	return &tncpb.Any{
		TypeUrl: obj.ObjectType,
		Value:   raw,
	}, nil
}

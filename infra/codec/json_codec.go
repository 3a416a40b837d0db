// Package codec supplies the gRPC wire codec used by every service in
// this module. The corpus this gateway was assembled from ships .proto
// files as a contract description, not as a build step: there is no
// protoc invocation in this repository's toolchain, so messages travel
// as plain JSON rather than the binary protobuf wire format.
//
// Both client and server must opt in explicitly via grpc.ForceCodec /
// grpc.ForceServerCodec; relying on package-init order to overwrite the
// "proto" codec name in grpc's global registry would be fragile and a
// silent failure if some other package registered first.
package codec

import "encoding/json"

// Name is the codec identifier advertised on the wire. It intentionally
// does not collide with "proto" or "json" so a misconfigured peer fails
// fast with a clear "unsupported codec" error instead of silently
// misinterpreting bytes.
const Name = "tncjson"

// JSON implements google.golang.org/grpc/encoding.Codec using the
// standard library json package. Every tnc message type is a plain
// struct, so this is a direct encoding/json round trip with no
// reflection surprises.
type JSON struct{}

func New() *JSON { return &JSON{} }

func (JSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (JSON) Name() string {
	return Name
}

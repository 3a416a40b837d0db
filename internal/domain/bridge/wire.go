package bridge

import "github.com/flowpro/tnc-gateway/internal/domain/payload"

// channelMessage is the JSON body published on a channel topic.
type channelMessage struct {
	Payload  *payload.BusObject `json:"payload"`
	SourceId string             `json:"sourceId,omitempty"`
}

// callMessage is the JSON body published on a call topic. CorrelationId
// here is the bus-internal correlation the responder must echo back on
// the matching return/complete topics; it is never exposed to gRPC
// callers, who see only the locally allocated correlation id.
type callMessage struct {
	CorrelationId string             `json:"correlationId"`
	Payload       *payload.BusObject `json:"payload"`
	SourceId      string             `json:"sourceId,omitempty"`
}

// returnMessage is the JSON body published on a return topic.
type returnMessage struct {
	Payload      *payload.BusObject `json:"payload,omitempty"`
	IsError      bool               `json:"isError,omitempty"`
	ErrorMessage string             `json:"errorMessage,omitempty"`
}

// completeMessage is the JSON body published on a complete topic. It
// carries no data; its presence on the topic is the signal.
type completeMessage struct{}

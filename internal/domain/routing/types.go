/*
Package routing implements the Local Routing Engine: an in-process
dispatcher that lets one stream register interest in a route (push or
request) and lets another call push or request events onto it.

Each registration owns a small mailbox channel, the same decoupling
idea used elsewhere in this codebase for per-connection delivery: the
engine enqueues and returns immediately, and the stream's own goroutine
drains its mailbox at its own pace. This keeps a slow or stuck gRPC
stream from blocking unrelated routes.
*/
package routing

import (
	"github.com/google/uuid"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

// mailboxSize bounds how many undelivered events a single registration
// may queue before the engine starts dropping the oldest.
const mailboxSize = 256

// PushRegistration is a live subscriber of a push route.
type PushRegistration struct {
	ID    uuid.UUID
	Route string

	mailbox chan *tncpb.PushEvent
}

// Recv exposes the registration's mailbox to the owning stream handler.
func (r *PushRegistration) Recv() <-chan *tncpb.PushEvent {
	return r.mailbox
}

func newPushRegistration(route string) *PushRegistration {
	return &PushRegistration{
		ID:      uuid.New(),
		Route:   route,
		mailbox: make(chan *tncpb.PushEvent, mailboxSize),
	}
}

// enqueue writes ev without blocking; if the mailbox is saturated the
// oldest pending event is dropped to make room for the newest one.
func (r *PushRegistration) enqueue(ev *tncpb.PushEvent) {
	select {
	case r.mailbox <- ev:
		return
	default:
	}
	select {
	case <-r.mailbox:
	default:
	}
	select {
	case r.mailbox <- ev:
	default:
	}
}

// RequestRegistration is a live responder of a request route.
type RequestRegistration struct {
	ID    uuid.UUID
	Route string

	mailbox chan *tncpb.RequestEvent
}

func (r *RequestRegistration) Recv() <-chan *tncpb.RequestEvent {
	return r.mailbox
}

func newRequestRegistration(route string) *RequestRegistration {
	return &RequestRegistration{
		ID:      uuid.New(),
		Route:   route,
		mailbox: make(chan *tncpb.RequestEvent, mailboxSize),
	}
}

func (r *RequestRegistration) enqueue(ev *tncpb.RequestEvent) {
	select {
	case r.mailbox <- ev:
		return
	default:
	}
	select {
	case <-r.mailbox:
	default:
	}
	select {
	case r.mailbox <- ev:
	default:
	}
}

// requestGroup holds every live registration sharing one request route
// plus the dispatch policy they agreed on at first registration.
type requestGroup struct {
	policy        tncpb.DispatchPolicy
	registrations []*RequestRegistration
	cursor        int
	nextRequestID uint32
}

type pendingKey struct {
	route     string
	requestID uint32
}

// pendingRequest tracks one in-flight request() call awaiting a respond().
type pendingRequest struct {
	route              string
	requestID          uint32
	chosenRegistration uuid.UUID
	reply              chan requestOutcome
	cancelled          bool
}

// requestOutcome is delivered exactly once on the channel Engine.Request
// returns. Fields are exported so the gRPC handler layer, which lives in
// a different package, can read the result without Engine needing to
// translate it into a wire type itself.
type requestOutcome struct {
	Payload *tncpb.Any
	Err     error
}

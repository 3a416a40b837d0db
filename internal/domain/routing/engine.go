package routing

import (
	"math/rand"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/flowpro/tnc-gateway/gen/go/tncpb"
)

// Engine is the Local Routing Engine described by the gateway's routing
// surface: two tables (push, request) plus a pending-request index
// keyed by (route, requestId). All three are protected by one mutex;
// contention is expected to be low since handlers hold it only to
// mutate slices and maps, never while blocked on network I/O.
type Engine struct {
	mu sync.Mutex

	pushTable    map[string][]*PushRegistration
	requestTable map[string]*requestGroup
	pending      map[pendingKey]*pendingRequest
}

func NewEngine() *Engine {
	return &Engine{
		pushTable:    make(map[string][]*PushRegistration),
		requestTable: make(map[string]*requestGroup),
		pending:      make(map[pendingKey]*pendingRequest),
	}
}

// RegisterPush appends a new registration to route's push table.
func (e *Engine) RegisterPush(route string) *PushRegistration {
	reg := newPushRegistration(route)

	e.mu.Lock()
	e.pushTable[route] = append(e.pushTable[route], reg)
	e.mu.Unlock()

	return reg
}

// DeregisterPush removes a registration and prunes the route entry
// once its list is empty.
func (e *Engine) DeregisterPush(reg *PushRegistration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	list := e.pushTable[reg.Route]
	for i, r := range list {
		if r.ID == reg.ID {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}
	if len(list) == 0 {
		delete(e.pushTable, reg.Route)
	} else {
		e.pushTable[reg.Route] = list
	}
}

// Push delivers ev to every live registration on the route, in
// registration order, and reports how many received it.
func (e *Engine) Push(route string, payload *tncpb.Any) uint32 {
	e.mu.Lock()
	list := append([]*PushRegistration(nil), e.pushTable[route]...)
	e.mu.Unlock()

	ev := &tncpb.PushEvent{Route: route, Payload: payload}
	for _, reg := range list {
		reg.enqueue(ev)
	}
	return uint32(len(list))
}

// RegisterRequest adds reg to route's request group, creating the
// group with the given policy if it does not exist, or validating
// policy compatibility against the existing group.
func (e *Engine) RegisterRequest(route string, policy tncpb.DispatchPolicy) (*RequestRegistration, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	group, ok := e.requestTable[route]
	if !ok {
		group = &requestGroup{policy: policy}
		e.requestTable[route] = group
	} else {
		if group.policy == tncpb.DispatchPolicy_SINGLE {
			return nil, status.Error(codes.InvalidArgument, "request route already has a SINGLE registration")
		}
		if group.policy != policy {
			return nil, status.Errorf(codes.InvalidArgument, "request route registered with policy %s, cannot add %s", group.policy, policy)
		}
	}

	reg := newRequestRegistration(route)
	group.registrations = append(group.registrations, reg)
	return reg, nil
}

// DeregisterRequest removes reg from its group, cancels every pending
// request that had chosen it, and prunes the group if it is now empty.
func (e *Engine) DeregisterRequest(reg *RequestRegistration) {
	e.mu.Lock()

	group, ok := e.requestTable[reg.Route]
	if !ok {
		e.mu.Unlock()
		return
	}

	for i, r := range group.registrations {
		if r.ID == reg.ID {
			group.registrations = append(group.registrations[:i], group.registrations[i+1:]...)
			break
		}
	}
	if group.cursor >= len(group.registrations) && len(group.registrations) > 0 {
		group.cursor = group.cursor % len(group.registrations)
	}
	if len(group.registrations) == 0 {
		delete(e.requestTable, reg.Route)
	}

	var toCancel []*pendingRequest
	for key, p := range e.pending {
		if key.route == reg.Route && p.chosenRegistration == reg.ID {
			p.cancelled = true
			toCancel = append(toCancel, p)
			delete(e.pending, key)
		}
	}
	e.mu.Unlock()

	for _, p := range toCancel {
		p.reply <- requestOutcome{Err: status.Error(codes.Cancelled, "Correlated registration deregistered before response")}
	}
}

// Request picks a registration per the group's policy, records a
// pendingRequest and delivers the augmented event. The returned
// channel receives exactly one requestOutcome.
func (e *Engine) Request(route string, payload *tncpb.Any) (chan requestOutcome, error) {
	e.mu.Lock()

	group, ok := e.requestTable[route]
	if !ok || len(group.registrations) == 0 {
		e.mu.Unlock()
		return nil, status.Error(codes.Unavailable, "No registration available")
	}

	reg := selectRegistration(group)
	requestID := nextRequestID(group)

	reply := make(chan requestOutcome, 1)
	p := &pendingRequest{
		route:              route,
		requestID:          requestID,
		chosenRegistration: reg.ID,
		reply:              reply,
	}
	e.pending[pendingKey{route: route, requestID: requestID}] = p
	e.mu.Unlock()

	reg.enqueue(&tncpb.RequestEvent{Route: route, RequestId: requestID, Payload: payload})
	return reply, nil
}

// Respond completes the pendingRequest addressed by (route, requestId).
func (e *Engine) Respond(route string, requestID uint32, payload *tncpb.Any) (uint32, error) {
	e.mu.Lock()
	key := pendingKey{route: route, requestID: requestID}
	p, ok := e.pending[key]
	if ok {
		delete(e.pending, key)
	}
	e.mu.Unlock()

	if !ok {
		return 0, status.Error(codes.InvalidArgument, "Response event discarded as no correlated registration exists")
	}
	if p.cancelled {
		return 0, nil
	}

	p.reply <- requestOutcome{Payload: payload}
	return 1, nil
}

func selectRegistration(group *requestGroup) *RequestRegistration {
	n := len(group.registrations)
	switch group.policy {
	case tncpb.DispatchPolicy_LAST:
		return group.registrations[n-1]
	case tncpb.DispatchPolicy_NEXT:
		reg := group.registrations[group.cursor%n]
		group.cursor = (group.cursor + 1) % n
		return reg
	case tncpb.DispatchPolicy_RANDOM:
		return group.registrations[rand.Intn(n)]
	default: // SINGLE, FIRST, UNSPECIFIED
		return group.registrations[0]
	}
}

func nextRequestID(group *requestGroup) uint32 {
	group.nextRequestID++
	if group.nextRequestID == 0 {
		group.nextRequestID = 1
	}
	return group.nextRequestID
}

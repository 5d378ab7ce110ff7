package realtime

import (
	"sync"
)

// Router coordinates websocket connections and named broadcast channels
// (one per group, one for the community). It keeps the per-channel fan-out
// lists in sync with hub membership: Subscribe/Unsubscribe are driven by the
// join/leave operations, and Detach clears every subscription a connection
// held. Delivery is best-effort; a failed Send does not affect other
// recipients.
type Router struct {
	mu            sync.RWMutex
	conns         map[string]*Connection            // connectionID -> connection
	channels      map[string]map[string]*Connection // channel -> connectionID -> connection
	subscriptions map[string]map[string]struct{}    // connectionID -> set of channels
}

// NewRouter constructs an initialized Router.
func NewRouter() *Router {
	return &Router{
		conns:         make(map[string]*Connection),
		channels:      make(map[string]map[string]*Connection),
		subscriptions: make(map[string]map[string]struct{}),
	}
}

// Attach registers a connection and starts its write loop.
func (r *Router) Attach(conn *Connection) {
	r.mu.Lock()
	r.conns[conn.ID] = conn
	r.subscriptions[conn.ID] = make(map[string]struct{})
	r.mu.Unlock()

	conn.Start()
}

// Detach removes a connection and all its channel subscriptions.
func (r *Router) Detach(conn *Connection) {
	r.mu.Lock()
	r.detachLocked(conn.ID)
	r.mu.Unlock()
}

// Subscribe adds the connection to the channel's fan-out list. Idempotent;
// a no-op for detached connections.
func (r *Router) Subscribe(channel, connectionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	conn, ok := r.conns[connectionID]
	if !ok {
		return
	}

	members := r.channels[channel]
	if members == nil {
		members = make(map[string]*Connection)
		r.channels[channel] = members
	}
	members[connectionID] = conn

	subs := r.subscriptions[connectionID]
	if subs == nil {
		subs = make(map[string]struct{})
		r.subscriptions[connectionID] = subs
	}
	subs[channel] = struct{}{}
}

// Unsubscribe removes the connection from the channel's fan-out list.
func (r *Router) Unsubscribe(channel, connectionID string) {
	r.mu.Lock()
	r.unsubscribeLocked(channel, connectionID)
	r.mu.Unlock()
}

// Send delivers payload to one connection and reports whether the connection
// is attached and accepted the payload.
func (r *Router) Send(connectionID string, payload []byte) bool {
	r.mu.RLock()
	conn := r.conns[connectionID]
	r.mu.RUnlock()
	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}

// Broadcast writes payload to every subscriber of the channel and returns
// the number of successful deliveries.
func (r *Router) Broadcast(channel string, payload []byte) int {
	r.mu.RLock()
	members := r.channels[channel]
	if len(members) == 0 {
		r.mu.RUnlock()
		return 0
	}

	delivered := 0
	for _, conn := range members {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	r.mu.RUnlock()
	return delivered
}

// BroadcastAll writes payload to every attached connection and returns the
// number of successful deliveries.
func (r *Router) BroadcastAll(payload []byte) int {
	r.mu.RLock()
	delivered := 0
	for _, conn := range r.conns {
		if err := conn.Send(payload); err == nil {
			delivered++
		}
	}
	r.mu.RUnlock()
	return delivered
}

// Close terminates all tracked connections and clears router state.
func (r *Router) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		conns = append(conns, conn)
	}
	r.conns = make(map[string]*Connection)
	r.channels = make(map[string]map[string]*Connection)
	r.subscriptions = make(map[string]map[string]struct{})
	r.mu.Unlock()

	for _, conn := range conns {
		conn.Close(1001, "router shutdown")
	}
}

func (r *Router) detachLocked(connectionID string) {
	if _, ok := r.conns[connectionID]; !ok {
		return
	}
	delete(r.conns, connectionID)

	for channel := range r.subscriptions[connectionID] {
		r.unsubscribeLocked(channel, connectionID)
	}
	delete(r.subscriptions, connectionID)
}

func (r *Router) unsubscribeLocked(channel, connectionID string) {
	members := r.channels[channel]
	if members == nil {
		return
	}
	delete(members, connectionID)
	if len(members) == 0 {
		delete(r.channels, channel)
	}
	if subs, ok := r.subscriptions[connectionID]; ok {
		delete(subs, channel)
	}
}

package adapter

import (
	"sync"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// Memory is the in-process Store adapter. All state is process-lifetime.
//
// Locking: mu guards the participant registry, the community record, and the
// group index; each group carries its own lock covering its membership set
// and message log together, so sends to different groups proceed in parallel
// while a send and a join on the same group serialize.
//
// Lock order: mu is never held while taking a group lock. A group lock may
// take mu (read) to re-check registration.
type Memory struct {
	mu           sync.RWMutex
	participants map[string]hub.Participant
	groups       map[string]*groupEntry
	groupOrder   []string
	community    map[string]struct{}
	communityLog []hub.Message
}

type groupEntry struct {
	mu    sync.Mutex
	group hub.Group
	log   []hub.Message
}

// NewMemory constructs an empty store.
func NewMemory() *Memory {
	return &Memory{
		participants: make(map[string]hub.Participant),
		groups:       make(map[string]*groupEntry),
		community:    make(map[string]struct{}),
	}
}

// Ensure interface compliance at compile time
var _ port.Store = (*Memory)(nil)

func (m *Memory) SaveParticipant(p hub.Participant) {
	m.mu.Lock()
	m.participants[p.ID] = p
	m.mu.Unlock()
}

func (m *Memory) Participant(connectionID string) (hub.Participant, bool) {
	m.mu.RLock()
	p, ok := m.participants[connectionID]
	m.mu.RUnlock()
	return p, ok
}

func (m *Memory) UpdateParticipant(connectionID string, update hub.ProfileUpdate) (hub.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[connectionID]
	if !ok {
		return hub.Participant{}, hub.ErrNotRegistered
	}
	p.Apply(update)
	m.participants[connectionID] = p
	return p, nil
}

func (m *Memory) Participants() []hub.Participant {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]hub.Participant, 0, len(m.participants))
	for _, p := range m.participants {
		out = append(out, p)
	}
	return out
}

func (m *Memory) CreateGroup(g hub.Group) {
	m.mu.Lock()
	m.groups[g.ID] = &groupEntry{group: g}
	m.groupOrder = append(m.groupOrder, g.ID)
	m.mu.Unlock()
}

func (m *Memory) Group(groupID string) (hub.Group, bool) {
	e := m.entry(groupID)
	if e == nil {
		return hub.Group{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return snapshotGroup(e.group), true
}

// Groups returns all groups in creation order, restricted ones included:
// groups are discoverable, membership is what is access-controlled.
func (m *Memory) Groups() []hub.Group {
	m.mu.RLock()
	entries := make([]*groupEntry, 0, len(m.groupOrder))
	for _, id := range m.groupOrder {
		entries = append(entries, m.groups[id])
	}
	m.mu.RUnlock()

	out := make([]hub.Group, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		out = append(out, snapshotGroup(e.group))
		e.mu.Unlock()
	}
	return out
}

func (m *Memory) JoinGroup(groupID, connectionID, secret string) (port.JoinGroupResult, error) {
	e := m.entry(groupID)
	if e == nil {
		return port.JoinGroupResult{}, hub.ErrGroupNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.group.Restricted && secret != e.group.Secret {
		return port.JoinGroupResult{}, hub.ErrAccessDenied
	}
	// Re-check registration under the group lock: the reconciler removes the
	// participant record before sweeping groups, so a join racing a
	// disconnect cannot leave residual membership.
	if !m.registered(connectionID) {
		return port.JoinGroupResult{}, hub.ErrNotRegistered
	}
	already := !e.group.AddMember(connectionID)
	return port.JoinGroupResult{
		Group:         snapshotGroup(e.group),
		History:       append([]hub.Message(nil), e.log...),
		AlreadyMember: already,
	}, nil
}

// LeaveGroup is a no-op (not an error) for unknown groups and non-members.
func (m *Memory) LeaveGroup(groupID, connectionID string) (int, bool) {
	e := m.entry(groupID)
	if e == nil {
		return 0, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.group.RemoveMember(connectionID) {
		return len(e.group.Members), false
	}
	return len(e.group.Members), true
}

func (m *Memory) AppendGroupMessage(msg hub.Message) ([]string, error) {
	e := m.entry(msg.GroupID)
	if e == nil {
		return nil, hub.ErrGroupNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.group.HasMember(msg.Sender.ID) {
		return nil, hub.ErrNotAMember
	}
	e.log = append(e.log, msg)
	return append([]string(nil), e.group.Members...), nil
}

func (m *Memory) JoinCommunity(connectionID string) ([]hub.Message, bool, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, already := m.community[connectionID]
	if !already {
		m.community[connectionID] = struct{}{}
	}
	return append([]hub.Message(nil), m.communityLog...), already, len(m.community)
}

func (m *Memory) LeaveCommunity(connectionID string) (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.community[connectionID]; !ok {
		return len(m.community), false
	}
	delete(m.community, connectionID)
	return len(m.community), true
}

func (m *Memory) AppendCommunityMessage(msg hub.Message) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.communityLog = append(m.communityLog, msg)
	members := make([]string, 0, len(m.community))
	for id := range m.community {
		members = append(members, id)
	}
	return members
}

func (m *Memory) Disconnect(connectionID string) (port.DisconnectResult, bool) {
	m.mu.Lock()
	p, ok := m.participants[connectionID]
	if !ok {
		m.mu.Unlock()
		return port.DisconnectResult{}, false
	}
	delete(m.participants, connectionID)
	_, inCommunity := m.community[connectionID]
	delete(m.community, connectionID)
	communityRemaining := len(m.community)
	entries := make([]*groupEntry, 0, len(m.groupOrder))
	for _, id := range m.groupOrder {
		entries = append(entries, m.groups[id])
	}
	m.mu.Unlock()

	res := port.DisconnectResult{
		Participant:        p,
		LeftCommunity:      inCommunity,
		CommunityRemaining: communityRemaining,
	}
	for _, e := range entries {
		e.mu.Lock()
		if e.group.RemoveMember(connectionID) {
			res.Evictions = append(res.Evictions, port.GroupEviction{
				GroupID:   e.group.ID,
				Remaining: len(e.group.Members),
			})
		}
		e.mu.Unlock()
	}
	return res, true
}

func (m *Memory) entry(groupID string) *groupEntry {
	m.mu.RLock()
	e := m.groups[groupID]
	m.mu.RUnlock()
	return e
}

func (m *Memory) registered(connectionID string) bool {
	m.mu.RLock()
	_, ok := m.participants[connectionID]
	m.mu.RUnlock()
	return ok
}

func snapshotGroup(g hub.Group) hub.Group {
	g.Members = append([]string(nil), g.Members...)
	return g
}

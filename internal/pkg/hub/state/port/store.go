package port

import (
	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
)

// GroupEviction records one group a disconnecting connection was removed from.
type GroupEviction struct {
	GroupID   string
	Remaining int
}

// JoinGroupResult is the state observed by a successful (or idempotent) join:
// a snapshot of the group after the join and a copy of its message log.
type JoinGroupResult struct {
	Group         hub.Group
	History       []hub.Message
	AlreadyMember bool
}

// DisconnectResult describes everything a disconnect removed, so the caller
// can notify the remaining audience for each channel.
type DisconnectResult struct {
	Participant        hub.Participant
	Evictions          []GroupEviction
	LeftCommunity      bool
	CommunityRemaining int
}

// Store owns all hub state: the participant registry, group records with
// their membership sets and message logs, and the community channel.
// Implementations must be safe for concurrent use and must keep each group's
// membership and log consistent with respect to concurrent sends and joins.
// Composite operations (JoinGroup, AppendGroupMessage, Disconnect) exist so
// validation and mutation happen under the same exclusive section.
type Store interface {
	// Registry.
	SaveParticipant(p hub.Participant)
	Participant(connectionID string) (hub.Participant, bool)
	UpdateParticipant(connectionID string, update hub.ProfileUpdate) (hub.Participant, error)
	Participants() []hub.Participant

	// Groups. JoinGroup checks the access secret and the sender's
	// registration under the group's lock; AppendGroupMessage checks
	// membership the same way and returns the member set observed at append
	// time. Neither ever returns a stale membership snapshot.
	CreateGroup(g hub.Group)
	Group(groupID string) (hub.Group, bool)
	Groups() []hub.Group
	JoinGroup(groupID, connectionID, secret string) (JoinGroupResult, error)
	LeaveGroup(groupID, connectionID string) (remaining int, removed bool)
	AppendGroupMessage(m hub.Message) (members []string, err error)

	// Community.
	JoinCommunity(connectionID string) (history []hub.Message, already bool, total int)
	LeaveCommunity(connectionID string) (remaining int, removed bool)
	AppendCommunityMessage(m hub.Message) (members []string)

	// Disconnect removes the participant and evicts the connection from
	// every group and the community. Idempotent: reports false when the
	// connection was never registered.
	Disconnect(connectionID string) (DisconnectResult, bool)
}

// Package event defines the outbound frames the hub delivers over the
// transport. Every frame is a flat JSON object with a "type" discriminator.
package event

import (
	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
)

// Outbound frame types.
const (
	TypeConnected             = "connected"
	TypePresenceList          = "presence-list"
	TypeProfileUpdated        = "profile-updated"
	TypePersonalMessage       = "personal-message"
	TypePersonalMessageSent   = "personal-message-sent"
	TypeGroupCreated          = "group-created"
	TypeGroupsList            = "groups-list"
	TypeGroupMemberJoined     = "group-member-joined"
	TypeGroupMemberLeft       = "group-member-left"
	TypeGroupMessage          = "group-message"
	TypeGroupMessageHistory   = "group-message-history"
	TypeCommunityMemberJoined = "community-member-joined"
	TypeCommunityMemberLeft   = "community-member-left"
	TypeCommunityMessage      = "community-message"
	TypeCommunityHistory      = "community-message-history"
	TypeTyping                = "typing"
	TypeError                 = "error"
)

// Connected tells a freshly attached client its transport-assigned id.
type Connected struct {
	Type         string `json:"type"`
	ConnectionID string `json:"connectionId"`
}

// PresenceList is the full participant snapshot; clients reconcile locally,
// there is no incremental-diff protocol.
type PresenceList struct {
	Type         string            `json:"type"`
	Participants []hub.Participant `json:"participants"`
}

// ProfileUpdated is the targeted confirmation after an update-profile.
type ProfileUpdated struct {
	Type        string          `json:"type"`
	Participant hub.Participant `json:"participant"`
}

// MessageEvent wraps a single message delivery of any kind.
type MessageEvent struct {
	Type    string      `json:"type"`
	Message hub.Message `json:"message"`
}

// GroupCreated announces a new group to every connection; existence is
// globally discoverable regardless of access policy.
type GroupCreated struct {
	Type  string    `json:"type"`
	Group hub.Group `json:"group"`
}

// GroupsList is the reply to a list-groups request.
type GroupsList struct {
	Type   string      `json:"type"`
	Groups []hub.Group `json:"groups"`
}

// GroupMemberChange covers both member-joined and member-left.
type GroupMemberChange struct {
	Type         string          `json:"type"`
	GroupID      string          `json:"groupId"`
	Member       hub.Participant `json:"member"`
	TotalMembers int             `json:"totalMembers"`
}

// GroupHistory replays the group's full log to a joining connection.
type GroupHistory struct {
	Type     string        `json:"type"`
	GroupID  string        `json:"groupId"`
	Group    hub.Group     `json:"group"`
	Messages []hub.Message `json:"messages"`
}

// CommunityMemberChange covers community member-joined and member-left.
type CommunityMemberChange struct {
	Type         string          `json:"type"`
	Member       hub.Participant `json:"member"`
	TotalMembers int             `json:"totalMembers"`
}

// CommunityHistory replays the community log to a joining connection.
type CommunityHistory struct {
	Type     string        `json:"type"`
	Messages []hub.Message `json:"messages"`
}

// Typing is a stateless relay; receivers are responsible for timing out a
// stale indication.
type Typing struct {
	Type         string `json:"type"`
	Scope        string `json:"scope"`
	GroupID      string `json:"groupId,omitempty"`
	ConnectionID string `json:"connectionId"`
	DisplayName  string `json:"displayName"`
	IsTyping     bool   `json:"isTyping"`
}

// Error is the typed error frame sent back to the originating connection.
type Error struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

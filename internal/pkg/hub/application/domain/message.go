package hub

import (
	"time"

	"github.com/google/uuid"
)

// MessageKind distinguishes the three channel types.
type MessageKind string

const (
	KindPersonal  MessageKind = "personal"
	KindGroup     MessageKind = "group"
	KindCommunity MessageKind = "community"
)

// Typing scopes, mirroring the message kinds.
const (
	ScopePersonal  = "personal"
	ScopeGroup     = "group"
	ScopeCommunity = "community"
)

// Message is an immutable record once created. Sender is a value snapshot of
// the participant at send time, so history survives later profile edits.
// Content is delivered as supplied; escaping is a presentation concern.
type Message struct {
	ID          string      `json:"id"`
	Sender      Participant `json:"sender"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
	Kind        MessageKind `json:"kind"`
	RecipientID string      `json:"recipientId,omitempty"`
	GroupID     string      `json:"groupId,omitempty"`
}

// NewPersonalMessage builds a 1:1 message. Personal messages are delivered
// transiently and never logged server-side.
func NewPersonalMessage(sender Participant, recipientID, content string) Message {
	m := newMessage(sender, content, KindPersonal)
	m.RecipientID = recipientID
	return m
}

// NewGroupMessage builds a message addressed to a group log.
func NewGroupMessage(sender Participant, groupID, content string) Message {
	m := newMessage(sender, content, KindGroup)
	m.GroupID = groupID
	return m
}

// NewCommunityMessage builds a message addressed to the community log.
func NewCommunityMessage(sender Participant, content string) Message {
	return newMessage(sender, content, KindCommunity)
}

func newMessage(sender Participant, content string, kind MessageKind) Message {
	return Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Content:   content,
		Timestamp: time.Now().UTC(),
		Kind:      kind,
	}
}

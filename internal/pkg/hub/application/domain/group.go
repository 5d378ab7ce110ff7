package hub

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Group is a named channel with an optional access secret. The secret never
// leaves the process: it is excluded from JSON and surfaced only as the
// Restricted flag. Members preserves insertion order for directory display.
type Group struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Secret      string      `json:"-"`
	Restricted  bool        `json:"restricted"`
	CreatorID   string      `json:"creatorId"`
	Creator     Participant `json:"creator"`
	Members     []string    `json:"members"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NewGroup validates and builds a group with the creator as its first member.
// The Creator field is a snapshot taken at creation time; later profile edits
// do not rewrite it.
func NewGroup(creator Participant, name, description, secret string) (Group, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Group{}, fmt.Errorf("%w: name", ErrValidation)
	}
	return Group{
		ID:          uuid.NewString(),
		Name:        trimmed,
		Description: description,
		Secret:      secret,
		Restricted:  secret != "",
		CreatorID:   creator.ID,
		Creator:     creator,
		Members:     []string{creator.ID},
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// HasMember reports whether the connection is currently a member.
func (g *Group) HasMember(connectionID string) bool {
	for _, id := range g.Members {
		if id == connectionID {
			return true
		}
	}
	return false
}

// AddMember appends the connection if absent and reports whether it was added.
func (g *Group) AddMember(connectionID string) bool {
	if g.HasMember(connectionID) {
		return false
	}
	g.Members = append(g.Members, connectionID)
	return true
}

// RemoveMember drops the connection and reports whether it was a member.
func (g *Group) RemoveMember(connectionID string) bool {
	for i, id := range g.Members {
		if id == connectionID {
			g.Members = append(g.Members[:i], g.Members[i+1:]...)
			return true
		}
	}
	return false
}

package hub

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Participant is the presence record for one active connection. The ID is the
// transport-assigned connection id; identity lives and dies with the socket.
type Participant struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	AvatarRef   string    `json:"avatarRef"`
	Bio         string    `json:"bio,omitempty"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// ProfileUpdate carries the mutable profile fields. A nil field means
// "leave as is"; an explicitly empty DisplayName is rejected by the caller.
type ProfileUpdate struct {
	DisplayName *string
	AvatarRef   *string
	Bio         *string
}

// NewParticipant validates and builds a presence record. An empty avatar ref
// falls back to a generated avatar URL derived from the display name.
func NewParticipant(connectionID, displayName, avatarRef, bio string) (Participant, error) {
	name := strings.TrimSpace(displayName)
	if name == "" {
		return Participant{}, fmt.Errorf("%w: displayName", ErrValidation)
	}
	if avatarRef == "" {
		avatarRef = defaultAvatarRef(name)
	}
	return Participant{
		ID:          connectionID,
		DisplayName: name,
		AvatarRef:   avatarRef,
		Bio:         bio,
		JoinedAt:    time.Now().UTC(),
	}, nil
}

// Apply merges the supplied fields into the participant.
func (p *Participant) Apply(update ProfileUpdate) {
	if update.DisplayName != nil {
		p.DisplayName = strings.TrimSpace(*update.DisplayName)
	}
	if update.AvatarRef != nil {
		p.AvatarRef = *update.AvatarRef
	}
	if update.Bio != nil {
		p.Bio = *update.Bio
	}
}

func defaultAvatarRef(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}

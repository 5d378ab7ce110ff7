package hub

import "errors"

// Domain-level errors for hub behaviors. All of them are local, synchronous
// conditions surfaced to the originating connection only.
var (
	ErrNotRegistered = errors.New("hub: connection has no registered participant")
	ErrGroupNotFound = errors.New("hub: group not found")
	ErrAccessDenied  = errors.New("hub: invalid group secret")
	ErrNotAMember    = errors.New("hub: not a member of this group")
	ErrValidation    = errors.New("hub: missing required field")
)

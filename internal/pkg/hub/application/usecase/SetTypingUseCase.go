package usecase

import (
	"fmt"

	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// SetTypingInput carries a typing indication and its scope. RecipientID is
// used for the personal scope, GroupID for the group scope.
type SetTypingInput struct {
	ConnectionID string
	Scope        string
	RecipientID  string
	GroupID      string
	IsTyping     bool
}

// SetTypingUseCase relays typing state to the scoped audience. The hub keeps
// no typing state of its own; receivers time out stale indications. Group
// scope mirrors group-send access control; personal scope is a best-effort
// relay with no recipient validation.
type SetTypingUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewSetTypingUseCase(store stateport.Store, transport Transport, log *zap.Logger) *SetTypingUseCase {
	return &SetTypingUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *SetTypingUseCase) Execute(in SetTypingInput) error {
	sender, ok := uc.Store.Participant(in.ConnectionID)
	if !ok {
		return hub.ErrNotRegistered
	}

	ev := event.Typing{
		Type:         event.TypeTyping,
		Scope:        in.Scope,
		ConnectionID: in.ConnectionID,
		DisplayName:  sender.DisplayName,
		IsTyping:     in.IsTyping,
	}

	switch in.Scope {
	case hub.ScopePersonal:
		if payload, ok := encode(uc.Log, ev); ok {
			uc.Transport.Send(in.RecipientID, payload)
		}
	case hub.ScopeGroup:
		g, ok := uc.Store.Group(in.GroupID)
		if !ok {
			return hub.ErrGroupNotFound
		}
		if !g.HasMember(in.ConnectionID) {
			return hub.ErrNotAMember
		}
		ev.GroupID = in.GroupID
		if payload, ok := encode(uc.Log, ev); ok {
			uc.Transport.Broadcast(GroupChannel(in.GroupID), payload)
		}
	case hub.ScopeCommunity:
		if payload, ok := encode(uc.Log, ev); ok {
			uc.Transport.Broadcast(CommunityChannel, payload)
		}
	default:
		return fmt.Errorf("%w: scope", hub.ErrValidation)
	}
	return nil
}

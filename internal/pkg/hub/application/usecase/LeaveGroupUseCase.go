package usecase

import (
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// LeaveGroupInput identifies the connection and the group to leave.
type LeaveGroupInput struct {
	ConnectionID string
	GroupID      string
}

// LeaveGroupUseCase removes the connection from the group and notifies the
// remaining members. Leaving an unknown group or one you never joined is a
// no-op, never an error.
type LeaveGroupUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewLeaveGroupUseCase(store stateport.Store, transport Transport, log *zap.Logger) *LeaveGroupUseCase {
	return &LeaveGroupUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *LeaveGroupUseCase) Execute(in LeaveGroupInput) {
	member, registered := uc.Store.Participant(in.ConnectionID)
	remaining, removed := uc.Store.LeaveGroup(in.GroupID, in.ConnectionID)

	channel := GroupChannel(in.GroupID)
	uc.Transport.Unsubscribe(channel, in.ConnectionID)
	if !removed || !registered {
		return
	}

	if payload, ok := encode(uc.Log, event.GroupMemberChange{
		Type:         event.TypeGroupMemberLeft,
		GroupID:      in.GroupID,
		Member:       member,
		TotalMembers: remaining,
	}); ok {
		uc.Transport.Broadcast(channel, payload)
	}
}

package usecase

import (
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// LeaveCommunityUseCase removes the connection from the community and tells
// the remaining members. A no-op for connections that never joined.
type LeaveCommunityUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewLeaveCommunityUseCase(store stateport.Store, transport Transport, log *zap.Logger) *LeaveCommunityUseCase {
	return &LeaveCommunityUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *LeaveCommunityUseCase) Execute(connectionID string) {
	member, registered := uc.Store.Participant(connectionID)
	remaining, removed := uc.Store.LeaveCommunity(connectionID)

	uc.Transport.Unsubscribe(CommunityChannel, connectionID)
	if !removed || !registered {
		return
	}

	if payload, ok := encode(uc.Log, event.CommunityMemberChange{
		Type:         event.TypeCommunityMemberLeft,
		Member:       member,
		TotalMembers: remaining,
	}); ok {
		uc.Transport.Broadcast(CommunityChannel, payload)
	}
}

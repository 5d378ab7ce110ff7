package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// JoinCommunityUseCase adds the connection to the community channel, replays
// the community log to it, and announces the join to current members.
type JoinCommunityUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewJoinCommunityUseCase(store stateport.Store, transport Transport, log *zap.Logger) *JoinCommunityUseCase {
	return &JoinCommunityUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *JoinCommunityUseCase) Execute(connectionID string) error {
	member, ok := uc.Store.Participant(connectionID)
	if !ok {
		return hub.ErrNotRegistered
	}

	history, already, total := uc.Store.JoinCommunity(connectionID)
	uc.Transport.Subscribe(CommunityChannel, connectionID)

	if !already {
		if payload, ok := encode(uc.Log, event.CommunityMemberChange{
			Type:         event.TypeCommunityMemberJoined,
			Member:       member,
			TotalMembers: total,
		}); ok {
			uc.Transport.Broadcast(CommunityChannel, payload)
		}
	}

	if payload, ok := encode(uc.Log, event.CommunityHistory{
		Type:     event.TypeCommunityHistory,
		Messages: history,
	}); ok {
		uc.Transport.Send(connectionID, payload)
	}
	return nil
}

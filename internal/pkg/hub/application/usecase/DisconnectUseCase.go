package usecase

import (
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// DisconnectUseCase is the reconciler for a lost connection: it removes the
// presence record, evicts the connection from every group and the community,
// notifies each channel's remaining members, and broadcasts the updated
// presence list. Idempotent; a second disconnect for the same connection is
// a no-op. The caller detaches the connection from the transport first, so
// none of the notifications are addressed to the connection being torn down.
type DisconnectUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewDisconnectUseCase(store stateport.Store, transport Transport, log *zap.Logger) *DisconnectUseCase {
	return &DisconnectUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *DisconnectUseCase) Execute(connectionID string) {
	res, ok := uc.Store.Disconnect(connectionID)
	if !ok {
		return
	}

	for _, ev := range res.Evictions {
		if payload, ok := encode(uc.Log, event.GroupMemberChange{
			Type:         event.TypeGroupMemberLeft,
			GroupID:      ev.GroupID,
			Member:       res.Participant,
			TotalMembers: ev.Remaining,
		}); ok {
			uc.Transport.Broadcast(GroupChannel(ev.GroupID), payload)
		}
	}

	if res.LeftCommunity {
		if payload, ok := encode(uc.Log, event.CommunityMemberChange{
			Type:         event.TypeCommunityMemberLeft,
			Member:       res.Participant,
			TotalMembers: res.CommunityRemaining,
		}); ok {
			uc.Transport.Broadcast(CommunityChannel, payload)
		}
	}

	if payload, ok := encode(uc.Log, event.PresenceList{
		Type:         event.TypePresenceList,
		Participants: uc.Store.Participants(),
	}); ok {
		uc.Transport.BroadcastAll(payload)
	}

	uc.Log.Info("participant disconnected",
		zap.String("connection_id", connectionID),
		zap.String("display_name", res.Participant.DisplayName),
		zap.Int("groups_left", len(res.Evictions)))
}

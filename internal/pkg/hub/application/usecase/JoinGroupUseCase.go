package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// JoinGroupInput carries a join request with the optional access secret.
type JoinGroupInput struct {
	ConnectionID string
	GroupID      string
	Secret       string
}

// JoinGroupUseCase validates access, adds the connection to the group, tells
// the members, and replays the group's message log to the joiner. Joining a
// group you already belong to re-delivers history without a duplicate
// member-joined broadcast.
type JoinGroupUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewJoinGroupUseCase(store stateport.Store, transport Transport, log *zap.Logger) *JoinGroupUseCase {
	return &JoinGroupUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *JoinGroupUseCase) Execute(in JoinGroupInput) error {
	member, ok := uc.Store.Participant(in.ConnectionID)
	if !ok {
		return hub.ErrNotRegistered
	}

	res, err := uc.Store.JoinGroup(in.GroupID, in.ConnectionID, in.Secret)
	if err != nil {
		return err
	}

	channel := GroupChannel(in.GroupID)
	uc.Transport.Subscribe(channel, in.ConnectionID)

	if !res.AlreadyMember {
		if payload, ok := encode(uc.Log, event.GroupMemberChange{
			Type:         event.TypeGroupMemberJoined,
			GroupID:      in.GroupID,
			Member:       member,
			TotalMembers: len(res.Group.Members),
		}); ok {
			uc.Transport.Broadcast(channel, payload)
		}
	}

	if payload, ok := encode(uc.Log, event.GroupHistory{
		Type:     event.TypeGroupMessageHistory,
		GroupID:  in.GroupID,
		Group:    res.Group,
		Messages: res.History,
	}); ok {
		uc.Transport.Send(in.ConnectionID, payload)
	}

	uc.Log.Info("joined group",
		zap.String("connection_id", in.ConnectionID),
		zap.String("group_id", in.GroupID),
		zap.Bool("rejoin", res.AlreadyMember))
	return nil
}

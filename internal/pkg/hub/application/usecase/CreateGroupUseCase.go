package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// CreateGroupInput carries the data to create a named channel. A non-empty
// Secret marks the group restricted.
type CreateGroupInput struct {
	CreatorID   string
	Name        string
	Description string
	Secret      string
}

// CreateGroupUseCase creates a group with the creator as first member and
// announces it to every connection; existence is globally discoverable.
type CreateGroupUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewCreateGroupUseCase(store stateport.Store, transport Transport, log *zap.Logger) *CreateGroupUseCase {
	return &CreateGroupUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *CreateGroupUseCase) Execute(in CreateGroupInput) (hub.Group, error) {
	creator, ok := uc.Store.Participant(in.CreatorID)
	if !ok {
		return hub.Group{}, hub.ErrNotRegistered
	}

	g, err := hub.NewGroup(creator, in.Name, in.Description, in.Secret)
	if err != nil {
		return hub.Group{}, err
	}

	uc.Store.CreateGroup(g)
	uc.Transport.Subscribe(GroupChannel(g.ID), in.CreatorID)

	if payload, ok := encode(uc.Log, event.GroupCreated{
		Type:  event.TypeGroupCreated,
		Group: g,
	}); ok {
		uc.Transport.BroadcastAll(payload)
	}

	uc.Log.Info("group created",
		zap.String("group_id", g.ID),
		zap.String("name", g.Name),
		zap.Bool("restricted", g.Restricted))
	return g, nil
}

package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// RegisterParticipantInput carries the profile supplied on registration.
type RegisterParticipantInput struct {
	ConnectionID string
	DisplayName  string
	AvatarRef    string
	Bio          string
}

// RegisterParticipantUseCase creates (or overwrites) the presence record for
// a connection and broadcasts the updated participant list to everyone.
// One class per use case (own file)
type RegisterParticipantUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewRegisterParticipantUseCase(store stateport.Store, transport Transport, log *zap.Logger) *RegisterParticipantUseCase {
	return &RegisterParticipantUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *RegisterParticipantUseCase) Execute(in RegisterParticipantInput) (hub.Participant, error) {
	p, err := hub.NewParticipant(in.ConnectionID, in.DisplayName, in.AvatarRef, in.Bio)
	if err != nil {
		return hub.Participant{}, err
	}

	uc.Store.SaveParticipant(p)

	if payload, ok := encode(uc.Log, event.PresenceList{
		Type:         event.TypePresenceList,
		Participants: uc.Store.Participants(),
	}); ok {
		uc.Transport.BroadcastAll(payload)
	}

	uc.Log.Info("participant registered",
		zap.String("connection_id", p.ID),
		zap.String("display_name", p.DisplayName))
	return p, nil
}

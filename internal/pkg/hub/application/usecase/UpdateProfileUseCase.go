package usecase

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// UpdateProfileInput wraps the partial profile update for a connection.
// Nil fields are left untouched; an explicitly empty display name is invalid.
type UpdateProfileInput struct {
	ConnectionID string
	Update       hub.ProfileUpdate
}

// UpdateProfileUseCase mutates the participant's profile, broadcasts the
// refreshed presence list, and confirms to the requester.
type UpdateProfileUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewUpdateProfileUseCase(store stateport.Store, transport Transport, log *zap.Logger) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *UpdateProfileUseCase) Execute(in UpdateProfileInput) (hub.Participant, error) {
	if in.Update.DisplayName != nil && strings.TrimSpace(*in.Update.DisplayName) == "" {
		return hub.Participant{}, fmt.Errorf("%w: displayName", hub.ErrValidation)
	}

	p, err := uc.Store.UpdateParticipant(in.ConnectionID, in.Update)
	if err != nil {
		return hub.Participant{}, err
	}

	if payload, ok := encode(uc.Log, event.PresenceList{
		Type:         event.TypePresenceList,
		Participants: uc.Store.Participants(),
	}); ok {
		uc.Transport.BroadcastAll(payload)
	}
	if payload, ok := encode(uc.Log, event.ProfileUpdated{
		Type:        event.TypeProfileUpdated,
		Participant: p,
	}); ok {
		uc.Transport.Send(in.ConnectionID, payload)
	}
	return p, nil
}

package usecase

import (
	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// ListParticipantsUseCase returns the current presence snapshot. Consumers
// typically filter out the requester themselves.
type ListParticipantsUseCase struct {
	Store stateport.Store
}

func NewListParticipantsUseCase(store stateport.Store) *ListParticipantsUseCase {
	return &ListParticipantsUseCase{Store: store}
}

func (uc *ListParticipantsUseCase) Execute() []hub.Participant {
	return uc.Store.Participants()
}

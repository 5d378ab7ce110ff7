package usecase

import (
	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// ListGroupsUseCase returns every group, restricted ones included, for
// directory display. Restricted groups are discoverable but not joinable
// without the secret.
type ListGroupsUseCase struct {
	Store stateport.Store
}

func NewListGroupsUseCase(store stateport.Store) *ListGroupsUseCase {
	return &ListGroupsUseCase{Store: store}
}

func (uc *ListGroupsUseCase) Execute() []hub.Group {
	return uc.Store.Groups()
}

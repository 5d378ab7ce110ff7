package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// SendCommunityMessageInput carries a community send.
type SendCommunityMessageInput struct {
	SenderID string
	Content  string
}

// SendCommunityMessageUseCase appends to the community log and broadcasts to
// the current community membership. Unlike group sends, sending requires
// registration but not community membership; the broadcast still reaches
// only connections that joined the community.
type SendCommunityMessageUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewSendCommunityMessageUseCase(store stateport.Store, transport Transport, log *zap.Logger) *SendCommunityMessageUseCase {
	return &SendCommunityMessageUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *SendCommunityMessageUseCase) Execute(in SendCommunityMessageInput) error {
	sender, ok := uc.Store.Participant(in.SenderID)
	if !ok {
		return hub.ErrNotRegistered
	}

	msg := hub.NewCommunityMessage(sender, in.Content)
	members := uc.Store.AppendCommunityMessage(msg)

	if payload, ok := encode(uc.Log, event.MessageEvent{
		Type:    event.TypeCommunityMessage,
		Message: msg,
	}); ok {
		delivered := uc.Transport.Broadcast(CommunityChannel, payload)
		uc.Log.Debug("community message broadcast",
			zap.Int("members", len(members)),
			zap.Int("delivered", delivered))
	}
	return nil
}

package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// SendPersonalMessageInput carries a 1:1 send.
type SendPersonalMessageInput struct {
	SenderID    string
	RecipientID string
	Content     string
}

// SendPersonalMessageUseCase delivers a message to one recipient and echoes a
// "sent" confirmation to the sender. Delivery is best-effort: an unknown or
// offline recipient is a silent no-op, and the sender echo is unconditional.
// Personal messages are never logged server-side.
type SendPersonalMessageUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewSendPersonalMessageUseCase(store stateport.Store, transport Transport, log *zap.Logger) *SendPersonalMessageUseCase {
	return &SendPersonalMessageUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *SendPersonalMessageUseCase) Execute(in SendPersonalMessageInput) {
	sender, ok := uc.Store.Participant(in.SenderID)
	if !ok {
		// Cannot happen through the public API; dropped without an error.
		uc.Log.Debug("personal send from unregistered connection",
			zap.String("connection_id", in.SenderID))
		return
	}

	msg := hub.NewPersonalMessage(sender, in.RecipientID, in.Content)

	if payload, ok := encode(uc.Log, event.MessageEvent{
		Type:    event.TypePersonalMessage,
		Message: msg,
	}); ok {
		if !uc.Transport.Send(in.RecipientID, payload) {
			uc.Log.Debug("personal message recipient offline",
				zap.String("recipient_id", in.RecipientID))
		}
	}
	if payload, ok := encode(uc.Log, event.MessageEvent{
		Type:    event.TypePersonalMessageSent,
		Message: msg,
	}); ok {
		uc.Transport.Send(in.SenderID, payload)
	}
}

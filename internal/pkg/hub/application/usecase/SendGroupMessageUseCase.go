package usecase

import (
	"go.uber.org/zap"

	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// SendGroupMessageInput carries a group send.
type SendGroupMessageInput struct {
	SenderID string
	GroupID  string
	Content  string
}

// SendGroupMessageUseCase appends the message to the group's log and
// broadcasts it to every current member, sender included; the sender renders
// its own message from the broadcast, there is no separate echo.
type SendGroupMessageUseCase struct {
	Store     stateport.Store
	Transport Transport
	Log       *zap.Logger
}

func NewSendGroupMessageUseCase(store stateport.Store, transport Transport, log *zap.Logger) *SendGroupMessageUseCase {
	return &SendGroupMessageUseCase{Store: store, Transport: transport, Log: log}
}

func (uc *SendGroupMessageUseCase) Execute(in SendGroupMessageInput) error {
	sender, ok := uc.Store.Participant(in.SenderID)
	if !ok {
		return hub.ErrNotRegistered
	}

	msg := hub.NewGroupMessage(sender, in.GroupID, in.Content)

	// Membership is checked and the append performed under the group's lock,
	// so the recipient set and the log entry observe the same state.
	members, err := uc.Store.AppendGroupMessage(msg)
	if err != nil {
		return err
	}

	if payload, ok := encode(uc.Log, event.MessageEvent{
		Type:    event.TypeGroupMessage,
		Message: msg,
	}); ok {
		delivered := uc.Transport.Broadcast(GroupChannel(in.GroupID), payload)
		uc.Log.Debug("group message broadcast",
			zap.String("group_id", in.GroupID),
			zap.Int("members", len(members)),
			zap.Int("delivered", delivered))
	}
	return nil
}

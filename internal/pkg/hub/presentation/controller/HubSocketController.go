package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/realtime"
	hub "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/domain"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/event"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/usecase"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

const defaultReadTimeout = 60 * time.Second

// SocketOptions are the transport knobs the controller applies per connection.
type SocketOptions struct {
	MaxMessageSize int64
	SendBuffer     int
	AllowedOrigins []string
}

// HubSocketController handles the websocket endpoint for all hub traffic.
// It decodes inbound frames, dispatches on the type discriminator, and maps
// domain errors to typed error frames for the originating connection.
type HubSocketController struct {
	router *realtime.Router
	log    *zap.Logger
	opts   SocketOptions

	register      *usecase.RegisterParticipantUseCase
	updateProfile *usecase.UpdateProfileUseCase
	sendPersonal  *usecase.SendPersonalMessageUseCase
	createGroup   *usecase.CreateGroupUseCase
	joinGroup     *usecase.JoinGroupUseCase
	leaveGroup    *usecase.LeaveGroupUseCase
	sendGroup     *usecase.SendGroupMessageUseCase
	listGroups    *usecase.ListGroupsUseCase
	joinCommunity *usecase.JoinCommunityUseCase
	leaveCommunity *usecase.LeaveCommunityUseCase
	sendCommunity *usecase.SendCommunityMessageUseCase
	setTyping     *usecase.SetTypingUseCase
	disconnect    *usecase.DisconnectUseCase
}

func NewHubSocketController(store stateport.Store, router *realtime.Router, log *zap.Logger, opts SocketOptions) *HubSocketController {
	return &HubSocketController{
		router: router,
		log:    log,
		opts:   opts,

		register:       usecase.NewRegisterParticipantUseCase(store, router, log),
		updateProfile:  usecase.NewUpdateProfileUseCase(store, router, log),
		sendPersonal:   usecase.NewSendPersonalMessageUseCase(store, router, log),
		createGroup:    usecase.NewCreateGroupUseCase(store, router, log),
		joinGroup:      usecase.NewJoinGroupUseCase(store, router, log),
		leaveGroup:     usecase.NewLeaveGroupUseCase(store, router, log),
		sendGroup:      usecase.NewSendGroupMessageUseCase(store, router, log),
		listGroups:     usecase.NewListGroupsUseCase(store),
		joinCommunity:  usecase.NewJoinCommunityUseCase(store, router, log),
		leaveCommunity: usecase.NewLeaveCommunityUseCase(store, router, log),
		sendCommunity:  usecase.NewSendCommunityMessageUseCase(store, router, log),
		setTyping:      usecase.NewSetTypingUseCase(store, router, log),
		disconnect:     usecase.NewDisconnectUseCase(store, router, log),
	}
}

// inboundFrame is the union of all client frames; Type selects the fields
// that matter. DisplayName is a pointer so update-profile can distinguish
// "not supplied" from "explicitly empty".
type inboundFrame struct {
	Type string `json:"type"`

	DisplayName *string `json:"displayName,omitempty"`
	AvatarRef   string  `json:"avatarRef,omitempty"`
	Bio         *string `json:"bio,omitempty"`

	RecipientID string `json:"recipientId,omitempty"`
	Content     string `json:"content,omitempty"`

	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Secret      string `json:"secret,omitempty"`
	GroupID     string `json:"groupId,omitempty"`

	Scope    string `json:"scope,omitempty"`
	IsTyping bool   `json:"isTyping,omitempty"`
}

// Handle upgrades HTTP connections to websocket and processes frames until
// the client disconnects. Connection loss, however it happens, runs the
// disconnect reconciler exactly once.
func (ctl *HubSocketController) Handle() gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     ctl.checkOrigin,
	}

	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just log and return.
			ctl.log.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		conn := realtime.NewConnection(ws, ctl.opts.SendBuffer)
		ctl.router.Attach(conn)
		defer func() {
			ctl.router.Detach(conn)
			ctl.disconnect.Execute(conn.ID)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		if ctl.opts.MaxMessageSize > 0 {
			ws.SetReadLimit(ctl.opts.MaxMessageSize)
		}
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(event.Connected{
			Type:         event.TypeConnected,
			ConnectionID: conn.ID,
		}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) &&
					!errors.Is(err, websocket.ErrCloseSent) {
					ctl.log.Debug("websocket read ended", zap.String("connection_id", conn.ID), zap.Error(err))
				}
				return
			}

			var frame inboundFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				ctl.replyError(conn, "bad_request", "invalid payload")
				continue
			}

			ctl.dispatch(conn, frame)
		}
	}
}

func (ctl *HubSocketController) dispatch(conn *realtime.Connection, frame inboundFrame) {
	switch frame.Type {
	case "register":
		_, err := ctl.register.Execute(usecase.RegisterParticipantInput{
			ConnectionID: conn.ID,
			DisplayName:  deref(frame.DisplayName),
			AvatarRef:    frame.AvatarRef,
			Bio:          deref(frame.Bio),
		})
		ctl.replyIfError(conn, err)
	case "update-profile":
		var avatar *string
		if frame.AvatarRef != "" {
			avatar = &frame.AvatarRef
		}
		_, err := ctl.updateProfile.Execute(usecase.UpdateProfileInput{
			ConnectionID: conn.ID,
			Update: hub.ProfileUpdate{
				DisplayName: frame.DisplayName,
				AvatarRef:   avatar,
				Bio:         frame.Bio,
			},
		})
		ctl.replyIfError(conn, err)
	case "send-personal":
		ctl.sendPersonal.Execute(usecase.SendPersonalMessageInput{
			SenderID:    conn.ID,
			RecipientID: frame.RecipientID,
			Content:     frame.Content,
		})
	case "create-group":
		_, err := ctl.createGroup.Execute(usecase.CreateGroupInput{
			CreatorID:   conn.ID,
			Name:        frame.Name,
			Description: frame.Description,
			Secret:      frame.Secret,
		})
		ctl.replyIfError(conn, err)
	case "join-group":
		err := ctl.joinGroup.Execute(usecase.JoinGroupInput{
			ConnectionID: conn.ID,
			GroupID:      frame.GroupID,
			Secret:       frame.Secret,
		})
		ctl.replyIfError(conn, err)
	case "leave-group":
		ctl.leaveGroup.Execute(usecase.LeaveGroupInput{
			ConnectionID: conn.ID,
			GroupID:      frame.GroupID,
		})
	case "send-group":
		err := ctl.sendGroup.Execute(usecase.SendGroupMessageInput{
			SenderID: conn.ID,
			GroupID:  frame.GroupID,
			Content:  frame.Content,
		})
		ctl.replyIfError(conn, err)
	case "list-groups":
		if payload, err := json.Marshal(event.GroupsList{
			Type:   event.TypeGroupsList,
			Groups: ctl.listGroups.Execute(),
		}); err == nil {
			_ = conn.Send(payload)
		}
	case "join-community":
		ctl.replyIfError(conn, ctl.joinCommunity.Execute(conn.ID))
	case "leave-community":
		ctl.leaveCommunity.Execute(conn.ID)
	case "send-community":
		err := ctl.sendCommunity.Execute(usecase.SendCommunityMessageInput{
			SenderID: conn.ID,
			Content:  frame.Content,
		})
		ctl.replyIfError(conn, err)
	case "set-typing":
		err := ctl.setTyping.Execute(usecase.SetTypingInput{
			ConnectionID: conn.ID,
			Scope:        frame.Scope,
			RecipientID:  frame.RecipientID,
			GroupID:      frame.GroupID,
			IsTyping:     frame.IsTyping,
		})
		ctl.replyIfError(conn, err)
	default:
		ctl.replyError(conn, "unsupported_type", "unknown frame type")
	}
}

func (ctl *HubSocketController) replyIfError(conn *realtime.Connection, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, hub.ErrNotRegistered):
		ctl.replyError(conn, "not_registered", "register before using the hub")
	case errors.Is(err, hub.ErrGroupNotFound):
		ctl.replyError(conn, "group_not_found", "group not found")
	case errors.Is(err, hub.ErrAccessDenied):
		ctl.replyError(conn, "access_denied", "invalid group secret")
	case errors.Is(err, hub.ErrNotAMember):
		ctl.replyError(conn, "not_a_member", "you are not a member of this group")
	case errors.Is(err, hub.ErrValidation):
		ctl.replyError(conn, "validation_error", err.Error())
	default:
		ctl.replyError(conn, "bad_request", err.Error())
	}
}

func (ctl *HubSocketController) replyError(conn *realtime.Connection, code, message string) {
	frame := event.Error{
		Type:    event.TypeError,
		Code:    code,
		Message: message,
	}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}

// checkOrigin allows every origin when no allow-list is configured, and
// exact-matches the Origin header's scheme://host otherwise.
func (ctl *HubSocketController) checkOrigin(r *http.Request) bool {
	if len(ctl.opts.AllowedOrigins) == 0 {
		return true
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	normalized := u.Scheme + "://" + u.Host
	for _, allowed := range ctl.opts.AllowedOrigins {
		if allowed == normalized {
			return true
		}
	}
	return false
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

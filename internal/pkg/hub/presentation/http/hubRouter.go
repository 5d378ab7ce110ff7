package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/infrastructure/realtime"
	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/presentation/controller"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// RegisterRoutes registers hub endpoints under the given router group.
// It constructs per-endpoint controllers and binds them directly to routes.
func RegisterRoutes(g *gin.RouterGroup, store stateport.Store, router *realtime.Router, log *zap.Logger, opts controller.SocketOptions) {
	socketCtl := controller.NewHubSocketController(store, router, log, opts)
	groupsCtl := controller.NewListGroupsController(store)
	participantsCtl := controller.NewListParticipantsController(store)

	// GET /api/v1/hub/ws -> websocket endpoint carrying all realtime traffic
	g.GET("/hub/ws", socketCtl.Handle())

	// GET /api/v1/hub/groups -> directory of groups
	g.GET("/hub/groups", groupsCtl.Handle())

	// GET /api/v1/hub/participants -> connected participants
	g.GET("/hub/participants", participantsCtl.Handle())
}

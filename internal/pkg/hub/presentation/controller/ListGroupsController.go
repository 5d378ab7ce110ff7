package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/usecase"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// ListGroupsController exposes the group directory over plain HTTP so web
// clients can browse rooms before opening a websocket.
type ListGroupsController struct {
	listGroups *usecase.ListGroupsUseCase
}

func NewListGroupsController(store stateport.Store) *ListGroupsController {
	return &ListGroupsController{listGroups: usecase.NewListGroupsUseCase(store)}
}

func (ctl *ListGroupsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"groups": ctl.listGroups.Execute()})
	}
}

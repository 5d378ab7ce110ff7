package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/application/usecase"
	stateport "github.com/stdt-jrny4225/real-time-chat-app/internal/pkg/hub/state/port"
)

// ListParticipantsController exposes the current presence roster over HTTP.
type ListParticipantsController struct {
	listParticipants *usecase.ListParticipantsUseCase
}

func NewListParticipantsController(store stateport.Store) *ListParticipantsController {
	return &ListParticipantsController{listParticipants: usecase.NewListParticipantsUseCase(store)}
}

func (ctl *ListParticipantsController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"participants": ctl.listParticipants.Execute()})
	}
}

package handlers

import (
	"net/http"

	"wrapcommand/internal/adapter/http/dto/response"
	"wrapcommand/internal/usecase"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	usecase usecase.IConversationEventUseCase
}

func NewEventHandler(uc usecase.IConversationEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

// ListByConversation godoc
// @Summary List the audit trail of a conversation
// @Tags events
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {array} response.ConversationEventResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /conversations/{id}/events [get]
func (h *EventHandler) ListByConversation(c *gin.Context) {
	events, err := h.usecase.ListByConversation(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromConversationEvents(events))
}

package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"wrapcommand/internal/adapter/http/handlers/mocks"
	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEventHandler_ListByConversation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("lists events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIConversationEventUseCase(ctrl)
		uc.EXPECT().ListByConversation(gomock.Any(), "conv-1").Return([]entities.ConversationEvent{
			{ID: "e-1", ConversationID: "conv-1", Type: entities.EventQuoteCreated, Actor: "system", CreatedAt: time.Now()},
			{ID: "e-2", ConversationID: "conv-1", Type: entities.EventEmailSent, Actor: "system", CreatedAt: time.Now()},
		}, nil)

		h := NewEventHandler(uc)
		r := gin.New()
		r.GET("/conversations/:id/events", h.ListByConversation)

		w := doJSON(r, http.MethodGet, "/conversations/conv-1/events", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 2 || body[1]["event_type"] != "email_sent" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid conversation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIConversationEventUseCase(ctrl)
		uc.EXPECT().ListByConversation(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidConversationID)

		h := NewEventHandler(uc)
		r := gin.New()
		r.GET("/conversations/:id/events", h.ListByConversation)

		w := doJSON(r, http.MethodGet, "/conversations/%20/events", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

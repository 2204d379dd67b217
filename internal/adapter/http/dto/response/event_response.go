package response

import (
	"time"

	"wrapcommand/internal/domain/entities"
)

type ConversationEventResponse struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	EventType      string         `json:"event_type"`
	Actor          string         `json:"actor"`
	Payload        map[string]any `json:"payload"`
	CreatedAt      time.Time      `json:"created_at"`
}

func FromConversationEvents(events []entities.ConversationEvent) []ConversationEventResponse {
	out := make([]ConversationEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ConversationEventResponse{
			ID:             e.ID,
			ConversationID: e.ConversationID,
			EventType:      string(e.Type),
			Actor:          e.Actor,
			Payload:        e.Payload,
			CreatedAt:      e.CreatedAt,
		})
	}
	return out
}

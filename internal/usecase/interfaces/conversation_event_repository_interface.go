package interfaces

import (
	"context"

	"wrapcommand/internal/domain/entities"
)

//go:generate mockgen -source=conversation_event_repository_interface.go -destination=mocks/conversation_event_repository_mock.go -package=mock_interfaces

// IConversationEventRepository is the append-only audit log.
type IConversationEventRepository interface {
	Append(ctx context.Context, e entities.ConversationEvent) error
	ListByConversationID(ctx context.Context, conversationID string) ([]entities.ConversationEvent, error)
}

package usecase

import (
	"context"
	"strings"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase/interfaces"
)

//go:generate mockgen -source=event_usecase.go -destination=../adapter/http/handlers/mocks/event_usecase_mock.go -package=mocks

// IConversationEventUseCase reads the audit trail.
type IConversationEventUseCase interface {
	ListByConversation(ctx context.Context, conversationID string) ([]entities.ConversationEvent, error)
}

type ConversationEventUseCase struct {
	repo interfaces.IConversationEventRepository
}

var _ IConversationEventUseCase = (*ConversationEventUseCase)(nil)

func NewConversationEventUseCase(repo interfaces.IConversationEventRepository) *ConversationEventUseCase {
	return &ConversationEventUseCase{repo: repo}
}

// ListByConversation returns events oldest first. An unknown conversation
// yields an empty list.
func (u *ConversationEventUseCase) ListByConversation(ctx context.Context, conversationID string) ([]entities.ConversationEvent, error) {
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, ErrInvalidConversationID
	}
	events, err := u.repo.ListByConversationID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []entities.ConversationEvent{}
	}
	return events, nil
}

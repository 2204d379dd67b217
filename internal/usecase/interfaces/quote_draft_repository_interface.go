package interfaces

import (
	"context"

	"wrapcommand/internal/domain/entities"
)

//go:generate mockgen -source=quote_draft_repository_interface.go -destination=mocks/quote_draft_repository_mock.go -package=mock_interfaces

// DraftTransition describes a conditional status change on a draft.
type DraftTransition struct {
	From       entities.DraftStatus
	To         entities.DraftStatus
	ApprovedBy string
	QuoteID    string
}

// IQuoteDraftRepository abstracts DynamoDB persistence for QuoteDraft.
//
// Transition only applies when the stored status equals From; otherwise it
// returns a zero-value draft and no error.
type IQuoteDraftRepository interface {
	Create(ctx context.Context, d entities.QuoteDraft) (entities.QuoteDraft, error)
	GetByID(ctx context.Context, id string) (entities.QuoteDraft, error)
	Transition(ctx context.Context, id string, t DraftTransition) (entities.QuoteDraft, error)
}

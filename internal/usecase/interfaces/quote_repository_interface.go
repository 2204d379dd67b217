package interfaces

import (
	"context"

	"wrapcommand/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/quote_repository_mock.go -package=mock_interfaces

// IQuoteRepository abstracts DynamoDB persistence for Quote.
//
// Quotes are never deleted. The only mutation after creation is the status
// transition driven by the gate and the email outcome.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus, emailSent bool) (entities.Quote, error)
}

package usecase

import (
	"errors"

	"wrapcommand/internal/domain/entities"
)

var (
	ErrMissingCustomerEmail   = errors.New("customer_email is required")
	ErrInvalidSourceAgent     = errors.New("source_agent is required")
	ErrInvalidConfidence      = errors.New("confidence must be between 0 and 1")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidDraftID         = errors.New("draft_id is required")
	ErrInvalidConversationID  = errors.New("invalid conversation id")
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrDraftNotFound          = errors.New("draft not found")
	ErrDraftAlreadyProcessed  = errors.New("draft already processed")
	ErrDraftExecutionInFlight = errors.New("draft execution already in progress")
	ErrQuotePersistence       = errors.New("failed to save quote")
	ErrDraftPersistence       = errors.New("failed to save draft")
	ErrExecutionBlocked       = errors.New("execution blocked")
	ErrEmptyVehicleTable      = errors.New("vehicle table is empty")
)

// GateBlockedError carries the gate decision that stopped an execution.
// errors.Is(err, ErrExecutionBlocked) holds for it.
type GateBlockedError struct {
	Result entities.GateResult
}

func (e *GateBlockedError) Error() string {
	return "execution blocked: " + e.Result.Reason
}

func (e *GateBlockedError) Is(target error) bool {
	return target == ErrExecutionBlocked
}

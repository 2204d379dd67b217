package handlers

import (
	"errors"
	"net/http"

	"wrapcommand/internal/adapter/http/dto/request"
	"wrapcommand/internal/adapter/http/dto/response"
	"wrapcommand/internal/usecase"
	"wrapcommand/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// mapQuoteError turns usecase errors into the HTTP envelope shared by every
// quote endpoint.
func mapQuoteError(err error) *pkg.AppError {
	var verr *request.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", verr.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCustomerEmail):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER_EMAIL", "customer_email is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSourceAgent),
		errors.Is(err, usecase.ErrInvalidConfidence),
		errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidDraftID),
		errors.Is(err, usecase.ErrInvalidConversationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftAlreadyProcessed):
		return pkg.NewDomainErrorSimple("DRAFT_ALREADY_PROCESSED", "Draft already processed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftExecutionInFlight):
		return pkg.NewDomainErrorSimple("DRAFT_EXECUTION_IN_PROGRESS", "Draft execution already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuotePersistence):
		return pkg.NewDomainError("QUOTE_INSERT_FAILED", "Failed to save quote", err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrDraftPersistence):
		return pkg.NewDomainError("DRAFT_INSERT_FAILED", "Failed to save draft", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// writeError renders err, using the 403 shape when the gate blocked the call.
func writeError(c *gin.Context, err error) {
	var blocked *usecase.GateBlockedError
	if errors.As(err, &blocked) {
		c.JSON(http.StatusForbidden, response.FromGateResult(blocked.Result))
		return
	}
	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// bindJSON decodes the body and runs its Validate. It writes the 400 itself
// and reports whether the handler should continue.
func bindJSON(c *gin.Context, payload interface{ Validate() error }) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		var verr *request.ValidationError
		if errors.As(err, &verr) {
			writeError(c, verr)
			return false
		}
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return false
	}
	if err := payload.Validate(); err != nil {
		writeError(c, err)
		return false
	}
	return true
}

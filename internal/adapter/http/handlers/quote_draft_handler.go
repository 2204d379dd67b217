package handlers

import (
	"net/http"

	"wrapcommand/internal/adapter/http/dto/request"
	"wrapcommand/internal/adapter/http/dto/response"
	"wrapcommand/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteDraftHandler serves the draft and approval endpoints.
type QuoteDraftHandler struct {
	usecase usecase.IQuoteDraftUseCase
}

func NewQuoteDraftHandler(uc usecase.IQuoteDraftUseCase) *QuoteDraftHandler {
	return &QuoteDraftHandler{usecase: uc}
}

// CreateDraft godoc
// @Summary Create a quote draft for later approval
// @Tags quote-drafts
// @Accept json
// @Produce json
// @Param body body request.CreateQuoteDraftRequest true "Draft request"
// @Success 200 {object} response.DraftCreatedResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /create-quote-draft [post]
func (h *QuoteDraftHandler) CreateDraft(c *gin.Context) {
	var payload request.CreateQuoteDraftRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.CreateDraft(c.Request.Context(), usecase.CreateDraftCommand{
		QuoteInput:      quoteInput(payload.CustomerFields, payload.VehicleFields, payload.ProductFields),
		SourceAgent:     payload.SourceAgent,
		Confidence:      payload.ResolveConfidence(),
		OriginalMessage: payload.OriginalMessage,
		Source:          payload.Source,
		ConversationID:  payload.ConversationID,
		OrganizationID:  payload.OrganizationID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCreateDraftResult(res))
}

// ExecuteDraft godoc
// @Summary Approve a draft and turn it into a quote
// @Tags quote-drafts
// @Accept json
// @Produce json
// @Param body body request.ExecuteQuoteDraftRequest true "Execution request"
// @Success 200 {object} response.ExecuteDraftResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} response.ExecutionBlockedResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 409 {object} pkg.HTTPError
// @Router /execute-quote-draft [post]
func (h *QuoteDraftHandler) ExecuteDraft(c *gin.Context) {
	var payload request.ExecuteQuoteDraftRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.ExecuteDraft(c.Request.Context(), usecase.ExecuteDraftCommand{
		DraftID:          payload.DraftID,
		ApprovingAgent:   payload.ApprovingAgent,
		ApprovedByUserID: payload.ApprovedByUserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromExecuteDraftResult(res))
}

// RejectDraft godoc
// @Summary Reject a pending draft
// @Tags quote-drafts
// @Accept json
// @Produce json
// @Param body body request.RejectQuoteDraftRequest true "Rejection request"
// @Success 200 {object} response.QuoteDraftResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} response.ExecutionBlockedResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /reject-quote-draft [post]
func (h *QuoteDraftHandler) RejectDraft(c *gin.Context) {
	var payload request.RejectQuoteDraftRequest
	if !bindJSON(c, &payload) {
		return
	}

	d, err := h.usecase.RejectDraft(c.Request.Context(), usecase.RejectDraftCommand{
		DraftID:          payload.DraftID,
		RejectingAgent:   payload.RejectingAgent,
		RejectedByUserID: payload.RejectedByUserID,
		Reason:           payload.Reason,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(d))
}

// GetDraft godoc
// @Summary Get a quote draft by id
// @Tags quote-drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.QuoteDraftResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quote-drafts/{id} [get]
func (h *QuoteDraftHandler) GetDraft(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteDraft(d))
}

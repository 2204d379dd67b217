package handlers

import (
	"net/http"

	"wrapcommand/internal/adapter/http/dto/request"
	"wrapcommand/internal/adapter/http/dto/response"
	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase"

	"github.com/gin-gonic/gin"
)

// QuoteHandler serves direct quote creation and quote lookups.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateFromChat godoc
// @Summary Create a quote from a chat conversation
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body request.CreateQuoteFromChatRequest true "Quote request"
// @Success 200 {object} response.CreateQuoteResponse
// @Success 202 {object} response.DraftCreatedResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 500 {object} pkg.HTTPError
// @Router /create-quote-from-chat [post]
func (h *QuoteHandler) CreateFromChat(c *gin.Context) {
	var payload request.CreateQuoteFromChatRequest
	if !bindJSON(c, &payload) {
		return
	}

	res, err := h.usecase.CreateFromChat(c.Request.Context(), usecase.CreateQuoteCommand{
		QuoteInput:     quoteInput(payload.CustomerFields, payload.VehicleFields, payload.ProductFields),
		ConversationID: payload.ConversationID,
		OrganizationID: payload.OrganizationID,
		Source:         payload.Source,
		AgentID:        payload.AgentID,
		SendEmail:      payload.SendEmail,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if res.Downgraded() {
		c.JSON(http.StatusAccepted, response.FromDowngradedQuote(res))
		return
	}
	c.JSON(http.StatusOK, response.FromCreateQuoteResult(res))
}

// GetQuote godoc
// @Summary Get a quote by id
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// QuickQuote godoc
// @Summary Price a vehicle without creating a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param body body request.QuickQuoteRequest true "Vehicle and product"
// @Success 200 {object} response.QuickQuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /quick-quote [post]
func (h *QuoteHandler) QuickQuote(c *gin.Context) {
	var payload request.QuickQuoteRequest
	if !bindJSON(c, &payload) {
		return
	}

	p, err := h.usecase.QuickQuote(c.Request.Context(), quoteInput(request.CustomerFields{}, payload.VehicleFields, payload.ProductFields))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromPricing(p))
}

func quoteInput(cust request.CustomerFields, v request.VehicleFields, p request.ProductFields) usecase.QuoteInput {
	return usecase.QuoteInput{
		Customer: entities.Customer{
			Name:  cust.CustomerName,
			Email: cust.CustomerEmail,
			Phone: cust.CustomerPhone,
		},
		Vehicle: entities.Vehicle{
			Year:  int(v.VehicleYear),
			Make:  v.VehicleMake,
			Model: v.VehicleModel,
		},
		ProductType:  p.ProductType,
		ProductID:    p.ProductID,
		ProductName:  p.ProductName,
		ProductPrice: p.ProductPrice,
	}
}

package response

import (
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase"
)

type QuoteDraftResponse struct {
	ID              string           `json:"id"`
	SourceAgent     string           `json:"source_agent"`
	Confidence      float64          `json:"confidence"`
	CustomerName    string           `json:"customer_name,omitempty"`
	CustomerEmail   string           `json:"customer_email,omitempty"`
	CustomerPhone   string           `json:"customer_phone,omitempty"`
	VehicleYear     int              `json:"vehicle_year,omitempty"`
	VehicleMake     string           `json:"vehicle_make,omitempty"`
	VehicleModel    string           `json:"vehicle_model,omitempty"`
	Pricing         entities.Pricing `json:"pricing"`
	OriginalMessage string           `json:"original_message,omitempty"`
	Source          string           `json:"source,omitempty"`
	ConversationID  string           `json:"conversation_id,omitempty"`
	OrganizationID  string           `json:"organization_id,omitempty"`
	Status          string           `json:"status"`
	ApprovedBy      string           `json:"approved_by,omitempty"`
	QuoteID         string           `json:"quote_id,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func FromQuoteDraft(d entities.QuoteDraft) QuoteDraftResponse {
	return QuoteDraftResponse{
		ID:              d.ID,
		SourceAgent:     d.SourceAgent,
		Confidence:      d.Confidence,
		CustomerName:    d.Customer.Name,
		CustomerEmail:   d.Customer.Email,
		CustomerPhone:   d.Customer.Phone,
		VehicleYear:     d.Vehicle.Year,
		VehicleMake:     d.Vehicle.Make,
		VehicleModel:    d.Vehicle.Model,
		Pricing:         d.Pricing,
		OriginalMessage: d.OriginalMessage,
		Source:          d.Source,
		ConversationID:  d.ConversationID,
		OrganizationID:  d.OrganizationID,
		Status:          string(d.Status),
		ApprovedBy:      d.ApprovedBy,
		QuoteID:         d.QuoteID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// DraftCreatedResponse is returned by create-quote-draft, and by
// create-quote-from-chat when the caller was downgraded to a draft.
type DraftCreatedResponse struct {
	Success    bool                `json:"success"`
	Status     string              `json:"status"`
	DraftID    string              `json:"draft_id"`
	Draft      QuoteDraftResponse  `json:"draft"`
	Message    string              `json:"message"`
	GateResult entities.GateResult `json:"gate_result"`
}

const StatusDraftCreated = "draft_created"

func FromCreateDraftResult(r usecase.CreateDraftResult) DraftCreatedResponse {
	return DraftCreatedResponse{
		Success:    true,
		Status:     StatusDraftCreated,
		DraftID:    r.Draft.ID,
		Draft:      FromQuoteDraft(r.Draft),
		Message:    r.Message,
		GateResult: r.Gate,
	}
}

// FromDowngradedQuote renders a create-quote-from-chat call the gate turned
// into a draft.
func FromDowngradedQuote(r usecase.CreateQuoteResult) DraftCreatedResponse {
	out := DraftCreatedResponse{Success: true, Status: StatusDraftCreated, Message: r.Message}
	if r.Draft != nil {
		out.DraftID = r.Draft.ID
		out.Draft = FromQuoteDraft(*r.Draft)
	}
	if r.Gate != nil {
		out.GateResult = *r.Gate
	}
	return out
}

// ExecuteDraftResponse is the execute-quote-draft success body.
type ExecuteDraftResponse struct {
	Success     bool   `json:"success"`
	Status      string `json:"status"`
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
	EmailSent   bool   `json:"email_sent"`
	EmailTo     string `json:"email_to"`
	Message     string `json:"message"`
}

func FromExecuteDraftResult(r usecase.ExecuteDraftResult) ExecuteDraftResponse {
	return ExecuteDraftResponse{
		Success:     true,
		Status:      string(r.Status),
		QuoteID:     r.Quote.ID,
		QuoteNumber: r.Quote.QuoteNumber,
		EmailSent:   r.EmailSent,
		EmailTo:     r.EmailTo,
		Message:     r.Message,
	}
}

// ExecutionBlockedResponse is the 403 body. ConvertToPending tells the caller
// to create a draft instead of retrying.
type ExecutionBlockedResponse struct {
	Success          bool   `json:"success"`
	Error            string `json:"error"`
	Code             string `json:"code"`
	Reason           string `json:"reason"`
	ConvertToPending bool   `json:"convert_to_pending"`
}

func FromGateResult(g entities.GateResult) ExecutionBlockedResponse {
	return ExecutionBlockedResponse{
		Success:          false,
		Error:            "Execution not permitted",
		Code:             "EXECUTION_BLOCKED",
		Reason:           g.Reason,
		ConvertToPending: g.ConvertToPending,
	}
}

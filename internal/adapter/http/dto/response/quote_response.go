package response

import (
	"time"

	"wrapcommand/internal/domain/entities"
	"wrapcommand/internal/usecase"
)

// CreateQuoteResponse is the create-quote-from-chat success body.
type CreateQuoteResponse struct {
	Success      bool                `json:"success"`
	QuoteID      string              `json:"quote_id"`
	QuoteNumber  string              `json:"quote_number"`
	Sqft         float64             `json:"sqft"`
	MaterialCost float64             `json:"material_cost"`
	PricePerSqft float64             `json:"price_per_sqft"`
	EmailSent    bool                `json:"email_sent"`
	Message      string              `json:"message"`
	NeedsReview  bool                `json:"needs_review"`
	SqftSource   entities.SizeSource `json:"sqft_source"`
}

func FromCreateQuoteResult(r usecase.CreateQuoteResult) CreateQuoteResponse {
	return CreateQuoteResponse{
		Success:      true,
		QuoteID:      r.Quote.ID,
		QuoteNumber:  r.Quote.QuoteNumber,
		Sqft:         r.Quote.Pricing.Sqft,
		MaterialCost: r.Quote.Pricing.MaterialCost,
		PricePerSqft: r.Quote.Pricing.PricePerSqft,
		EmailSent:    r.EmailSent,
		Message:      r.Message,
		NeedsReview:  r.Quote.Pricing.NeedsReview,
		SqftSource:   r.Quote.Pricing.SqftSource,
	}
}

// QuoteResponse is the full quote as returned by lookups.
type QuoteResponse struct {
	ID                   string           `json:"id"`
	QuoteNumber          string           `json:"quote_number"`
	CustomerName         string           `json:"customer_name,omitempty"`
	CustomerEmail        string           `json:"customer_email,omitempty"`
	CustomerPhone        string           `json:"customer_phone,omitempty"`
	VehicleYear          int              `json:"vehicle_year,omitempty"`
	VehicleMake          string           `json:"vehicle_make,omitempty"`
	VehicleModel         string           `json:"vehicle_model,omitempty"`
	Pricing              entities.Pricing `json:"pricing"`
	Status               string           `json:"status"`
	EmailSent            bool             `json:"email_sent"`
	Source               string           `json:"source"`
	AIGenerated          bool             `json:"ai_generated"`
	SourceConversationID string           `json:"source_conversation_id,omitempty"`
	SourceDraftID        string           `json:"source_draft_id,omitempty"`
	OrganizationID       string           `json:"organization_id,omitempty"`
	CreatedBy            string           `json:"created_by,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                   q.ID,
		QuoteNumber:          q.QuoteNumber,
		CustomerName:         q.Customer.Name,
		CustomerEmail:        q.Customer.Email,
		CustomerPhone:        q.Customer.Phone,
		VehicleYear:          q.Vehicle.Year,
		VehicleMake:          q.Vehicle.Make,
		VehicleModel:         q.Vehicle.Model,
		Pricing:              q.Pricing,
		Status:               string(q.Status),
		EmailSent:            q.EmailSent,
		Source:               q.Source,
		AIGenerated:          q.AIGenerated,
		SourceConversationID: q.SourceConversationID,
		SourceDraftID:        q.SourceDraftID,
		OrganizationID:       q.OrganizationID,
		CreatedBy:            q.CreatedBy,
		CreatedAt:            q.CreatedAt,
		UpdatedAt:            q.UpdatedAt,
	}
}

// QuickQuoteResponse is a price without a persisted quote.
type QuickQuoteResponse struct {
	Success        bool                `json:"success"`
	Sqft           float64             `json:"sqft"`
	SqftSource     entities.SizeSource `json:"sqft_source"`
	SizeCategory   string              `json:"size_category,omitempty"`
	SizeMatchedKey string              `json:"size_matched_key,omitempty"`
	NeedsReview    bool                `json:"needs_review"`
	ProductName    string              `json:"product_name"`
	PricePerSqft   float64             `json:"price_per_sqft"`
	MaterialCost   float64             `json:"material_cost"`
	TotalPrice     float64             `json:"total_price"`
}

func FromPricing(p entities.Pricing) QuickQuoteResponse {
	return QuickQuoteResponse{
		Success:        true,
		Sqft:           p.Sqft,
		SqftSource:     p.SqftSource,
		SizeCategory:   p.SizeCategory,
		SizeMatchedKey: p.SizeMatchedKey,
		NeedsReview:    p.NeedsReview,
		ProductName:    p.ProductName,
		PricePerSqft:   p.PricePerSqft,
		MaterialCost:   p.MaterialCost,
		TotalPrice:     p.TotalPrice,
	}
}

package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - draft -> pending_approval -> approved -> sent | rejected | failed
//   - Quotes are never deleted; they are the audit trail of what was offered.
type QuoteStatus string

const (
	QuoteStatusDraft           QuoteStatus = "draft"
	QuoteStatusPendingApproval QuoteStatus = "pending_approval"
	QuoteStatusApproved        QuoteStatus = "approved"
	QuoteStatusSent            QuoteStatus = "sent"
	QuoteStatusRejected        QuoteStatus = "rejected"
	QuoteStatusFailed          QuoteStatus = "failed"
)

// Customer identifies who a quote is addressed to. Every field is optional
// except where a use case says otherwise.
type Customer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Vehicle is the vehicle descriptor a quote was priced for.
type Vehicle struct {
	Year  int    `json:"year,omitempty"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// Description renders "2020 Ford F150" style labels, skipping unknown parts.
func (v Vehicle) Description() string {
	out := ""
	if v.Year > 0 {
		out = itoa(v.Year)
	}
	for _, part := range []string{v.Make, v.Model} {
		if part == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += part
	}
	if out == "" {
		return "Vehicle"
	}
	return out
}

// Pricing holds the computed figures shared by quotes and drafts.
//
// Wholesale model: MaterialCost is the only cost component. LaborCost and
// Margin are persisted as literal zeros. SizeCategory and SizeMatchedKey
// record which table row or heuristic produced Sqft.
type Pricing struct {
	ProductType    string     `json:"product_type,omitempty"`
	ProductID      string     `json:"product_id,omitempty"`
	ProductName    string     `json:"product_name"`
	Sqft           float64    `json:"sqft"`
	SqftSource     SizeSource `json:"sqft_source"`
	NeedsReview    bool       `json:"needs_review"`
	SizeCategory   string     `json:"size_category,omitempty"`
	SizeMatchedKey string     `json:"size_matched_key,omitempty"`
	PricePerSqft   float64    `json:"price_per_sqft"`
	MaterialCost   float64    `json:"material_cost"`
	LaborCost      float64    `json:"labor_cost"`
	Margin         float64    `json:"margin"`
	TotalPrice     float64    `json:"total_price"`
}

// SizeBasis describes how Sqft was obtained, e.g.
// "commercial_fallback/box_truck" or "exact/Ford F150".
func (p Pricing) SizeBasis() string {
	detail := p.SizeCategory
	if detail == "" {
		detail = p.SizeMatchedKey
	}
	if detail == "" {
		return string(p.SqftSource)
	}
	return string(p.SqftSource) + "/" + detail
}

// Quote is the persisted quote record.
//
// Storage model (DynamoDB):
//   - PK: id
//   - quote_number is unique by construction (time + random suffix)
type Quote struct {
	ID                   string      `json:"id"`
	QuoteNumber          string      `json:"quote_number"`
	Customer             Customer    `json:"customer"`
	Vehicle              Vehicle     `json:"vehicle"`
	Pricing              Pricing     `json:"pricing"`
	Status               QuoteStatus `json:"status"`
	EmailSent            bool        `json:"email_sent"`
	Source               string      `json:"source"`
	AIGenerated          bool        `json:"ai_generated"`
	SourceConversationID string      `json:"source_conversation_id,omitempty"`
	SourceDraftID        string      `json:"source_draft_id,omitempty"`
	OrganizationID       string      `json:"organization_id,omitempty"`
	CreatedBy            string      `json:"created_by,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

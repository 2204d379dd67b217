package entities

import "time"

// DraftStatus represents the lifecycle of a quote draft.
type DraftStatus string

const (
	DraftStatusDraft    DraftStatus = "draft"
	DraftStatusApproved DraftStatus = "approved"
	DraftStatusRejected DraftStatus = "rejected"
	DraftStatusSent     DraftStatus = "sent"
)

// QuoteDraft is a quote produced by an actor without execution authority.
// It carries the same computed pricing as a Quote and is promoted into one
// when an authorized actor executes it.
type QuoteDraft struct {
	ID              string      `json:"id"`
	SourceAgent     string      `json:"source_agent"`
	Confidence      float64     `json:"confidence"`
	Customer        Customer    `json:"customer"`
	Vehicle         Vehicle     `json:"vehicle"`
	Pricing         Pricing     `json:"pricing"`
	OriginalMessage string      `json:"original_message,omitempty"`
	Source          string      `json:"source,omitempty"`
	ConversationID  string      `json:"conversation_id,omitempty"`
	OrganizationID  string      `json:"organization_id,omitempty"`
	Status          DraftStatus `json:"status"`
	ApprovedBy      string      `json:"approved_by,omitempty"`
	QuoteID         string      `json:"quote_id,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// Processed reports whether the draft has left the draft state.
func (d QuoteDraft) Processed() bool {
	return d.Status != DraftStatusDraft
}

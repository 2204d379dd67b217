package entities

import (
	"encoding/json"
	"time"
)

// EventType is the closed set of audit events the quote flow emits.
type EventType string

const (
	EventQuoteCreated     EventType = "quote_created"
	EventQuoteDrafted     EventType = "quote_drafted"
	EventDraftCreated     EventType = "draft_created"
	EventDraftApproved    EventType = "draft_approved"
	EventDraftRejected    EventType = "draft_rejected"
	EventEmailSent        EventType = "email_sent"
	EventEmailFailed      EventType = "email_failed"
	EventEscalationSent   EventType = "escalation_sent"
	EventTaskCreated      EventType = "task_created"
	EventExecutionBlocked EventType = "execution_blocked"
)

// EventPayload is implemented by one struct per event kind, so every event
// carries a known shape instead of an open map.
type EventPayload interface {
	EventType() EventType
}

// ConversationEvent is an append-only audit record. Events are never updated
// or deleted.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (conversation_id-index): conversation_id, created_at
type ConversationEvent struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversation_id"`
	Type           EventType      `json:"event_type"`
	Actor          string         `json:"actor"`
	Payload        map[string]any `json:"payload"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewConversationEvent flattens a typed payload into the stored event shape.
// ID and CreatedAt are assigned by the caller.
func NewConversationEvent(conversationID, actor string, p EventPayload) ConversationEvent {
	return ConversationEvent{
		ConversationID: conversationID,
		Type:           p.EventType(),
		Actor:          actor,
		Payload:        payloadFields(p),
	}
}

func payloadFields(p EventPayload) map[string]any {
	b, err := json.Marshal(p)
	if err != nil {
		return map[string]any{}
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]any{}
	}
	return out
}

type QuoteCreatedPayload struct {
	QuoteID        string     `json:"quote_id"`
	QuoteNumber    string     `json:"quote_number"`
	MaterialCost   float64    `json:"material_cost"`
	Sqft           float64    `json:"sqft"`
	SqftSource     SizeSource `json:"sqft_source"`
	SizeCategory   string     `json:"size_category,omitempty"`
	SizeMatchedKey string     `json:"size_matched_key,omitempty"`
	NeedsReview    bool       `json:"needs_review"`
}

func (QuoteCreatedPayload) EventType() EventType { return EventQuoteCreated }

type QuoteDraftedPayload struct {
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
	Vehicle     string `json:"vehicle"`
	ProductName string `json:"product_name"`
}

func (QuoteDraftedPayload) EventType() EventType { return EventQuoteDrafted }

type DraftCreatedPayload struct {
	DraftID      string     `json:"draft_id"`
	SourceAgent  string     `json:"source_agent"`
	Confidence   float64    `json:"confidence"`
	MaterialCost float64    `json:"material_cost"`
	Gate         GateResult `json:"gate"`
}

func (DraftCreatedPayload) EventType() EventType { return EventDraftCreated }

type DraftApprovedPayload struct {
	DraftID     string `json:"draft_id"`
	QuoteID     string `json:"quote_id"`
	QuoteNumber string `json:"quote_number"`
	ApprovedBy  string `json:"approved_by"`
}

func (DraftApprovedPayload) EventType() EventType { return EventDraftApproved }

type DraftRejectedPayload struct {
	DraftID    string `json:"draft_id"`
	RejectedBy string `json:"rejected_by"`
	Reason     string `json:"reason,omitempty"`
}

func (DraftRejectedPayload) EventType() EventType { return EventDraftRejected }

type EmailSentPayload struct {
	QuoteID   string `json:"quote_id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	MessageID string `json:"message_id,omitempty"`
}

func (EmailSentPayload) EventType() EventType { return EventEmailSent }

type EmailFailedPayload struct {
	QuoteID   string `json:"quote_id"`
	Recipient string `json:"recipient"`
	Error     string `json:"error"`
}

func (EmailFailedPayload) EventType() EventType { return EventEmailFailed }

type EscalationSentPayload struct {
	QuoteID string `json:"quote_id"`
	TaskID  string `json:"task_id,omitempty"`
	Reason  string `json:"reason"`
}

func (EscalationSentPayload) EventType() EventType { return EventEscalationSent }

type TaskCreatedPayload struct {
	TaskID   string       `json:"task_id"`
	QuoteID  string       `json:"quote_id"`
	Priority TaskPriority `json:"priority"`
}

func (TaskCreatedPayload) EventType() EventType { return EventTaskCreated }

type ExecutionBlockedPayload struct {
	DraftID string     `json:"draft_id,omitempty"`
	Gate    GateResult `json:"gate"`
}

func (ExecutionBlockedPayload) EventType() EventType { return EventExecutionBlocked }

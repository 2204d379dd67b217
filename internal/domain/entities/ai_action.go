package entities

import "time"

type AIActionStatus string

const (
	AIActionStatusPending  AIActionStatus = "pending"
	AIActionStatusApproved AIActionStatus = "approved"
	AIActionStatusRejected AIActionStatus = "rejected"
)

// AIAction records an intent produced by an agent that still needs a human
// (or an elevated actor) to act on it.
type AIAction struct {
	ID          string         `json:"id"`
	ActionType  string         `json:"action_type"`
	Status      AIActionStatus `json:"status"`
	SourceAgent string         `json:"source_agent"`
	DraftID     string         `json:"draft_id"`
	Summary     string         `json:"summary"`
	CreatedAt   time.Time      `json:"created_at"`
}

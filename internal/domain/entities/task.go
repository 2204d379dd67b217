package entities

import "time"

type TaskPriority string

const (
	TaskPriorityNormal TaskPriority = "normal"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// Task is a follow-up item for a human owner, created best-effort after a
// quote goes out.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    TaskPriority `json:"priority"`
	Owner       string       `json:"owner"`
	QuoteID     string       `json:"quote_id"`
	Status      string       `json:"status"`
	DueAt       time.Time    `json:"due_at"`
	CreatedAt   time.Time    `json:"created_at"`
}

// SequenceEnrollment enrolls a customer into an email follow-up sequence.
type SequenceEnrollment struct {
	ID            string    `json:"id"`
	Sequence      string    `json:"sequence"`
	CustomerEmail string    `json:"customer_email"`
	QuoteID       string    `json:"quote_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

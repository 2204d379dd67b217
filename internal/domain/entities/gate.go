package entities

// ExecutionScope is the category of actions an actor may finalize.
type ExecutionScope string

const (
	ScopeNone    ExecutionScope = "none"
	ScopeQuote   ExecutionScope = "quote"
	ScopeOrder   ExecutionScope = "order"
	ScopeContent ExecutionScope = "content"
)

// Action names checked by the execution gate.
const (
	ActionCreateQuote     = "create_quote"
	ActionExecuteQuote    = "execute_quote"
	ActionSendQuoteEmail  = "send_quote_email"
	ActionCreateOrder     = "create_order"
	ActionExecuteOrder    = "execute_order"
	ActionChargeCustomer  = "charge_customer"
	ActionPublishContent  = "publish_content"
	ActionScheduleContent = "schedule_content"
)

// GateResult is the outcome of an execution gate check. It is never persisted
// on its own; it is echoed to callers and copied into audit events.
type GateResult struct {
	Proceed          bool           `json:"proceed"`
	Reason           string         `json:"reason,omitempty"`
	ConvertToPending bool           `json:"convert_to_pending"`
	Actor            string         `json:"actor"`
	Scope            ExecutionScope `json:"scope"`
	Action           string         `json:"action"`
}

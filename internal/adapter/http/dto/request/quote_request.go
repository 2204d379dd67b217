package request

// CreateQuoteFromChatRequest is the create-quote-from-chat body.
type CreateQuoteFromChatRequest struct {
	ConversationID string `json:"conversation_id"`
	CustomerFields
	VehicleFields
	ProductFields
	SendEmail      *bool  `json:"send_email"`
	OrganizationID string `json:"organization_id"`
	// AgentID is set when an agent calls this endpoint on its own behalf.
	AgentID string `json:"agent_id"`
	Source  string `json:"source"`
}

func (r CreateQuoteFromChatRequest) Validate() error {
	if err := required("customer_email", r.CustomerEmail); err != nil {
		return err
	}
	if err := r.VehicleFields.validate(); err != nil {
		return err
	}
	return r.ProductFields.validate()
}

// QuickQuoteRequest prices a vehicle without creating anything.
type QuickQuoteRequest struct {
	VehicleFields
	ProductFields
}

func (r QuickQuoteRequest) Validate() error {
	if err := r.VehicleFields.validate(); err != nil {
		return err
	}
	return r.ProductFields.validate()
}

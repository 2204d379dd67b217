package request

// CreateQuoteDraftRequest is the create-quote-draft body.
type CreateQuoteDraftRequest struct {
	SourceAgent string   `json:"source_agent"`
	Confidence  *float64 `json:"confidence"`
	CustomerFields
	VehicleFields
	ProductFields
	OriginalMessage string `json:"original_message"`
	Source          string `json:"source"`
	ConversationID  string `json:"conversation_id"`
	OrganizationID  string `json:"organization_id"`
}

func (r CreateQuoteDraftRequest) Validate() error {
	if err := required("source_agent", r.SourceAgent); err != nil {
		return err
	}
	if err := required("customer_email", r.CustomerEmail); err != nil {
		return err
	}
	if r.Confidence != nil && (*r.Confidence < 0 || *r.Confidence > 1) {
		return &ValidationError{Field: "confidence", Reason: "must be between 0 and 1"}
	}
	if err := r.VehicleFields.validate(); err != nil {
		return err
	}
	return r.ProductFields.validate()
}

// ResolveConfidence defaults a missing confidence to 0.5.
func (r CreateQuoteDraftRequest) ResolveConfidence() float64 {
	if r.Confidence == nil {
		return 0.5
	}
	return *r.Confidence
}

// ExecuteQuoteDraftRequest is the execute-quote-draft body.
type ExecuteQuoteDraftRequest struct {
	DraftID          string `json:"draft_id"`
	ApprovingAgent   string `json:"approving_agent"`
	ApprovedByUserID string `json:"approved_by_user_id"`
}

func (r ExecuteQuoteDraftRequest) Validate() error {
	return required("draft_id", r.DraftID)
}

// RejectQuoteDraftRequest is the reject-quote-draft body.
type RejectQuoteDraftRequest struct {
	DraftID          string `json:"draft_id"`
	RejectingAgent   string `json:"rejecting_agent"`
	RejectedByUserID string `json:"rejected_by_user_id"`
	Reason           string `json:"reason"`
}

func (r RejectQuoteDraftRequest) Validate() error {
	return required("draft_id", r.DraftID)
}

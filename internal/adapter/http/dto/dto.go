package dto

// CreateMandateRequest is the request body for mandate creation.
type CreateMandateRequest struct {
	Kind        string  `json:"kind" binding:"required,oneof=INTENT CART PAYMENT"`
	Amount      int64   `json:"amount" binding:"required,gt=0"`
	Currency    string  `json:"currency" binding:"required,len=3"`
	Payer       string  `json:"payer" binding:"required,max=100"`
	Payee       string  `json:"payee" binding:"required,max=100"`
	AgentID     string  `json:"agent_id" binding:"required,max=100"`
	Purpose     string  `json:"purpose,omitempty" binding:"max=500"`
	DerivedFrom *string `json:"derived_from,omitempty"`
}

// ConvertRequest is the request body for mandate conversion.
type ConvertRequest struct {
	TargetKind string `json:"target_kind" binding:"required,oneof=CART PAYMENT"`
}

// AssessRequest is the request body for risk assessment.
type AssessRequest struct {
	PayerHistory *PayerHistory `json:"payer_history,omitempty"`
}

// PayerHistory mirrors domain.PayerHistory for the API surface.
type PayerHistory struct {
	PriorSettlements int `json:"prior_settlements" binding:"gte=0"`
	PriorRevocations int `json:"prior_revocations" binding:"gte=0"`
}

// WorkflowRequest is the request body for the end-to-end demo run.
type WorkflowRequest struct {
	Amount       int64         `json:"amount" binding:"required,gt=0"`
	Currency     string        `json:"currency" binding:"required,len=3"`
	Payer        string        `json:"payer" binding:"required,max=100"`
	Payee        string        `json:"payee" binding:"required,max=100"`
	AgentID      string        `json:"agent_id" binding:"required,max=100"`
	Purpose      string        `json:"purpose,omitempty" binding:"max=500"`
	PayerHistory *PayerHistory `json:"payer_history,omitempty"`
}

// MandateResponse is the response body for mandate results.
type MandateResponse struct {
	ID          string        `json:"id"`
	Kind        string        `json:"kind"`
	Amount      int64         `json:"amount"`
	Currency    string        `json:"currency"`
	Payer       string        `json:"payer"`
	Payee       string        `json:"payee"`
	AgentID     string        `json:"agent_id"`
	State       string        `json:"state"`
	Purpose     string        `json:"purpose,omitempty"`
	Risk        *RiskResponse `json:"risk,omitempty"`
	DerivedFrom *string       `json:"derived_from,omitempty"`
	CreatedAt   string        `json:"created_at"`
	UpdatedAt   string        `json:"updated_at"`
}

// RiskResponse is the embedded risk assessment.
type RiskResponse struct {
	Tier      string   `json:"tier"`
	Score     int      `json:"score"`
	Rationale []string `json:"rationale"`
}

// AuditEventResponse is the response body for audit events.
type AuditEventResponse struct {
	Seq       uint64 `json:"seq"`
	Kind      string `json:"kind"`
	MandateID string `json:"mandate_id"`
	AgentID   string `json:"agent_id"`
	Details   string `json:"details,omitempty"`
	Signature string `json:"signature"`
	Timestamp string `json:"timestamp"`
	Verified  bool   `json:"verified"`
}

// WorkflowResponse is the response body for a completed workflow run.
type WorkflowResponse struct {
	Intent     MandateResponse     `json:"intent"`
	Payment    MandateResponse     `json:"payment"`
	Settlement *SettlementResponse `json:"settlement,omitempty"`
}

// SettlementResponse mirrors domain.SettlementResult.
type SettlementResponse struct {
	TransactionID string `json:"transaction_id"`
	Rail          string `json:"rail"`
	Status        string `json:"status"`
	SettledAt     string `json:"settled_at"`
}

// MandateListResponse wraps the mandate registry listing.
type MandateListResponse struct {
	Items []MandateResponse `json:"items"`
	Total int               `json:"total"`
}

// AuditListResponse wraps an audit history listing.
type AuditListResponse struct {
	Items []AuditEventResponse `json:"items"`
	Total int                  `json:"total"`
}

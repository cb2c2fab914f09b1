package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"mandate-gateway/internal/core/domain"
)

// Signer computes opaque signature tokens over canonical event
// serializations. A placeholder integrity mechanism: same input always
// yields the same token, any payload change yields a different one.
// A real cryptographic signer can be substituted without touching the
// ledger logic.
type Signer interface {
	Sign(payload string) string
	Verify(payload string, token string) bool
}

// RiskClassifier scores a payment into a Low/Medium/High tier.
// Pure: deterministic for identical inputs, no side effects, no I/O.
type RiskClassifier interface {
	Classify(mandateID string, amount int64, currency string, history *domain.PayerHistory) domain.RiskAssessment
}

// SettlementGateway is the external settlement rail. Per contract it
// never fails with an error: failures (including timeouts) surface as
// a result with FAILED status, so callers branch on status.
type SettlementGateway interface {
	Settle(ctx context.Context, m *domain.Mandate) domain.SettlementResult
}

// ConsentRegistry records user consent with the central-bank hub.
// The bundled implementation is a mock; the returned note is carried
// into the ConsentRegistered audit event.
type ConsentRegistry interface {
	Register(ctx context.Context, m *domain.Mandate) (string, error)
}

// --- Service Ports (Business Logic) ---

// CreateMandateRequest holds validated input for mandate creation.
type CreateMandateRequest struct {
	Kind        domain.MandateKind
	Amount      int64
	Currency    string
	Payer       string
	Payee       string
	AgentID     string
	Purpose     string
	DerivedFrom *string
}

// MandateService is the mandate store plus lifecycle state machine.
// Mutating operations are serialized per mandate identifier.
type MandateService interface {
	Create(ctx context.Context, req CreateMandateRequest) (*domain.Mandate, error)
	RegisterConsent(ctx context.Context, mandateID string) (*domain.Mandate, error)
	Convert(ctx context.Context, mandateID string, target domain.MandateKind) (*domain.Mandate, error)
	AssessRisk(ctx context.Context, mandateID string, assessment domain.RiskAssessment) (*domain.Mandate, error)
	Settle(ctx context.Context, mandateID string, result domain.SettlementResult) (*domain.Mandate, error)
	Revoke(ctx context.Context, mandateID string) (*domain.Mandate, error)
	Get(ctx context.Context, mandateID string) (*domain.Mandate, error)
	List(ctx context.Context) ([]domain.Mandate, error)
	// History merges audit events across the derivedFrom chain so the
	// history of a Payment mandate includes its Intent's events.
	History(ctx context.Context, mandateID string) ([]domain.AuditEvent, error)
}

// WorkflowRequest holds input for the end-to-end consent workflow.
type WorkflowRequest struct {
	Amount   int64
	Currency string
	Payer    string
	Payee    string
	AgentID  string
	Purpose  string
	History  *domain.PayerHistory
}

// WorkflowResult is the outcome of a completed happy-path run.
type WorkflowResult struct {
	Intent     *domain.Mandate
	Payment    *domain.Mandate
	Settlement *domain.SettlementResult
}

// WorkflowService orchestrates the consent/registration sequence:
// create Intent -> register consent -> convert to Payment -> risk
// check -> settle. It holds no state of its own.
type WorkflowService interface {
	Run(ctx context.Context, req WorkflowRequest) (*WorkflowResult, error)
	AssessRisk(ctx context.Context, mandateID string, history *domain.PayerHistory) (*domain.Mandate, error)
	Settle(ctx context.Context, mandateID string) (*domain.Mandate, error)
}

// ExportService produces and restores state snapshots.
type ExportService interface {
	Export(ctx context.Context) (*domain.Snapshot, error)
	Import(ctx context.Context, snap *domain.Snapshot) error
}

package domain

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MandateKind discriminates the three mandate variants in the
// Intent -> {Cart, Payment} derivation chain.
type MandateKind string

const (
	KindIntent  MandateKind = "INTENT"
	KindCart    MandateKind = "CART"
	KindPayment MandateKind = "PAYMENT"
)

// MandateState represents the lifecycle state of a mandate.
type MandateState string

const (
	StateDraft             MandateState = "DRAFT"
	StateConsentRegistered MandateState = "CONSENT_REGISTERED"
	StateConverted         MandateState = "CONVERTED"
	StateRiskAssessed      MandateState = "RISK_ASSESSED"
	StateSettled           MandateState = "SETTLED"
	StateRevoked           MandateState = "REVOKED"
)

// Mandate is a recorded authorization of a payment-related intent,
// cart, or payment. Amount is in base currency units (AED by default).
type Mandate struct {
	ID          string          `json:"id"`
	Kind        MandateKind     `json:"kind"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Payer       string          `json:"payer"`
	Payee       string          `json:"payee"`
	AgentID     string          `json:"agent_id"`
	State       MandateState    `json:"state"`
	Purpose     string          `json:"purpose,omitempty"`
	Risk        *RiskAssessment `json:"risk,omitempty"`
	DerivedFrom *string         `json:"derived_from,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsTerminal returns true if no further transitions are permitted.
func (m *Mandate) IsTerminal() bool {
	return m.State == StateSettled || m.State == StateRevoked
}

// CanTransition reports whether the lifecycle edge from the current
// state to target is allowed for this mandate's kind.
func (m *Mandate) CanTransition(target MandateState) bool {
	if target == StateRevoked {
		return !m.IsTerminal()
	}

	switch m.State {
	case StateDraft:
		return target == StateConsentRegistered
	case StateConsentRegistered:
		return target == StateConverted
	case StateConverted:
		// A converted source may derive again (state unchanged);
		// only Payment mandates proceed to risk assessment.
		if target == StateConverted {
			return true
		}
		return target == StateRiskAssessed && m.Kind == KindPayment
	case StateRiskAssessed:
		return target == StateSettled && m.Kind == KindPayment
	default:
		return false
	}
}

// CanDeriveKind reports whether a mandate of kind from may act as the
// predecessor of a mandate of kind to.
func CanDeriveKind(from, to MandateKind) bool {
	switch from {
	case KindIntent:
		return to == KindCart || to == KindPayment
	case KindCart, KindPayment:
		return false
	default:
		return false
	}
}

// NewMandateID generates an identifier in the M-XXXXXXXXXX format.
func NewMandateID() string {
	id := uuid.New()
	return "M-" + strings.ToUpper(hex.EncodeToString(id[:]))[:10]
}

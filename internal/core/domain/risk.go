package domain

import "time"

// RiskTier is the coarse settlement-risk classification.
type RiskTier string

const (
	RiskLow    RiskTier = "LOW"
	RiskMedium RiskTier = "MEDIUM"
	RiskHigh   RiskTier = "HIGH"
)

// RiskAssessment is the immutable output of risk screening for a
// Payment mandate. Produced once, before settlement.
type RiskAssessment struct {
	MandateID  string    `json:"mandate_id"`
	Tier       RiskTier  `json:"tier"`
	Score      int       `json:"score"` // 0-100
	Rationale  []string  `json:"rationale"`
	AssessedAt time.Time `json:"assessed_at"`
}

// PayerHistory summarises prior activity of a payer. It feeds rationale
// tags only; the tier is a pure function of the amount.
type PayerHistory struct {
	PriorSettlements int `json:"prior_settlements"`
	PriorRevocations int `json:"prior_revocations"`
}

package service

import (
	"time"

	"mandate-gateway/internal/core/domain"
)

// Risk policy defaults, in base currency units.
const (
	DefaultLowCeiling    int64 = 1_000
	DefaultMediumCeiling int64 = 10_000
)

// RiskService implements ports.RiskClassifier. Classification is a
// pure function of the inputs: amount <= low ceiling is LOW, amount <=
// medium ceiling is MEDIUM, anything above is HIGH. Boundaries are
// strict (<=), not tie-broken upward. Payer history and currency only
// contribute rationale tags, never the tier.
type RiskService struct {
	lowCeiling    int64
	mediumCeiling int64
	baseCurrency  string
}

// NewRiskService creates a classifier with the given thresholds.
// Zero ceilings fall back to the policy defaults; an empty base
// currency falls back to AED.
func NewRiskService(lowCeiling, mediumCeiling int64, baseCurrency string) *RiskService {
	if lowCeiling <= 0 {
		lowCeiling = DefaultLowCeiling
	}
	if mediumCeiling <= 0 {
		mediumCeiling = DefaultMediumCeiling
	}
	if baseCurrency == "" {
		baseCurrency = "AED"
	}
	return &RiskService{
		lowCeiling:    lowCeiling,
		mediumCeiling: mediumCeiling,
		baseCurrency:  baseCurrency,
	}
}

// Classify scores a payment request into a risk tier.
func (s *RiskService) Classify(mandateID string, amount int64, currency string, history *domain.PayerHistory) domain.RiskAssessment {
	var (
		tier      domain.RiskTier
		rationale []string
	)

	switch {
	case amount <= s.lowCeiling:
		tier = domain.RiskLow
		rationale = append(rationale, "amount_within_low_ceiling")
	case amount <= s.mediumCeiling:
		tier = domain.RiskMedium
		rationale = append(rationale, "amount_within_medium_ceiling")
	default:
		tier = domain.RiskHigh
		rationale = append(rationale, "amount_above_medium_ceiling")
	}

	if currency != s.baseCurrency {
		rationale = append(rationale, "non_base_currency")
	}
	if history != nil {
		if history.PriorRevocations > 0 {
			rationale = append(rationale, "payer_prior_revocations")
		}
		if history.PriorSettlements > 0 {
			rationale = append(rationale, "payer_prior_settlements")
		}
	}

	return domain.RiskAssessment{
		MandateID:  mandateID,
		Tier:       tier,
		Score:      s.score(amount),
		Rationale:  rationale,
		AssessedAt: time.Now().UTC(),
	}
}

// score maps the amount onto 0-100 against the medium ceiling.
func (s *RiskService) score(amount int64) int {
	if amount <= 0 {
		return 0
	}
	if amount > s.mediumCeiling {
		return 100
	}
	return int(amount * 100 / s.mediumCeiling)
}

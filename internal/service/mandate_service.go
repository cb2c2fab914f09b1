package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"mandate-gateway/internal/core/domain"
	"mandate-gateway/internal/core/ports"
	"mandate-gateway/internal/metrics"
	"mandate-gateway/pkg/apperror"

	"github.com/rs/zerolog"
)

// MandateServiceImpl implements ports.MandateService: the mandate
// store plus the lifecycle state machine. Every mutating operation is
// serialized per mandate ID; the audit event is appended before the
// state change applies, so a failed append (LedgerExhausted) leaves
// the mandate untouched.
type MandateServiceImpl struct {
	repo    ports.MandateRepository
	ledger  ports.AuditLedger
	consent ports.ConsentRegistry
	met     *metrics.Metrics
	log     zerolog.Logger
	locks   sync.Map // mandate ID -> *sync.Mutex
}

// NewMandateService creates a new MandateServiceImpl.
// consent and met may be nil (consent registration note is skipped,
// metrics are no-ops).
func NewMandateService(
	repo ports.MandateRepository,
	ledger ports.AuditLedger,
	consent ports.ConsentRegistry,
	met *metrics.Metrics,
	log zerolog.Logger,
) *MandateServiceImpl {
	return &MandateServiceImpl{
		repo:    repo,
		ledger:  ledger,
		consent: consent,
		met:     met,
		log:     log,
	}
}

// lockFor returns the mutex serializing transitions on one mandate.
func (s *MandateServiceImpl) lockFor(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Create validates the derivation invariant, records a Created audit
// event and inserts the mandate in Draft state.
func (s *MandateServiceImpl) Create(ctx context.Context, req ports.CreateMandateRequest) (*domain.Mandate, error) {
	if req.Amount <= 0 {
		return nil, apperror.Validation("amount must be positive")
	}
	switch req.Kind {
	case domain.KindIntent, domain.KindCart, domain.KindPayment:
	default:
		return nil, apperror.Validation(fmt.Sprintf("unknown mandate kind %q", req.Kind))
	}

	if req.DerivedFrom != nil {
		if err := s.checkDerivation(ctx, *req.DerivedFrom, req.Kind); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	m := &domain.Mandate{
		ID:          domain.NewMandateID(),
		Kind:        req.Kind,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Payer:       req.Payer,
		Payee:       req.Payee,
		AgentID:     req.AgentID,
		State:       domain.StateDraft,
		Purpose:     req.Purpose,
		DerivedFrom: req.DerivedFrom,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	details := eventDetails(map[string]any{
		"kind":     m.Kind,
		"amount":   m.Amount,
		"currency": m.Currency,
		"payer":    m.Payer,
		"payee":    m.Payee,
		"purpose":  m.Purpose,
	})
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventCreated,
		MandateID: m.ID,
		AgentID:   m.AgentID,
		Details:   details,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert mandate: %w", err))
	}

	s.met.IncMandateCreated(string(m.Kind))
	s.log.Info().
		Str("mandate_id", m.ID).
		Str("kind", string(m.Kind)).
		Int64("amount", m.Amount).
		Str("currency", m.Currency).
		Msg("mandate created")

	return m, nil
}

// RegisterConsent transitions Draft -> ConsentRegistered, recording
// the consent registry's note in the audit event.
func (s *MandateServiceImpl) RegisterConsent(ctx context.Context, mandateID string) (*domain.Mandate, error) {
	mu := s.lockFor(mandateID)
	mu.Lock()
	defer mu.Unlock()

	m, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if !m.CanTransition(domain.StateConsentRegistered) {
		return nil, apperror.ErrInvalidTransition(string(m.State), string(domain.StateConsentRegistered))
	}

	var note string
	if s.consent != nil {
		note, err = s.consent.Register(ctx, m)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventConsentRegistered,
		MandateID: m.ID,
		AgentID:   m.AgentID,
		Details:   eventDetails(map[string]any{"note": note}),
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	m.State = domain.StateConsentRegistered
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update mandate: %w", err))
	}

	s.met.IncTransition(string(domain.StateConsentRegistered))
	s.log.Info().Str("mandate_id", m.ID).Msg("consent registered")
	return m, nil
}

// Convert derives a new mandate of the target kind from the source.
// The source must have registered consent; an already converted source
// may derive again (one Intent can fund multiple Carts or Payments).
func (s *MandateServiceImpl) Convert(ctx context.Context, mandateID string, target domain.MandateKind) (*domain.Mandate, error) {
	mu := s.lockFor(mandateID)
	mu.Lock()
	defer mu.Unlock()

	src, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if !src.CanTransition(domain.StateConverted) {
		return nil, apperror.ErrInvalidTransition(string(src.State), string(domain.StateConverted))
	}
	if !domain.CanDeriveKind(src.Kind, target) {
		return nil, apperror.ErrInvalidDerivation(
			fmt.Sprintf("%s is not an allowed successor of %s", target, src.Kind))
	}

	now := time.Now().UTC()
	derived := &domain.Mandate{
		ID:          domain.NewMandateID(),
		Kind:        target,
		Amount:      src.Amount,
		Currency:    src.Currency,
		Payer:       src.Payer,
		Payee:       src.Payee,
		AgentID:     src.AgentID,
		State:       domain.StateConverted,
		Purpose:     src.Purpose,
		DerivedFrom: &src.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	details := eventDetails(map[string]any{
		"derived_mandate_id": derived.ID,
		"target_kind":        target,
	})
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventConverted,
		MandateID: src.ID,
		AgentID:   src.AgentID,
		Details:   details,
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, derived); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("insert derived mandate: %w", err))
	}
	src.State = domain.StateConverted
	src.UpdatedAt = now
	if err := s.repo.Update(ctx, src); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update source mandate: %w", err))
	}

	s.met.IncTransition(string(domain.StateConverted))
	s.log.Info().
		Str("mandate_id", src.ID).
		Str("derived_mandate_id", derived.ID).
		Str("target_kind", string(target)).
		Msg("mandate converted")

	return derived, nil
}

// AssessRisk attaches an immutable risk assessment to a Converted
// Payment mandate and transitions it to RiskAssessed.
func (s *MandateServiceImpl) AssessRisk(ctx context.Context, mandateID string, assessment domain.RiskAssessment) (*domain.Mandate, error) {
	mu := s.lockFor(mandateID)
	mu.Lock()
	defer mu.Unlock()

	m, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if !m.CanTransition(domain.StateRiskAssessed) {
		return nil, apperror.ErrInvalidTransition(string(m.State), string(domain.StateRiskAssessed))
	}
	if assessment.MandateID != "" && assessment.MandateID != m.ID {
		return nil, apperror.Validation("assessment mandate id mismatch")
	}
	assessment.MandateID = m.ID

	now := time.Now().UTC()
	assessJSON, err := json.Marshal(assessment)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal assessment: %w", err))
	}
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventRiskAssessed,
		MandateID: m.ID,
		AgentID:   m.AgentID,
		Details:   string(assessJSON),
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	m.Risk = &assessment
	m.State = domain.StateRiskAssessed
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update mandate: %w", err))
	}

	s.met.IncRiskAssessed(string(assessment.Tier))
	s.log.Info().
		Str("mandate_id", m.ID).
		Str("tier", string(assessment.Tier)).
		Int("score", assessment.Score).
		Msg("risk assessed")

	return m, nil
}

// Settle records a successful rail result and transitions
// RiskAssessed -> Settled. HIGH-risk mandates are refused with
// RiskBlocked; a FAILED rail result surfaces as SettlementFailed and
// leaves the mandate in RiskAssessed, which remains resumable.
func (s *MandateServiceImpl) Settle(ctx context.Context, mandateID string, result domain.SettlementResult) (*domain.Mandate, error) {
	mu := s.lockFor(mandateID)
	mu.Lock()
	defer mu.Unlock()

	m, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if !m.CanTransition(domain.StateSettled) {
		return nil, apperror.ErrInvalidTransition(string(m.State), string(domain.StateSettled))
	}
	if m.Risk != nil && m.Risk.Tier == domain.RiskHigh {
		s.met.IncRiskBlocked()
		return nil, apperror.ErrRiskBlocked()
	}

	s.met.IncSettlement(string(result.Rail), string(result.Status))
	if result.Status != domain.SettlementSuccess {
		s.log.Warn().
			Str("mandate_id", m.ID).
			Str("transaction_id", result.TransactionID).
			Str("rail", string(result.Rail)).
			Msg("settlement failed, mandate remains risk-assessed")
		return nil, apperror.ErrSettlementFailed(result.TransactionID)
	}

	now := time.Now().UTC()
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal settlement result: %w", err))
	}
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventSettled,
		MandateID: m.ID,
		AgentID:   m.AgentID,
		Details:   string(resultJSON),
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	m.State = domain.StateSettled
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update mandate: %w", err))
	}

	s.log.Info().
		Str("mandate_id", m.ID).
		Str("transaction_id", result.TransactionID).
		Str("rail", string(result.Rail)).
		Msg("mandate settled")

	return m, nil
}

// Revoke transitions any non-terminal mandate to Revoked. Revoking an
// already revoked mandate is a no-op returning the existing record.
func (s *MandateServiceImpl) Revoke(ctx context.Context, mandateID string) (*domain.Mandate, error) {
	mu := s.lockFor(mandateID)
	mu.Lock()
	defer mu.Unlock()

	m, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	if m.State == domain.StateRevoked {
		return m, nil
	}
	if !m.CanTransition(domain.StateRevoked) {
		return nil, apperror.ErrInvalidTransition(string(m.State), string(domain.StateRevoked))
	}

	now := time.Now().UTC()
	if _, err := s.ledger.Append(ctx, &domain.AuditEvent{
		Kind:      domain.EventRevoked,
		MandateID: m.ID,
		AgentID:   m.AgentID,
		Details:   eventDetails(map[string]any{"previous_state": m.State}),
		Timestamp: now,
	}); err != nil {
		return nil, err
	}

	m.State = domain.StateRevoked
	m.UpdatedAt = now
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update mandate: %w", err))
	}

	s.met.IncTransition(string(domain.StateRevoked))
	s.log.Info().Str("mandate_id", m.ID).Msg("mandate revoked")
	return m, nil
}

// Get returns a mandate by ID.
func (s *MandateServiceImpl) Get(ctx context.Context, mandateID string) (*domain.Mandate, error) {
	return s.mustGet(ctx, mandateID)
}

// List returns all mandates in insertion order.
func (s *MandateServiceImpl) List(ctx context.Context) ([]domain.Mandate, error) {
	return s.repo.List(ctx)
}

// History returns the mandate's audit events merged with those of its
// ancestors in the derivation chain, ascending by sequence number.
func (s *MandateServiceImpl) History(ctx context.Context, mandateID string) ([]domain.AuditEvent, error) {
	m, err := s.mustGet(ctx, mandateID)
	if err != nil {
		return nil, err
	}

	chain := map[string]bool{m.ID: true}
	for cur := m; cur.DerivedFrom != nil; {
		parent, err := s.repo.GetByID(ctx, *cur.DerivedFrom)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("walk derivation chain: %w", err))
		}
		if parent == nil || chain[parent.ID] {
			break
		}
		chain[parent.ID] = true
		cur = parent
	}

	all, err := s.ledger.History(ctx, "")
	if err != nil {
		return nil, err
	}
	var out []domain.AuditEvent
	for _, e := range all {
		if chain[e.MandateID] {
			out = append(out, e)
		}
	}
	return out, nil
}

// checkDerivation enforces the predecessor invariant for explicit
// derivedFrom references on Create.
func (s *MandateServiceImpl) checkDerivation(ctx context.Context, fromID string, kind domain.MandateKind) error {
	pred, err := s.repo.GetByID(ctx, fromID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lookup predecessor: %w", err))
	}
	if pred == nil {
		return apperror.ErrInvalidDerivation(fmt.Sprintf("predecessor %s not found", fromID))
	}
	if !domain.CanDeriveKind(pred.Kind, kind) {
		return apperror.ErrInvalidDerivation(
			fmt.Sprintf("%s is not an allowed successor of %s", kind, pred.Kind))
	}
	if pred.State == domain.StateRevoked {
		return apperror.ErrInvalidDerivation(fmt.Sprintf("predecessor %s is revoked", fromID))
	}
	return nil
}

// mustGet fetches a mandate or returns NotFound.
func (s *MandateServiceImpl) mustGet(ctx context.Context, id string) (*domain.Mandate, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get mandate: %w", err))
	}
	if m == nil {
		return nil, apperror.ErrMandateNotFound(id)
	}
	return m, nil
}

// eventDetails marshals a details map, falling back to empty on error.
func eventDetails(fields map[string]any) string {
	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(b)
}

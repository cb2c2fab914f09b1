package service

import (
	"context"
	"encoding/json"
	"time"

	"mandate-gateway/internal/core/domain"
	"mandate-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// WorkflowServiceImpl implements ports.WorkflowService. It drives the
// happy-path sequence and owns the only external I/O in the core: the
// bounded settlement rail call. It holds no state; every fact is
// re-read from the mandate service on each call. Step errors are
// surfaced unchanged.
type WorkflowServiceImpl struct {
	mandates   ports.MandateService
	classifier ports.RiskClassifier
	rail       ports.SettlementGateway
	timeout    time.Duration
	log        zerolog.Logger
}

// NewWorkflowService creates a new WorkflowServiceImpl. timeout bounds
// the rail call; zero means no bound.
func NewWorkflowService(
	mandates ports.MandateService,
	classifier ports.RiskClassifier,
	rail ports.SettlementGateway,
	timeout time.Duration,
	log zerolog.Logger,
) *WorkflowServiceImpl {
	return &WorkflowServiceImpl{
		mandates:   mandates,
		classifier: classifier,
		rail:       rail,
		timeout:    timeout,
		log:        log,
	}
}

// Run executes the full consent workflow: create Intent -> register
// consent -> convert to Payment -> assess risk -> settle. It stops at
// the first failing step; completed steps stay committed, so a blocked
// or failed settlement leaves the Payment mandate resumable.
func (s *WorkflowServiceImpl) Run(ctx context.Context, req ports.WorkflowRequest) (*ports.WorkflowResult, error) {
	intent, err := s.mandates.Create(ctx, ports.CreateMandateRequest{
		Kind:     domain.KindIntent,
		Amount:   req.Amount,
		Currency: req.Currency,
		Payer:    req.Payer,
		Payee:    req.Payee,
		AgentID:  req.AgentID,
		Purpose:  req.Purpose,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.mandates.RegisterConsent(ctx, intent.ID); err != nil {
		return nil, err
	}

	payment, err := s.mandates.Convert(ctx, intent.ID, domain.KindPayment)
	if err != nil {
		return nil, err
	}

	if _, err := s.AssessRisk(ctx, payment.ID, req.History); err != nil {
		return nil, err
	}

	payment, err = s.Settle(ctx, payment.ID)
	if err != nil {
		return nil, err
	}

	result := &ports.WorkflowResult{Intent: intent, Payment: payment}
	if payment.Risk != nil {
		// Settlement details live in the audit trail; re-read the
		// final event for the caller's convenience.
		events, histErr := s.mandates.History(ctx, payment.ID)
		if histErr == nil && len(events) > 0 {
			last := events[len(events)-1]
			if last.Kind == domain.EventSettled {
				var sr domain.SettlementResult
				if err := decodeDetails(last.Details, &sr); err == nil {
					result.Settlement = &sr
				}
			}
		}
	}

	s.log.Info().
		Str("intent_id", intent.ID).
		Str("payment_id", payment.ID).
		Msg("consent workflow completed")

	return result, nil
}

// AssessRisk classifies the mandate's amount and records the
// assessment on it.
func (s *WorkflowServiceImpl) AssessRisk(ctx context.Context, mandateID string, history *domain.PayerHistory) (*domain.Mandate, error) {
	m, err := s.mandates.Get(ctx, mandateID)
	if err != nil {
		return nil, err
	}
	assessment := s.classifier.Classify(m.ID, m.Amount, m.Currency, history)
	return s.mandates.AssessRisk(ctx, m.ID, assessment)
}

// Settle invokes the rail with the configured timeout and feeds the
// outcome to the mandate store. A timed-out call is a FAILED result,
// never a pending one.
func (s *WorkflowServiceImpl) Settle(ctx context.Context, mandateID string) (*domain.Mandate, error) {
	m, err := s.mandates.Get(ctx, mandateID)
	if err != nil {
		return nil, err
	}

	railCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		railCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	result := s.rail.Settle(railCtx, m)
	return s.mandates.Settle(ctx, m.ID, result)
}

// decodeDetails unmarshals an audit event's JSON details payload.
func decodeDetails(details string, v any) error {
	return json.Unmarshal([]byte(details), v)
}

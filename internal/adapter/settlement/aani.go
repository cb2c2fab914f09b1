// Package settlement provides the mock Aani/UAEFTS settlement rail
// client. It stands in for the instant-payment infrastructure the
// gateway would call in production.
package settlement

import (
	"context"
	"time"

	"mandate-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

// Client simulates the Aani instant rail and the UAEFTS deferred rail.
// Rail selection is by amount: at or below the instant ceiling the
// payment goes out on Aani, above it on UAEFTS. Per the rail contract
// the call never returns an error; failures (including context
// cancellation) are reported as a result with FAILED status.
type Client struct {
	instantCeiling int64
	log            zerolog.Logger

	// failNext forces the next settlement to fail; used by tests and
	// the demo failure hook.
	failNext bool
}

// NewClient creates a rail client. Amounts above instantCeiling are
// routed to the deferred rail.
func NewClient(instantCeiling int64, log zerolog.Logger) *Client {
	return &Client{instantCeiling: instantCeiling, log: log}
}

// FailNext makes the next Settle call report FAILED.
func (c *Client) FailNext() {
	c.failNext = true
}

// Settle executes the payment on the selected rail and returns the
// outcome within a single call.
func (c *Client) Settle(ctx context.Context, m *domain.Mandate) domain.SettlementResult {
	rail := domain.RailInstant
	if m.Amount > c.instantCeiling {
		rail = domain.RailDeferred
	}

	result := domain.SettlementResult{
		TransactionID: domain.NewTransactionID(),
		Rail:          rail,
		Status:        domain.SettlementSuccess,
		SettledAt:     time.Now().UTC(),
	}

	if err := ctx.Err(); err != nil {
		c.log.Warn().
			Str("mandate_id", m.ID).
			Err(err).
			Msg("settlement call cancelled, reporting FAILED")
		result.Status = domain.SettlementFailed
		return result
	}

	if c.failNext {
		c.failNext = false
		result.Status = domain.SettlementFailed
	}

	c.log.Info().
		Str("mandate_id", m.ID).
		Str("transaction_id", result.TransactionID).
		Str("rail", string(rail)).
		Str("status", string(result.Status)).
		Msg("settlement executed")

	return result
}

// Package consent provides the mock CBUAE consent registry. The real
// API Hub integration is out of scope; this collaborator only produces
// the registration note recorded in the audit trail.
package consent

import (
	"context"

	"mandate-gateway/internal/core/domain"

	"github.com/rs/zerolog"
)

const registrationNote = "Consent registered with CBUAE API Hub (mock)"

// CBUAERegistry implements ports.ConsentRegistry against the simulated
// central-bank hub.
type CBUAERegistry struct {
	log zerolog.Logger
}

// NewCBUAERegistry creates the mock registry.
func NewCBUAERegistry(log zerolog.Logger) *CBUAERegistry {
	return &CBUAERegistry{log: log}
}

// Register records consent for the mandate and returns the hub note.
func (r *CBUAERegistry) Register(ctx context.Context, m *domain.Mandate) (string, error) {
	r.log.Info().
		Str("mandate_id", m.ID).
		Str("agent_id", m.AgentID).
		Msg("consent registered with CBUAE hub")
	return registrationNote, nil
}

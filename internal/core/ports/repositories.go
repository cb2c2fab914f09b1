package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"mandate-gateway/internal/core/domain"
)

// MandateRepository defines persistence operations for mandates.
// Implementations own the records; callers receive copies.
type MandateRepository interface {
	Insert(ctx context.Context, m *domain.Mandate) error
	Update(ctx context.Context, m *domain.Mandate) error
	GetByID(ctx context.Context, id string) (*domain.Mandate, error)
	// List returns all mandates in insertion order.
	List(ctx context.Context) ([]domain.Mandate, error)
	// Restore replaces the entire registry with the given mandates,
	// preserving their order. Used by snapshot import.
	Restore(ctx context.Context, mandates []domain.Mandate) error
}

// AuditLedger is the append-only, tamper-evident record of mandate
// lifecycle events. Sequence numbers are strictly increasing and
// gapless per ledger instance.
type AuditLedger interface {
	// Append assigns the next sequence number, signs the event and
	// stores it. Fails only with LedgerExhausted at capacity.
	Append(ctx context.Context, event *domain.AuditEvent) (uint64, error)
	// Verify recomputes the event's signature token and compares.
	// Detects accidental corruption, not adversarial tampering.
	Verify(event *domain.AuditEvent) bool
	// History returns events in ascending sequence order, filtered by
	// mandate ID when mandateID is non-empty.
	History(ctx context.Context, mandateID string) ([]domain.AuditEvent, error)
	// Restore replaces the ledger contents with the given events and
	// continues sequence assignment after the highest imported number.
	Restore(ctx context.Context, events []domain.AuditEvent) error
}

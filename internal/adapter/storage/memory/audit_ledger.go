package memory

import (
	"context"
	"sync"

	"mandate-gateway/internal/core/domain"
	"mandate-gateway/internal/core/ports"
	"mandate-gateway/pkg/apperror"
)

// AuditLedger is the in-memory implementation of ports.AuditLedger.
// Sequence assignment is globally serialized under one mutex so that
// numbers are strictly increasing and gapless across all mandates.
type AuditLedger struct {
	mu       sync.RWMutex
	signer   ports.Signer
	events   []domain.AuditEvent
	nextSeq  uint64
	capacity int
}

// NewAuditLedger creates an empty ledger. capacity bounds the number
// of events; zero or negative means unbounded.
func NewAuditLedger(signer ports.Signer, capacity int) *AuditLedger {
	return &AuditLedger{signer: signer, nextSeq: 1, capacity: capacity}
}

// Append assigns the next sequence number, signs the event over its
// canonical serialization and stores it. At capacity it returns
// LedgerExhausted and stores nothing.
func (l *AuditLedger) Append(ctx context.Context, event *domain.AuditEvent) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.capacity > 0 && len(l.events) >= l.capacity {
		return 0, apperror.ErrLedgerExhausted()
	}

	event.Seq = l.nextSeq
	event.Timestamp = event.Timestamp.UTC()
	event.Signature = l.signer.Sign(event.CanonicalString())

	l.events = append(l.events, *event)
	l.nextSeq++
	return event.Seq, nil
}

// Verify recomputes the signature token and compares.
func (l *AuditLedger) Verify(event *domain.AuditEvent) bool {
	return l.signer.Verify(event.CanonicalString(), event.Signature)
}

// History returns events in ascending sequence order. A non-empty
// mandateID filters to that mandate's events.
func (l *AuditLedger) History(ctx context.Context, mandateID string) ([]domain.AuditEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if mandateID == "" {
		return append([]domain.AuditEvent(nil), l.events...), nil
	}
	var out []domain.AuditEvent
	for _, e := range l.events {
		if e.MandateID == mandateID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Restore replaces the ledger contents. Imported events keep their
// sequence numbers and tokens; assignment continues after the highest.
func (l *AuditLedger) Restore(ctx context.Context, events []domain.AuditEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	restored := append([]domain.AuditEvent(nil), events...)
	var maxSeq uint64
	for i := range restored {
		if restored[i].Seq > maxSeq {
			maxSeq = restored[i].Seq
		}
	}
	l.events = restored
	l.nextSeq = maxSeq + 1
	return nil
}

package domain

import (
	"fmt"
	"time"
)

// EventKind represents the type of audited mandate lifecycle event.
type EventKind string

const (
	EventCreated           EventKind = "CREATED"
	EventConsentRegistered EventKind = "CONSENT_REGISTERED"
	EventConverted         EventKind = "CONVERTED"
	EventRiskAssessed      EventKind = "RISK_ASSESSED"
	EventSettled           EventKind = "SETTLED"
	EventRevoked           EventKind = "REVOKED"
)

// AuditEvent is an append-only, sequenced, signed record of a mandate
// lifecycle transition. Once appended it is never mutated or removed.
type AuditEvent struct {
	Seq       uint64    `json:"seq"`
	Kind      EventKind `json:"kind"`
	MandateID string    `json:"mandate_id"`
	AgentID   string    `json:"agent_id"`
	Details   string    `json:"details,omitempty"` // JSON string
	Signature string    `json:"signature"`
	Timestamp time.Time `json:"timestamp"`
}

// CanonicalString returns the serialization the signature token is
// computed over. Any single-field change yields a different string.
// Format: SEQ|KIND|MANDATE_ID|AGENT_ID|TIMESTAMP
func (e *AuditEvent) CanonicalString() string {
	return fmt.Sprintf("%d|%s|%s|%s|%s",
		e.Seq, e.Kind, e.MandateID, e.AgentID,
		e.Timestamp.UTC().Format(time.RFC3339))
}

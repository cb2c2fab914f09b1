package domain

import "time"

// Snapshot is an exportable copy of all process state: the mandate
// registry in insertion order plus the full audit history. Importing a
// snapshot into a fresh gateway reproduces identifiers, states,
// sequence numbers and signature tokens exactly.
type Snapshot struct {
	ExportedAt time.Time    `json:"exported_at"`
	Mandates   []Mandate    `json:"mandates"`
	Events     []AuditEvent `json:"events"`
}

package domain

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SettlementRail is the payment execution channel.
type SettlementRail string

const (
	RailInstant  SettlementRail = "AANI"   // instant rail
	RailDeferred SettlementRail = "UAEFTS" // deferred/batch rail
)

// SettlementStatus is the outcome reported by the rail.
type SettlementStatus string

const (
	SettlementSuccess SettlementStatus = "SUCCESS"
	SettlementFailed  SettlementStatus = "FAILED"
)

// SettlementResult is the rail's response to a settlement attempt.
// The core records a copy of it into the Settled audit event; it never
// owns the rail.
type SettlementResult struct {
	TransactionID string           `json:"transaction_id"`
	Rail          SettlementRail   `json:"rail"`
	Status        SettlementStatus `json:"status"`
	SettledAt     time.Time        `json:"settled_at"`
}

// NewTransactionID generates an identifier in the TX-XXXXXXXXXXXX format.
func NewTransactionID() string {
	id := uuid.New()
	return "TX-" + strings.ToUpper(hex.EncodeToString(id[:]))[:12]
}

package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMandate_IsTerminal(t *testing.T) {
	tests := []struct {
		name  string
		state MandateState
		want  bool
	}{
		{"draft", StateDraft, false},
		{"consent registered", StateConsentRegistered, false},
		{"converted", StateConverted, false},
		{"risk assessed", StateRiskAssessed, false},
		{"settled", StateSettled, true},
		{"revoked", StateRevoked, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mandate{State: tt.state}
			assert.Equal(t, tt.want, m.IsTerminal())
		})
	}
}

func TestMandate_CanTransition(t *testing.T) {
	tests := []struct {
		name   string
		kind   MandateKind
		state  MandateState
		target MandateState
		want   bool
	}{
		{"draft to consent", KindIntent, StateDraft, StateConsentRegistered, true},
		{"draft to converted skips consent", KindIntent, StateDraft, StateConverted, false},
		{"draft to settled skips chain", KindPayment, StateDraft, StateSettled, false},
		{"consent to converted", KindIntent, StateConsentRegistered, StateConverted, true},
		{"consent to risk assessed", KindPayment, StateConsentRegistered, StateRiskAssessed, false},
		{"converted source derives again", KindIntent, StateConverted, StateConverted, true},
		{"converted payment to risk assessed", KindPayment, StateConverted, StateRiskAssessed, true},
		{"converted intent to risk assessed", KindIntent, StateConverted, StateRiskAssessed, false},
		{"converted cart to risk assessed", KindCart, StateConverted, StateRiskAssessed, false},
		{"risk assessed payment to settled", KindPayment, StateRiskAssessed, StateSettled, true},
		{"risk assessed to converted rollback", KindPayment, StateRiskAssessed, StateConverted, false},
		{"settled is terminal", KindPayment, StateSettled, StateRevoked, false},
		{"revoked is terminal", KindIntent, StateRevoked, StateConsentRegistered, false},
		{"revoke from draft", KindIntent, StateDraft, StateRevoked, true},
		{"revoke from consent", KindCart, StateConsentRegistered, StateRevoked, true},
		{"revoke from converted", KindPayment, StateConverted, StateRevoked, true},
		{"revoke from risk assessed", KindPayment, StateRiskAssessed, StateRevoked, true},
		{"revoke twice", KindPayment, StateRevoked, StateRevoked, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mandate{Kind: tt.kind, State: tt.state}
			assert.Equal(t, tt.want, m.CanTransition(tt.target))
		})
	}
}

func TestCanDeriveKind(t *testing.T) {
	tests := []struct {
		name string
		from MandateKind
		to   MandateKind
		want bool
	}{
		{"intent to cart", KindIntent, KindCart, true},
		{"intent to payment", KindIntent, KindPayment, true},
		{"intent to intent", KindIntent, KindIntent, false},
		{"cart to payment", KindCart, KindPayment, false},
		{"cart to cart", KindCart, KindCart, false},
		{"payment to anything", KindPayment, KindCart, false},
		{"unknown kind", MandateKind("VOUCHER"), KindPayment, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDeriveKind(tt.from, tt.to))
		})
	}
}

func TestNewMandateID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewMandateID()
		assert.True(t, strings.HasPrefix(id, "M-"))
		assert.Len(t, id, 12)
		assert.Equal(t, strings.ToUpper(id), id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestNewTransactionID_Format(t *testing.T) {
	id := NewTransactionID()
	assert.True(t, strings.HasPrefix(id, "TX-"))
	assert.Len(t, id, 15)
	assert.Equal(t, strings.ToUpper(id), id)
}

func TestAuditEvent_CanonicalString(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	e := &AuditEvent{
		Seq:       7,
		Kind:      EventSettled,
		MandateID: "M-ABCDEF1234",
		AgentID:   "agent-007",
		Timestamp: ts,
	}
	assert.Equal(t, "7|SETTLED|M-ABCDEF1234|agent-007|2026-03-14T09:26:53Z", e.CanonicalString())
}

func TestAuditEvent_CanonicalString_FieldSensitivity(t *testing.T) {
	base := AuditEvent{
		Seq:       1,
		Kind:      EventCreated,
		MandateID: "M-0000000001",
		AgentID:   "agent-a",
		Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mutations := map[string]func(e *AuditEvent){
		"seq":       func(e *AuditEvent) { e.Seq = 2 },
		"kind":      func(e *AuditEvent) { e.Kind = EventRevoked },
		"mandate":   func(e *AuditEvent) { e.MandateID = "M-0000000002" },
		"agent":     func(e *AuditEvent) { e.AgentID = "agent-b" },
		"timestamp": func(e *AuditEvent) { e.Timestamp = e.Timestamp.Add(time.Second) },
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			changed := base
			mutate(&changed)
			assert.NotEqual(t, base.CanonicalString(), changed.CanonicalString())
		})
	}
}

func TestAuditEvent_CanonicalString_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("GST", 4*3600)
	utc := AuditEvent{Seq: 1, Kind: EventCreated, Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	gst := AuditEvent{Seq: 1, Kind: EventCreated, Timestamp: time.Date(2026, 1, 1, 16, 0, 0, 0, loc)}
	assert.Equal(t, utc.CanonicalString(), gst.CanonicalString())
}

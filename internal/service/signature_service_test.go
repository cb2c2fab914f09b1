package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSigner_SignDeterministic(t *testing.T) {
	s := NewHMACSigner("demo_secret_key")

	token := s.Sign("1|CREATED|M-0000000001|agent-a|2026-01-01T00:00:00Z")
	again := s.Sign("1|CREATED|M-0000000001|agent-a|2026-01-01T00:00:00Z")

	assert.Equal(t, token, again)
	assert.NotEmpty(t, token)
	// Raw URL encoding: no padding, no +, no /.
	assert.NotContains(t, token, "=")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
}

func TestHMACSigner_Verify(t *testing.T) {
	s := NewHMACSigner("demo_secret_key")
	payload := "1|CREATED|M-0000000001|agent-a|2026-01-01T00:00:00Z"
	token := s.Sign(payload)

	assert.True(t, s.Verify(payload, token))
	assert.False(t, s.Verify(payload+"x", token))
	assert.False(t, s.Verify(payload, token+"x"))
	assert.False(t, s.Verify(payload, ""))
}

func TestHMACSigner_DifferentSecretsDiffer(t *testing.T) {
	a := NewHMACSigner("secret-a")
	b := NewHMACSigner("secret-b")
	payload := "2|REVOKED|M-0000000002|agent-b|2026-01-01T00:00:00Z"

	assert.NotEqual(t, a.Sign(payload), b.Sign(payload))
	assert.False(t, b.Verify(payload, a.Sign(payload)))
}

func TestHMACSigner_PayloadSensitivity(t *testing.T) {
	s := NewHMACSigner("demo_secret_key")

	base := s.Sign("1|CREATED|M-0000000001|agent-a|2026-01-01T00:00:00Z")
	variants := []string{
		"2|CREATED|M-0000000001|agent-a|2026-01-01T00:00:00Z",
		"1|REVOKED|M-0000000001|agent-a|2026-01-01T00:00:00Z",
		"1|CREATED|M-0000000002|agent-a|2026-01-01T00:00:00Z",
		"1|CREATED|M-0000000001|agent-b|2026-01-01T00:00:00Z",
		"1|CREATED|M-0000000001|agent-a|2026-01-01T00:00:01Z",
	}
	for _, v := range variants {
		assert.NotEqual(t, base, s.Sign(v), "variant %q", v)
	}
}

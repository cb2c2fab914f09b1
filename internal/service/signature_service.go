package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// HMACSigner implements ports.Signer using HMAC-SHA256 with a fixed
// key. Tokens are raw-URL base64. This is a demo integrity mechanism,
// not a non-repudiation guarantee.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner creates a signer keyed with secret.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign computes HMAC-SHA256 of payload and returns the base64url token.
func (s *HMACSigner) Sign(payload string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Verify checks token against HMAC-SHA256(secret, payload).
// Uses constant-time comparison.
func (s *HMACSigner) Verify(payload string, token string) bool {
	expected := s.Sign(payload)
	return hmac.Equal([]byte(expected), []byte(token))
}

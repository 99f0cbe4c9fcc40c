package notify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const signaturePrefix = "sha256="

// SecurityValidator authenticates webhook payloads against the shared secret.
type SecurityValidator struct {
	secret string
}

// NewSecurityValidator creates a validator for the given secret.
func NewSecurityValidator(secret string) *SecurityValidator {
	return &SecurityValidator{secret: secret}
}

// ValidateSignature verifies a GitHub X-Hub-Signature-256 header against the
// raw payload. Any malformation is a verification failure, never a panic.
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if v.secret == "" {
		return ErrSecretNotConfigured
	}

	// GitHub sends the signature as "sha256=<hex>".
	if !strings.HasPrefix(signature, signaturePrefix) {
		return fmt.Errorf("%w: invalid signature format", ErrInvalidSignature)
	}

	providedHex := signature[len(signaturePrefix):]
	provided, err := hex.DecodeString(providedHex)
	if err != nil {
		return fmt.Errorf("%w: invalid signature hex encoding", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	// Constant-time comparison on raw bytes. Length mismatch is a non-match,
	// not an error.
	if !hmac.Equal(provided, expected) {
		return ErrInvalidSignature
	}

	return nil
}

// Sign computes the signature header value for a payload.
func (v *SecurityValidator) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, []byte(v.secret))
	mac.Write(payload)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

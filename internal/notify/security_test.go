package notify

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateSignature(t *testing.T) {
	payload := []byte(`{"ref":"refs/heads/main"}`)
	v := NewSecurityValidator("s3cr3t")

	t.Run("round trip", func(t *testing.T) {
		if err := v.ValidateSignature(payload, v.Sign(payload)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewSecurityValidator("different")
		err := v.ValidateSignature(payload, other.Sign(payload))
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("tampered payload", func(t *testing.T) {
		sig := v.Sign(payload)
		err := v.ValidateSignature([]byte(`{"ref":"refs/heads/evil"}`), sig)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("missing signature", func(t *testing.T) {
		if err := v.ValidateSignature(payload, ""); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("missing prefix", func(t *testing.T) {
		sig := strings.TrimPrefix(v.Sign(payload), "sha256=")
		if err := v.ValidateSignature(payload, sig); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("bad hex", func(t *testing.T) {
		if err := v.ValidateSignature(payload, "sha256=zzzz"); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("truncated digest is a non-match", func(t *testing.T) {
		sig := v.Sign(payload)[:len("sha256=")+8]
		if err := v.ValidateSignature(payload, sig); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got: %v", err)
		}
	})

	t.Run("no secret configured", func(t *testing.T) {
		empty := NewSecurityValidator("")
		if err := empty.ValidateSignature(payload, "sha256=00"); !errors.Is(err, ErrSecretNotConfigured) {
			t.Fatalf("expected ErrSecretNotConfigured, got: %v", err)
		}
	})
}

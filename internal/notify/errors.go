package notify

import "errors"

var (
	// ErrSecretNotConfigured means no signing secret was supplied, so no
	// payload can ever be authenticated.
	ErrSecretNotConfigured = errors.New("webhook secret not configured")

	// ErrInvalidSignature means the signature header was missing, malformed
	// or did not match the payload.
	ErrInvalidSignature = errors.New("signature verification failed")
)

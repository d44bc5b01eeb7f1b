package signer

import "errors"

var (
	// ErrMissingSecret indicates no signing secret was provided. This is a
	// deployment defect, not an input error: it is checked before any
	// cryptographic work and is never retryable.
	ErrMissingSecret = errors.New("no signing secret provided")

	// ErrMalformedToken indicates the token does not have the expected
	// three-segment shape or declares an unsupported algorithm. Treated as
	// rejection of untrusted input.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidSignature indicates signature verification failed, meaning
	// the token was tampered with or signed with a different secret. The two
	// causes are intentionally indistinguishable.
	ErrInvalidSignature = errors.New("token signature verification failed")
)

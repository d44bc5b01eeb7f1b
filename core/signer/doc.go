// Package signer wraps a canonical payload in a compact signed envelope and
// authenticates it on the way back, failing closed on any mismatch.
//
// # Token Format
//
// Tokens use the JWS compact serialization with a single fixed algorithm:
//
//	<base64url-header>.<payload>.<base64url-signature>
//
// Where:
//   - Header: the fixed JSON {"alg":"HS256","typ":"JWT"}, base64url-encoded
//   - Payload: the caller's canonical payload, already URL-safe
//   - Signature: HMAC-SHA256 over "<header>.<payload>" keyed with the secret
//
// Signing is fully deterministic: no timestamp, nonce, or salt is embedded,
// so identical payload and secret always yield a byte-identical token. This
// is what makes tokens usable as stable cache keys.
//
// # Basic Usage
//
//	token, err := signer.Sign(payload, secret)
//	if err != nil {
//		// Handle signer.ErrMissingSecret
//	}
//
//	payload, err := signer.Verify(token, secret)
//	switch {
//	case errors.Is(err, signer.ErrMalformedToken):
//		// Token structure or algorithm is wrong
//	case errors.Is(err, signer.ErrInvalidSignature):
//		// Tampered token or wrong secret
//	}
//
// # Security Notes
//
// The secret is used directly as the raw HMAC key; it is not hashed or
// stretched first. Use at least 32 bytes of entropy. Verification compares
// signatures in constant time and deliberately does not distinguish a wrong
// secret from a tampered payload.
package signer

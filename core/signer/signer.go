package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// tokenSegments is the number of dot-separated segments in a compact token.
const tokenSegments = 3

// algorithm is the only signing algorithm this package produces or accepts.
const algorithm = "HS256"

// encodedHeader is the fixed protected header, precomputed since it never
// varies: base64url of {"alg":"HS256","typ":"JWT"}.
var encodedHeader = base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"` + algorithm + `","typ":"JWT"}`))

// header is the decoded form of a token's protected header. Only the
// algorithm is validated; typ is carried for interop with JWS tooling.
type header struct {
	Alg string `json:"alg"`
	Typ string `json:"typ,omitempty"`
}

// Sign binds the payload to the secret, producing a deterministic compact
// token. The payload must already be URL-safe (it is embedded verbatim as the
// middle segment). Returns ErrMissingSecret before any cryptographic work
// when the secret is empty.
func Sign(payload, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	signingInput := encodedHeader + "." + payload
	return signingInput + "." + sign(signingInput, secret), nil
}

// Verify authenticates a token against the secret and returns its payload
// segment. It fails with ErrMalformedToken when the token does not parse as
// a three-segment envelope declaring HS256, and with ErrInvalidSignature when
// the recomputed HMAC does not match, using a constant-time comparison.
func Verify(token, secret string) (string, error) {
	if secret == "" {
		return "", ErrMissingSecret
	}

	parts := strings.Split(token, ".")
	if len(parts) != tokenSegments {
		return "", fmt.Errorf("%w: expected %d segments, got %d", ErrMalformedToken, tokenSegments, len(parts))
	}

	rawHeader, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: header is not valid base64url", ErrMalformedToken)
	}
	var hdr header
	if err := json.Unmarshal(rawHeader, &hdr); err != nil {
		return "", fmt.Errorf("%w: header is not valid JSON", ErrMalformedToken)
	}
	if hdr.Alg != algorithm {
		return "", fmt.Errorf("%w: unexpected algorithm %q", ErrMalformedToken, hdr.Alg)
	}

	// The MAC covers the header and payload exactly as received, so a forged
	// header cannot smuggle a payload past verification.
	signingInput := parts[0] + "." + parts[1]
	expected := sign(signingInput, secret)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return "", ErrInvalidSignature
	}

	return parts[1], nil
}

// sign computes the base64url-encoded HMAC-SHA256 of the signing input,
// keyed with the secret's raw bytes.
func sign(signingInput, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

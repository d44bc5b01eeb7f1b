package staticroute

import (
	"github.com/dmitrymomot/staticroute/core/queryparams"
	"github.com/dmitrymomot/staticroute/core/signer"
)

// Transform adjusts a parameter collection before it is canonicalized and
// signed. It receives a private copy of the caller's collection and returns
// the collection to encode; it may mutate the copy in place or build a new
// one. Transforms carry the caller's policy (allow-listing, defaulting,
// normalization) and must be pure for token determinism to hold.
type Transform func(queryparams.Params) queryparams.Params

// Identity returns the collection unchanged. It is the default transform.
func Identity(params queryparams.Params) queryparams.Params {
	return params
}

// Codec encodes parameter collections into signed tokens and decodes them
// back. It is stateless aside from the secret and safe for concurrent use.
type Codec struct {
	secret string
}

// New creates a Codec with an explicit secret. Returns
// signer.ErrMissingSecret when the secret is empty.
func New(secret string) (*Codec, error) {
	if secret == "" {
		return nil, signer.ErrMissingSecret
	}
	return &Codec{secret: secret}, nil
}

// Encode applies transform to a copy of params (nil means Identity),
// canonicalizes the result, and signs it. Given the same parameter set,
// transform, and secret, the returned token is byte-identical on every call.
// The caller's collection is never mutated.
func (c *Codec) Encode(params queryparams.Params, transform Transform) (string, error) {
	if c.secret == "" {
		return "", signer.ErrMissingSecret
	}
	if transform == nil {
		transform = Identity
	}

	copied := params.Clone()
	if copied == nil {
		copied = queryparams.Params{}
	}

	payload, err := queryparams.Canonicalize(transform(copied))
	if err != nil {
		return "", err
	}

	return signer.Sign(payload, c.secret)
}

// Decode verifies the token and reconstructs the parameter collection it was
// encoded from. Fails with signer.ErrMalformedToken on structural problems,
// signer.ErrInvalidSignature on tampering or a wrong secret, and
// queryparams.ErrMalformedPayload when an authenticated payload does not
// decode to a parameter record.
func (c *Codec) Decode(token string) (queryparams.Params, error) {
	if c.secret == "" {
		return nil, signer.ErrMissingSecret
	}

	payload, err := signer.Verify(token, c.secret)
	if err != nil {
		return nil, err
	}

	return queryparams.Decanonicalize(payload)
}

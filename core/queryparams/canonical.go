package queryparams

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/gowebpki/jcs"
)

// Canonicalize serializes the collection to its unique byte representation:
// RFC 8785 canonical JSON (keys sorted, minimal escaping, no whitespace),
// base64url-encoded without padding. Collections holding the same key-value
// pairs always canonicalize to the same string. A nil or empty collection
// canonicalizes to the encoding of "{}". Keys and values must be valid UTF-8;
// anything else fails with ErrInvalidEncoding rather than round-tripping as
// replacement characters.
func Canonicalize(params Params) (string, error) {
	if params == nil {
		params = Params{}
	}

	// json.Marshal would coerce invalid UTF-8 to U+FFFD, signing different
	// data than the caller supplied.
	for key, val := range params {
		if !utf8.ValidString(key) || !utf8.ValidString(val) {
			return "", fmt.Errorf("%w: key %q", ErrInvalidEncoding, key)
		}
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("marshal params: %w", err)
	}

	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("canonicalize params: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(canonical), nil
}

// Decanonicalize reverses Canonicalize, reconstructing the collection from
// its canonical payload. Returns ErrMalformedPayload when the payload is not
// valid base64url or the decoded bytes are not a flat JSON object of strings.
func Decanonicalize(payload string) (Params, error) {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}

	var params Params
	if err := json.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	// json.Unmarshal accepts a bare "null" without error; a canonical record
	// is always an object.
	if params == nil {
		return nil, fmt.Errorf("%w: payload is not an object", ErrMalformedPayload)
	}

	return params, nil
}

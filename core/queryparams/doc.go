// Package queryparams provides the parameter collection type and its
// canonical, order-independent byte representation used for signing.
//
// A Params value is a flat string-to-string mapping of query parameters.
// Canonicalize serializes it to RFC 8785 canonical JSON and base64url-encodes
// the result, so that two collections holding the same key-value pairs always
// produce identical bytes regardless of insertion order. Decanonicalize is
// the exact inverse.
//
// Basic usage:
//
//	params := queryparams.FromValues(r.URL.Query())
//	payload, err := queryparams.Canonicalize(params)
//	if err != nil {
//		// Handle error
//	}
//
//	restored, err := queryparams.Decanonicalize(payload)
//	if err != nil {
//		// Handle queryparams.ErrMalformedPayload
//	}
//
// # Multi-Valued Keys
//
// URL query strings permit repeated keys; Params does not. FromValues keeps
// the FIRST value of each key, mirroring url.Values.Get. Callers that need
// last-wins or rejection of duplicates should resolve them before building
// the collection.
//
// # Determinism
//
// Canonical form is RFC 8785 (JSON Canonicalization Scheme): keys sorted,
// minimal escaping, no whitespace. Keys and values containing characters that
// require JSON escaping round-trip exactly. The empty collection
// canonicalizes to the encoding of "{}", not an error.
package queryparams

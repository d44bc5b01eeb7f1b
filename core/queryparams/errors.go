package queryparams

import "errors"

var (
	// ErrInvalidEncoding indicates a parameter key or value is not valid
	// UTF-8 and therefore has no canonical JSON representation. Signing it
	// anyway would silently replace the offending bytes with U+FFFD and break
	// the round-trip guarantee, so canonicalization fails closed instead.
	ErrInvalidEncoding = errors.New("parameter is not valid UTF-8")

	// ErrMalformedPayload indicates the canonical payload could not be decoded
	// back into a parameter collection, either because it is not valid
	// base64url or because the decoded bytes are not a flat JSON object of
	// strings. A payload that fails here after passing signature verification
	// points at an internal bug or an incompatible format change.
	ErrMalformedPayload = errors.New("payload is not a valid canonical parameter record")
)

// Package staticroute turns dynamic, query-bearing requests into static
// routes by encoding the query parameters into a compact, tamper-evident
// token that can live in a path segment, and decoding such tokens back into
// the original parameter set.
//
// Identical parameter sets always produce identical tokens for a given
// secret, which makes the rewritten paths stable cache keys for CDN and
// ISR-style caching.
//
// # Package Organization
//
//   - staticroute: public entry points (Codec, Transform, env adapter)
//   - core/queryparams: parameter collection and canonical representation
//   - core/signer: deterministic HMAC-SHA256 token envelope
//   - core/config: environment configuration loading
//   - middleware: net/http adapters for the routing and page layers
//
// # Basic Usage
//
//	codec, err := staticroute.New(os.Getenv("STATIC_ROUTE_SECRET"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := codec.Encode(queryparams.Params{"q": "hello", "page": "2"}, nil)
//	if err != nil {
//		// Handle error
//	}
//
//	params, err := codec.Decode(token)
//	if err != nil {
//		// errors.Is against signer.ErrMalformedToken,
//		// signer.ErrInvalidSignature, queryparams.ErrMalformedPayload
//	}
//
// Encoding accepts an optional Transform, a pure function the caller supplies
// to filter or default parameters before signing. Policy about which
// parameters are allowed belongs in the transform, not in this library.
package staticroute

// Package middleware provides the net/http adapters that connect the
// staticroute codec to a server: one for the routing layer and one for the
// page layer.
//
// # Architecture
//
// Both middleware follow a consistent pattern:
//   - Standard func(http.Handler) http.Handler signature
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context helpers for retrieving stored values
//
// # Staticize Middleware
//
// Staticize intercepts GET and HEAD requests carrying a query string, encodes the
// parameters into a signed token, and rewrites the request path to embed the
// token as a trailing path segment. Downstream caches and routers then see a
// static path instead of a dynamic query.
//
//	codec, _ := staticroute.New(secret)
//	handler := middleware.Staticize(codec)(mux)
//
//	// GET /search?q=hello&page=2
//	// becomes
//	// GET /search/_params/<token>
//
// When encoding fails, the request falls through unchanged so the dynamic
// rendering path still serves it.
//
// # Resolve Middleware
//
// Resolve is the inverse: it detects the token segment in the path, verifies
// and decodes it, restores the query string, and stores the parameters in the
// request context.
//
//	handler := middleware.Resolve(codec)(mux)
//
//	func searchHandler(w http.ResponseWriter, r *http.Request) {
//		params, ok := middleware.GetParams(r.Context())
//		if !ok {
//			// Request did not come through Resolve
//		}
//		q := params["q"]
//		// ...
//	}
//
// Requests with an invalid or forged token are answered with a generic 404 by
// default; the response does not reveal which validation failed.
package middleware

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/staticroute"
	"github.com/dmitrymomot/staticroute/core/queryparams"
)

// paramsContextKey is used as a key for storing decoded parameters in request context.
type paramsContextKey struct{}

// ResolveConfig configures the token-resolving middleware.
type ResolveConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Codec verifies and decodes the token (required)
	Codec *staticroute.Codec
	// Segment is the path segment that precedes the token (default: "_params")
	Segment string
	// ErrorHandler answers requests whose token fails verification
	// (default: generic 404, no validation detail exposed)
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// Logger records rejected tokens (default: discards them)
	Logger *slog.Logger
}

// Resolve creates the token-resolving middleware with default configuration.
// It detects a trailing _params/<token> in the request path, verifies and
// decodes it, restores the query string, and stores the parameters in the
// request context. Panics if the codec is nil.
func Resolve(codec *staticroute.Codec) func(http.Handler) http.Handler {
	return ResolveWithConfig(ResolveConfig{Codec: codec})
}

// ResolveWithConfig creates the token-resolving middleware with custom
// configuration. Panics if the codec is not provided.
//
// A request whose token does not verify is handed to the error handler; the
// default answers with a plain 404 so a forger cannot tell a structural
// rejection from a signature rejection.
func ResolveWithConfig(cfg ResolveConfig) func(http.Handler) http.Handler {
	if cfg.Codec == nil {
		panic("resolve middleware: codec is required")
	}
	if cfg.Segment == "" {
		cfg.Segment = DefaultSegment
	}
	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(w http.ResponseWriter, r *http.Request, _ error) {
			http.NotFound(w, r)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			base, token, ok := splitTokenPath(r.URL.Path, cfg.Segment)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			params, err := cfg.Codec.Decode(token)
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.WarnContext(r.Context(), "resolve: token rejected",
						slog.String("path", r.URL.Path),
						slog.Any("error", err))
				}
				cfg.ErrorHandler(w, r, err)
				return
			}

			restored := r.Clone(context.WithValue(r.Context(), paramsContextKey{}, params))
			restored.URL.Path = base
			restored.URL.RawQuery = params.Values().Encode()

			next.ServeHTTP(w, restored)
		})
	}
}

// GetParams retrieves the parameters decoded by Resolve from the request
// context. Returns false when the request did not carry a token.
func GetParams(ctx context.Context) (queryparams.Params, bool) {
	params, ok := ctx.Value(paramsContextKey{}).(queryparams.Params)
	return params, ok
}

// splitTokenPath extracts the token from a path ending in
// "/<segment>/<token>", returning the path without the token suffix. The
// token must be the final segment.
func splitTokenPath(path, segment string) (base, token string, ok bool) {
	trimmed := strings.TrimSuffix(path, "/")
	marker := "/" + segment + "/"

	idx := strings.LastIndex(trimmed, marker)
	if idx < 0 {
		return "", "", false
	}

	token = trimmed[idx+len(marker):]
	if token == "" || strings.Contains(token, "/") {
		return "", "", false
	}

	base = trimmed[:idx]
	if base == "" {
		base = "/"
	}
	return base, token, true
}

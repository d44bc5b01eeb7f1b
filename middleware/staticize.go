package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/staticroute"
	"github.com/dmitrymomot/staticroute/core/queryparams"
)

// DefaultSegment is the path segment that marks an embedded parameter token.
const DefaultSegment = "_params"

// StaticizeConfig configures the query-to-token rewriting middleware.
type StaticizeConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// Codec encodes the extracted parameters (required)
	Codec *staticroute.Codec
	// Transform filters or defaults parameters before encoding (default: identity)
	Transform staticroute.Transform
	// Segment is the path segment placed before the token (default: "_params")
	Segment string
	// Logger records encoding failures (default: discards them)
	Logger *slog.Logger
}

// Staticize creates the rewriting middleware with default configuration.
// GET and HEAD requests carrying a query string have their parameters encoded
// into a signed token and the path rewritten to <path>/_params/<token> with
// the query cleared; other methods pass through untouched. Panics if the
// codec is nil.
func Staticize(codec *staticroute.Codec) func(http.Handler) http.Handler {
	return StaticizeWithConfig(StaticizeConfig{Codec: codec})
}

// StaticizeWithConfig creates the rewriting middleware with custom
// configuration. Panics if the codec is not provided.
//
// Encoding failures are not surfaced to the client: the request passes
// through with its original path and query so the dynamic rendering path can
// still serve it.
func StaticizeWithConfig(cfg StaticizeConfig) func(http.Handler) http.Handler {
	if cfg.Codec == nil {
		panic("staticize middleware: codec is required")
	}
	if cfg.Segment == "" {
		cfg.Segment = DefaultSegment
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}
			// Only GET and HEAD responses are cacheable; rewriting other
			// methods would change the path handlers see for no benefit.
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			if r.URL.RawQuery == "" {
				next.ServeHTTP(w, r)
				return
			}

			params := queryparams.FromValues(r.URL.Query())
			token, err := cfg.Codec.Encode(params, cfg.Transform)
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.ErrorContext(r.Context(), "staticize: encode failed",
						slog.String("path", r.URL.Path),
						slog.Any("error", err))
				}
				next.ServeHTTP(w, r)
				return
			}

			rewritten := r.Clone(r.Context())
			rewritten.URL.Path = strings.TrimSuffix(r.URL.Path, "/") + "/" + cfg.Segment + "/" + token
			rewritten.URL.RawQuery = ""

			next.ServeHTTP(w, rewritten)
		})
	}
}

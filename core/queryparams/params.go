package queryparams

import (
	"maps"
	"net/url"
)

// Params is a flat collection of query parameters, one value per key.
// The zero value (nil) behaves as an empty collection for canonicalization.
type Params map[string]string

// FromValues builds a Params from url.Values. When a key appears more than
// once, the first value wins, matching url.Values.Get semantics.
func FromValues(values url.Values) Params {
	params := make(Params, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			params[key] = vals[0]
		} else {
			params[key] = ""
		}
	}
	return params
}

// Values converts the collection back to url.Values with a single value
// per key, suitable for reconstructing a request query string.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for key, val := range p {
		values.Set(key, val)
	}
	return values
}

// Clone returns a copy of the collection. Transforms that modify parameters
// should operate on a clone so the caller's collection stays untouched.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// Equal reports whether two collections hold exactly the same key-value pairs.
func (p Params) Equal(other Params) bool {
	return maps.Equal(p, other)
}

package queryparams_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staticroute/core/queryparams"
)

func TestFromValues(t *testing.T) {
	t.Parallel()

	t.Run("single values", func(t *testing.T) {
		t.Parallel()

		values, err := url.ParseQuery("q=hello&page=2")
		require.NoError(t, err)

		params := queryparams.FromValues(values)
		assert.Equal(t, queryparams.Params{"q": "hello", "page": "2"}, params)
	})

	t.Run("repeated key keeps first value", func(t *testing.T) {
		t.Parallel()

		values, err := url.ParseQuery("tag=go&tag=web&tag=http")
		require.NoError(t, err)

		params := queryparams.FromValues(values)
		assert.Equal(t, queryparams.Params{"tag": "go"}, params)
	})

	t.Run("empty value kept", func(t *testing.T) {
		t.Parallel()

		values, err := url.ParseQuery("q=")
		require.NoError(t, err)

		params := queryparams.FromValues(values)
		assert.Equal(t, queryparams.Params{"q": ""}, params)
	})
}

func TestParamsValues(t *testing.T) {
	t.Parallel()

	params := queryparams.Params{"q": "hello world", "page": "2"}
	values := params.Values()

	assert.Equal(t, "hello world", values.Get("q"))
	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "page=2&q=hello+world", values.Encode())
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	t.Run("mutations do not leak", func(t *testing.T) {
		t.Parallel()

		original := queryparams.Params{"q": "hello"}
		copied := original.Clone()
		copied["q"] = "changed"
		copied["extra"] = "1"

		assert.Equal(t, queryparams.Params{"q": "hello"}, original)
	})

	t.Run("nil clones to nil", func(t *testing.T) {
		t.Parallel()

		var params queryparams.Params
		assert.Nil(t, params.Clone())
	})
}

func TestParamsEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, queryparams.Params{"a": "1"}.Equal(queryparams.Params{"a": "1"}))
	assert.False(t, queryparams.Params{"a": "1"}.Equal(queryparams.Params{"a": "2"}))
	assert.False(t, queryparams.Params{"a": "1"}.Equal(queryparams.Params{"a": "1", "b": "2"}))
	assert.True(t, queryparams.Params{}.Equal(queryparams.Params{}))
}

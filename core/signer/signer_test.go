package signer_test

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staticroute/core/signer"
)

const testSecret = "s3cret"

// testPayload is the canonical encoding of {"page":"2","q":"hello"}.
var testPayload = base64.RawURLEncoding.EncodeToString([]byte(`{"page":"2","q":"hello"}`))

func TestSign(t *testing.T) {
	t.Parallel()

	t.Run("produces three url-safe segments", func(t *testing.T) {
		t.Parallel()

		token, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		assert.Equal(t, testPayload, parts[1])

		header, err := base64.RawURLEncoding.DecodeString(parts[0])
		require.NoError(t, err)
		assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(header))

		_, err = base64.RawURLEncoding.DecodeString(parts[2])
		assert.NoError(t, err)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		t.Parallel()

		first, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)
		second, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()

		_, err := signer.Sign(testPayload, "")
		assert.ErrorIs(t, err, signer.ErrMissingSecret)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		token, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		payload, err := signer.Verify(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, testPayload, payload)
	})

	t.Run("missing secret", func(t *testing.T) {
		t.Parallel()

		token, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		_, err = signer.Verify(token, "")
		assert.ErrorIs(t, err, signer.ErrMissingSecret)
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		token, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		_, err = signer.Verify(token, "another-secret")
		assert.ErrorIs(t, err, signer.ErrInvalidSignature)
	})

	t.Run("malformed structure", func(t *testing.T) {
		t.Parallel()

		for _, token := range []string{
			"not-a-token",
			"",
			"one.two",
			"one.two.three.four",
		} {
			_, err := signer.Verify(token, testSecret)
			assert.ErrorIs(t, err, signer.ErrMalformedToken, "token %q", token)
		}
	})

	t.Run("header not base64", func(t *testing.T) {
		t.Parallel()

		_, err := signer.Verify("!!!."+testPayload+".sig", testSecret)
		assert.ErrorIs(t, err, signer.ErrMalformedToken)
	})

	t.Run("header not json", func(t *testing.T) {
		t.Parallel()

		header := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		_, err := signer.Verify(header+"."+testPayload+".sig", testSecret)
		assert.ErrorIs(t, err, signer.ErrMalformedToken)
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		t.Parallel()

		for _, alg := range []string{"none", "HS512", "RS256", ""} {
			header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"` + alg + `","typ":"JWT"}`))
			_, err := signer.Verify(header+"."+testPayload+".sig", testSecret)
			assert.ErrorIs(t, err, signer.ErrMalformedToken, "alg %q", alg)
		}
	})

	t.Run("any single character mutation is rejected", func(t *testing.T) {
		t.Parallel()

		token, err := signer.Sign(testPayload, testSecret)
		require.NoError(t, err)

		headerEnd := strings.Index(token, ".")
		for i := headerEnd + 1; i < len(token); i++ {
			if token[i] == '.' {
				continue
			}

			mutated := token[i]
			replacement := byte('A')
			if mutated == 'A' {
				replacement = 'B'
			}
			forged := token[:i] + string(replacement) + token[i+1:]

			_, err := signer.Verify(forged, testSecret)
			require.Error(t, err, "mutation at %d accepted", i)
			assert.True(t,
				errors.Is(err, signer.ErrInvalidSignature) || errors.Is(err, signer.ErrMalformedToken),
				"mutation at %d returned unexpected error %v", i, err)
		}
	})
}

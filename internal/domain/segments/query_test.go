package segments

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQueryParam(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  string
	}{
		{"ascii", "SGVsbG8lMjBXb3JsZA==", "Hello World"},
		{"unpadded", "SGVsbG8lMjBXb3JsZA", "Hello World"},
		{"wrapped", "SGVsbG8l\nMjBXb3JsZA==", "Hello World"},
		{"ascii whitespace", " Y\tQ\r\n=\f= ", "a"},
		{"utf8", "Q2FmJUMzJUE5JTIwJUUyJTk4JTk1", "Café ☕"},
		{"plus is literal", "YSti", "a+b"},
		{"latin1 byte", "6Q==", "é"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQueryParam(tt.param)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeQueryParam_Errors(t *testing.T) {
	tests := []struct {
		name  string
		param string
		stage string
	}{
		{"invalid base64", "!!!invalid-base64!!!", "base64"},
		{"bad length", "SGVsb", "base64"},
		{"padding in the middle", "SG=sbG8=", "base64"},
		{"vertical tab", "YQ==\v", "base64"},
		{"no-break space", "Y\u00a0Q==", "base64"},
		{"line separator", "YQ==\u2028", "base64"},
		{"truncated escape", "JUUwJUE0JUE=", "uri"},
		{"invalid utf8", "JUMzJTI4", "uri"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQueryParam(tt.param)
			require.Error(t, err)
			assert.Empty(t, got)

			var de *DecodeError
			require.True(t, errors.As(err, &de), "unexpected error type %T", err)
			assert.Equal(t, tt.stage, de.Stage)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestEncodeQueryParam_Inverse(t *testing.T) {
	inputs := []string{
		"",
		"Hello World",
		"Café ☕",
		"a+b=c&d/e?f#g",
		"100% sure",
		"こんにちは",
		"tabs\tand\nnewlines",
		"a!*'()~b",
	}
	for _, in := range inputs {
		enc := EncodeQueryParam(in)
		got, err := DecodeQueryParam(enc)
		require.NoError(t, err, "decode %q", enc)
		assert.Equal(t, in, got)
	}
}

func TestEncodeQueryParam_Fixture(t *testing.T) {
	assert.Equal(t, "SGVsbG8lMjBXb3JsZA==", EncodeQueryParam("Hello World"))
	// Same bytes as btoa(encodeURIComponent("a!*'()~b")).
	assert.Equal(t, "YSEqJygpfmI=", EncodeQueryParam("a!*'()~b"))
}

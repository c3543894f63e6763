package segments

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DecodeError is returned when a query parameter is not base64 of a
// percent-encoded string.
type DecodeError struct {
	Stage string // "base64" or "uri"
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode query param (%s): %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecodeQueryParam reverses EncodeQueryParam: base64, then percent-decoding.
func DecodeQueryParam(param string) (string, error) {
	raw, err := decodeBase64(param)
	if err != nil {
		return "", &DecodeError{Stage: "base64", Err: err}
	}
	// Each decoded byte is one character, the way browsers' atob hands it back.
	s, err := url.PathUnescape(latin1(raw))
	if err != nil {
		return "", &DecodeError{Stage: "uri", Err: err}
	}
	if !utf8.ValidString(s) {
		return "", &DecodeError{Stage: "uri", Err: fmt.Errorf("escape sequence is not valid UTF-8")}
	}
	return s, nil
}

// uriComponent turns QueryEscape output into what encodeURIComponent
// produces: spaces as %20 and !*'() left as is.
var uriComponent = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeQueryParam percent-encodes text like encodeURIComponent and wraps it
// in padded standard base64.
func EncodeQueryParam(text string) string {
	escaped := uriComponent.Replace(url.QueryEscape(text))
	return base64.StdEncoding.EncodeToString([]byte(escaped))
}

func decodeBase64(s string) ([]byte, error) {
	// atob skips ASCII whitespace only.
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			return -1
		}
		return r
	}, s)
	// Padding is optional, but only where a full quantum allows it.
	if len(s)%4 == 0 {
		for i := 0; i < 2 && strings.HasSuffix(s, "="); i++ {
			s = s[:len(s)-1]
		}
	}
	if len(s)%4 == 1 {
		return nil, fmt.Errorf("invalid length %d", len(s))
	}
	return base64.RawStdEncoding.DecodeString(s)
}

func latin1(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

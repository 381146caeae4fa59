// Package transform implements the pure text transformation functions exposed
// through the tool registry. Every function has the same shape: one input
// string, one output string, an error only for malformed input.
package transform

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"html"
	"net/url"
)

func Base64Encode(input string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(input)), nil
}

func Base64Decode(input string) (string, error) {
	decoded, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("invalid base64 input: %w", err)
	}
	return string(decoded), nil
}

func URLEncode(input string) (string, error) {
	return url.QueryEscape(input), nil
}

func URLDecode(input string) (string, error) {
	decoded, err := url.QueryUnescape(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL-encoded input: %w", err)
	}
	return decoded, nil
}

func HexEncode(input string) (string, error) {
	return hex.EncodeToString([]byte(input)), nil
}

func HexDecode(input string) (string, error) {
	decoded, err := hex.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("invalid hex input: %w", err)
	}
	return string(decoded), nil
}

func HTMLEscape(input string) (string, error) {
	return html.EscapeString(input), nil
}

func HTMLUnescape(input string) (string, error) {
	return html.UnescapeString(input), nil
}

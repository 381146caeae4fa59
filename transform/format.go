package transform

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

func JSONPrettify(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(input), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON input: %w", err)
	}
	return buf.String(), nil
}

func JSONMinify(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(input)); err != nil {
		return "", fmt.Errorf("invalid JSON input: %w", err)
	}
	return buf.String(), nil
}

func Uppercase(input string) (string, error) {
	return strings.ToUpper(input), nil
}

func Lowercase(input string) (string, error) {
	return strings.ToLower(input), nil
}

// TextStats reports character, word and line counts for the input.
func TextStats(input string) (string, error) {
	characters := len([]rune(input))
	words := len(strings.Fields(input))
	lines := 0
	if input != "" {
		lines = strings.Count(input, "\n") + 1
	}
	return fmt.Sprintf("characters: %d, words: %d, lines: %d", characters, words, lines), nil
}

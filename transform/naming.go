package transform

import (
	"regexp"
	"strings"
)

var camelBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// splitWords breaks an identifier or sentence into lowercase words, handling
// camelCase boundaries as well as spaces, dashes and underscores.
func splitWords(input string) []string {
	separated := camelBoundary.ReplaceAllString(input, "$1 $2")
	parts := nonAlphanumeric.Split(separated, -1)

	words := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		words = append(words, strings.ToLower(part))
	}
	return words
}

func CamelCase(input string) (string, error) {
	words := splitWords(input)
	if len(words) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, word := range words[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String(), nil
}

func PascalCase(input string) (string, error) {
	var b strings.Builder
	for _, word := range splitWords(input) {
		b.WriteString(capitalize(word))
	}
	return b.String(), nil
}

func SnakeCase(input string) (string, error) {
	return strings.Join(splitWords(input), "_"), nil
}

func KebabCase(input string) (string, error) {
	return strings.Join(splitWords(input), "-"), nil
}

func ConstantCase(input string) (string, error) {
	words := splitWords(input)
	for i, word := range words {
		words[i] = strings.ToUpper(word)
	}
	return strings.Join(words, "_"), nil
}

func TitleCase(input string) (string, error) {
	words := splitWords(input)
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, " "), nil
}

// Slugify produces a URL-safe lowercase slug.
func Slugify(input string) (string, error) {
	return strings.Join(splitWords(input), "-"), nil
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

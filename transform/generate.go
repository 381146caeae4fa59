package transform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewUUID generates a random v4 UUID. The input is ignored.
func NewUUID(_ string) (string, error) {
	return uuid.NewString(), nil
}

// ConvertTimestamp converts between Unix epoch seconds and RFC 3339. Numeric
// input is treated as epoch seconds, anything else is parsed as RFC 3339.
func ConvertTimestamp(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", fmt.Errorf("empty timestamp input")
	}

	if seconds, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return time.Unix(seconds, 0).UTC().Format(time.RFC3339), nil
	}

	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return "", fmt.Errorf("input is neither epoch seconds nor RFC 3339: %w", err)
	}
	return strconv.FormatInt(t.Unix(), 10), nil
}

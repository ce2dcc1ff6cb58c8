package commands

import (
	"fmt"
	"strings"
)

// parseKeyValue splits "key=value" at the first equals sign. Values
// may themselves contain equals signs; keys may not be empty.
func parseKeyValue(raw string) (key, value string, err error) {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || key == "" {
		return "", "", fmt.Errorf("invalid attribute %q, expected key=value", raw)
	}
	return key, value, nil
}

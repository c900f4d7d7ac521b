package notification

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// RenderJSON pretty-prints an API response for inspection, the output format
// of every read command.
func RenderJSON(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode response as JSON: %w", err)
	}
	return string(b), nil
}

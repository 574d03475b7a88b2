package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// DecodeJSON strips code fencing from a raw model response and decodes
// it into v.
func DecodeJSON(raw string, v any) error {
	content := cleanJSONResponse(raw)
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// DecodeStringMap decodes a raw model response expected to be a flat
// JSON object of string values.
func DecodeStringMap(raw string) (map[string]string, error) {
	var result map[string]string
	if err := DecodeJSON(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

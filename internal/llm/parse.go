package llm

import (
	"encoding/json"
	"strings"
)

// Keys a JSON-shaped model response may use for the completed command.
var commandKeys = []string{"command", "text", "completion", "suggestion"}

// ParseCommand extracts a single command line from raw model output. Models
// ignore formatting instructions often enough that this has to cope with
// markdown fences, JSON objects and multi-line chatter. An empty result falls
// back to the original buffer.
func ParseCommand(raw, originalBuffer string) string {
	text := strings.TrimSpace(raw)

	// Strip a markdown code fence if present.
	if strings.HasPrefix(text, "```") {
		var inner []string
		for _, line := range strings.Split(text, "\n")[1:] {
			if strings.HasPrefix(line, "```") {
				break
			}
			inner = append(inner, line)
		}
		text = strings.Join(inner, "\n")
	}

	if cmd, ok := parseJSONCommand(text); ok {
		return cmd
	}

	// Keep only the first line of multi-line output.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimSpace(text)

	if text == "" {
		return originalBuffer
	}
	return text
}

func parseJSONCommand(text string) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		// Some models emit a JSON object followed by commentary; retry with
		// just the first line.
		firstLine, _, _ := strings.Cut(text, "\n")
		if err := json.Unmarshal([]byte(strings.TrimSpace(firstLine)), &obj); err != nil {
			return "", false
		}
	}

	for _, key := range commandKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var cmd string
		if err := json.Unmarshal(raw, &cmd); err != nil {
			continue
		}
		if cmd = strings.TrimSpace(cmd); cmd != "" {
			return cmd, true
		}
	}
	return "", false
}

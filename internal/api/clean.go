package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"regexp"
)

// jsonFence matches an opening "```json" fence line or a closing fence.
var jsonFence = regexp.MustCompile("```json\n|\n```")

// CleanJSON removes markdown json fences from s and returns the remaining
// JSON in compact form. If the remainder is not valid JSON the failure is
// logged and s is returned unchanged.
//
// CleanJSON is idempotent: compact JSON contains no raw newlines, so a second
// pass finds no fences and compacts to the same bytes.
func CleanJSON(s string) string {
	stripped := jsonFence.ReplaceAllString(s, "")

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(stripped)); err != nil {
		slog.Error("JSON parsing error", "error", err, "input_length", len(s))
		return s
	}
	return buf.String()
}

// Package redact scrubs credentials from strings before they are logged.
// Provider errors can echo request URLs (which carry the Gemini key as a
// query parameter) and clients sometimes paste keys into payloads, so error
// logs pass through this package first.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedKeyPlaceholder    = "[REDACTED_KEY]"
	RedactedBearerPlaceholder = "Bearer [REDACTED]"
	RedactedJWTPlaceholder    = "[REDACTED_JWT]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules are applied in order. The Google key rule runs before the generic
// key=value rule so a bare "AIza..." string is caught too.
var rules = []rule{
	{
		// Google API keys, e.g. the Gemini key.
		pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		placeholder: RedactedJWTPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]{8,}=*`),
		placeholder: RedactedBearerPlaceholder,
	},
	{
		// key=..., x-api-key: ..., "api_key": "..." and friends.
		pattern: regexp.MustCompile(
			`(?i)(x-api-key|api[_-]?key|key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
		),
		placeholder: "${1}${2}" + RedactedKeyPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

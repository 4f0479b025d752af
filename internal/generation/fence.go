package generation

import "strings"

// markdownFence is the opening fence Gemini sometimes wraps plain-text
// answers in despite instructions.
const markdownFence = "```markdown\n"

// StripMarkdownFence removes a "```markdown\n" fence at the very start of s.
// A fence anywhere else is left alone, as is any closing fence.
func StripMarkdownFence(s string) string {
	return strings.TrimPrefix(s, markdownFence)
}

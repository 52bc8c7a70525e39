package format

import "strings"

// DefaultDelimiter follows each message when no delimiter is given.
const DefaultDelimiter = " "

// ToMultiLine writes every message followed by delimiter, the last one included.
// An empty delimiter means DefaultDelimiter.
func ToMultiLine(delimiter string, messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var sb strings.Builder
	for _, m := range messages {
		sb.WriteString(m)
		sb.WriteString(delimiter)
	}
	return sb.String()
}

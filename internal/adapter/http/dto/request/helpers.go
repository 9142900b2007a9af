package request

import "strings"

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

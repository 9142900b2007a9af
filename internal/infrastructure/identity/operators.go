package identity

import "strings"

// OperatorAllowlist is the fixed set of operator emails from configuration.
type OperatorAllowlist struct {
	emails map[string]struct{}
}

func NewOperatorAllowlist(emails []string) OperatorAllowlist {
	set := make(map[string]struct{}, len(emails))
	for _, e := range emails {
		if e = normalizeEmail(e); e != "" {
			set[e] = struct{}{}
		}
	}
	return OperatorAllowlist{emails: set}
}

// IsOperator matches the whole address, ignoring case.
func (a OperatorAllowlist) IsOperator(email string) bool {
	email = normalizeEmail(email)
	if email == "" {
		return false
	}
	_, ok := a.emails[email]
	return ok
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}

package pure_utils

import "strings"

// CleanString trims surrounding whitespace. An empty result becomes nil,
// distinguishing "absent" from "empty".
func CleanString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// NormalizeEmail lowercases and trims. It does not enforce the presence of an
// @: validity is a separate check used only for warnings.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsLikelyEmail is the lenient validity check applied to normalized emails.
func IsLikelyEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.Contains(email[at+1:], "@")
}

// SplitEmailList splits a multi-email cell on semicolons and commas, trimming
// and dropping empty entries.
func SplitEmailList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == ','
	})
	emails := make([]string, 0, len(fields))
	for _, field := range fields {
		if email := NormalizeEmail(field); email != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

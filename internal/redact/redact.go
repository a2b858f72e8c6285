// Package redact removes sensitive information from strings before they are
// logged or echoed back in error responses. Database drivers tend to include
// connection strings, hosts, SQL text and file paths in their error messages;
// those are replaced by fixed placeholders.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	CredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	HostPlaceholder       = "[REDACTED_HOST]"
	PathPlaceholder       = "[REDACTED_PATH]"
	SQLPlaceholder        = "[REDACTED_SQL]"
	StackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules may consume text later rules would match.
var rules = []rule{
	{regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`), StackTracePlaceholder},
	{regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|sqlite3?)://\S+@`), CredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(?:password|passwd|pwd)\s*[=:]\s*\S+`), CredentialPlaceholder},
	{regexp.MustCompile(`\b(?:SELECT|INSERT INTO|UPDATE|DELETE FROM)\s[^;]*`), SQLPlaceholder},
	{regexp.MustCompile(`\b(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}:\d{1,5}\b`), HostPlaceholder},
	{regexp.MustCompile(`\b\d{1,3}(?:\.\d{1,3}){3}(?::\d{1,5})?\b`), HostPlaceholder},
	{regexp.MustCompile(`(?:/[\w.-]+){2,}`), PathPlaceholder},
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

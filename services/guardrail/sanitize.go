package guardrail

import "regexp"

// Masking runs in a fixed order so dashed SSNs are claimed before the
// looser SSN pattern, and both before card/phone/email masking.
var maskRules = []struct {
	pattern *regexp.Regexp
	mask    string
}{
	{regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`), "[SSN]"},
	{regexp.MustCompile(`\b\d{3}[\s-]?\d{2}[\s-]?\d{4}\b`), "[SSN]"},
	{regexp.MustCompile(`\b\d{4}[\s-]?\d{4}[\s-]?\d{4}[\s-]?\d{4}\b`), "[CARD]"},
	{regexp.MustCompile(`\b\d{3}[\s-]?\d{3}[\s-]?\d{4}\b`), "[PHONE]"},
	{regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`), "[EMAIL]"},
}

// Sanitize masks personal data substrings so text can be forwarded to
// the retrieval path. It is plain substitution, independent of whether
// Classify blocked the text.
func (s *DefaultGuardrailService) Sanitize(text string) string {
	sanitized := text
	for _, rule := range maskRules {
		sanitized = rule.pattern.ReplaceAllString(sanitized, rule.mask)
	}
	return sanitized
}

// Package sanitizer redacts secrets from text before it is sent to a model
// endpoint. It covers common credential shapes plus user-supplied patterns.
package sanitizer

import (
	"regexp"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
	label       string
}

var builtinRules = []rule{
	// API keys by well-known prefix
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`), "[REDACTED:openai_key]", "openai_key"},
	{regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`), "[REDACTED:github_token]", "github_token"},
	{regexp.MustCompile(`gho_[a-zA-Z0-9]{36}`), "[REDACTED:github_oauth]", "github_oauth"},
	{regexp.MustCompile(`ghs_[a-zA-Z0-9]{36}`), "[REDACTED:github_secret]", "github_secret"},
	{regexp.MustCompile(`AKIA[0-9A-Z]{16}`), "[REDACTED:aws_key]", "aws_key"},

	// Generic key/value credential flags
	{regexp.MustCompile(`api[_-]?key[=:\s]+['"]?[a-zA-Z0-9_-]{20,}['"]?`), "api_key=[REDACTED]", "api_key"},
	{regexp.MustCompile(`Bearer\s+[a-zA-Z0-9._\-]+`), "Bearer [REDACTED]", "bearer_token"},
	{regexp.MustCompile(`--password[=\s]+\S+`), "--password=[REDACTED]", "password_flag"},
	{regexp.MustCompile(`-p\s+\S+`), "-p [REDACTED]", "password_flag"},
	{regexp.MustCompile(`--token[=\s]+\S+`), "--token=[REDACTED]", "token_flag"},

	// Credentials embedded in URLs
	{regexp.MustCompile(`://[^:/\s]+:[^@\s]+@`), "://[REDACTED]@", "url_credentials"},

	// Key material and secret-looking environment assignments
	{regexp.MustCompile(`-----BEGIN\s+(?:RSA\s+)?PRIVATE\s+KEY-----`), "[REDACTED:private_key]", "private_key"},
	{regexp.MustCompile(`(?:export\s+)?[A-Z_]*(?:SECRET|PASSWORD|TOKEN|KEY)[A-Z_]*=\S+`), "[REDACTED:env_secret]", "env_secret"},
}

// Sanitize scrubs credential-shaped substrings from text and returns the
// cleaned text together with the labels of the rules that fired. Custom
// patterns that fail to compile are skipped.
func Sanitize(text string, customPatterns []string) (string, []string) {
	var applied []string

	for _, r := range builtinRules {
		if r.pattern.MatchString(text) {
			text = r.pattern.ReplaceAllString(text, r.replacement)
			applied = append(applied, r.label)
		}
	}

	for _, p := range customPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		if re.MatchString(text) {
			text = re.ReplaceAllString(text, "[REDACTED:custom]")
			applied = append(applied, "custom")
		}
	}

	return text, applied
}

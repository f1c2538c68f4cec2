package config

import (
	"fmt"
	"strings"
)

// validators maps known keys to checks that return a problem description,
// or "" when the value is acceptable.
var validators = map[string]func(string) string{
	KeyPrefix: func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "must not be blank"
		}
		if strings.ContainsAny(strings.TrimRight(v, " "), " \t\n") {
			return "must not contain inner whitespace"
		}
		return ""
	},
	KeyToken: func(v string) string {
		if strings.TrimSpace(v) == "" || v == DefaultToken {
			return "is not configured"
		}
		return ""
	},
}

// Problems lists every invalid value for a known key in s, as
// "key: problem". Missing keys are not reported; they fall back to
// defaults at runtime.
func Problems(s Store) []string {
	all := s.All()
	var problems []string
	for _, key := range []string{KeyPrefix, KeyToken} {
		val, ok := all[key]
		if !ok {
			continue
		}
		if msg := validators[key](val); msg != "" {
			problems = append(problems, fmt.Sprintf("%s: %s", key, msg))
		}
	}
	return problems
}

// Validate returns an error describing every problem Problems finds, or nil.
func Validate(s Store) error {
	errs := Problems(s)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

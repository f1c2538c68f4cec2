package config

import (
	"fmt"
	"os"
	"strings"
)

// Well-known configuration keys and their defaults.
const (
	KeyPrefix = "prefix"
	KeyToken  = "token"
	KeyName   = "name"
	KeyOwners = "owners" // comma-separated user IDs

	DefaultPrefix = "?"
	DefaultName   = "Botkit"
	// DefaultToken is the placeholder written for a fresh config. It is
	// never a usable credential.
	DefaultToken = "TOKEN"
)

// DefaultValues returns the default config map for the well-known keys.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyPrefix: DefaultPrefix,
		KeyToken:  DefaultToken,
	}
}

// ApplyDefaults fills any missing well-known keys in s with their defaults.
// The store is not saved.
func ApplyDefaults(s Store) {
	for k, v := range DefaultValues() {
		s.GetOrInsertDefault(k, v)
	}
}

// Prefix returns the command prefix, inserting the default in memory when
// none is configured.
func Prefix(s Store) string {
	return s.GetOrInsertDefault(KeyPrefix, DefaultPrefix)
}

// SetPrefix stores a new command prefix and saves the store.
func SetPrefix(s Store, prefix string) error {
	if strings.TrimSpace(prefix) == "" {
		return fmt.Errorf("prefix cannot be blank")
	}
	s.Put(KeyPrefix, prefix)
	return s.Save()
}

// Token returns the bot token. The EnvToken variable takes precedence over
// the stored value. The placeholder DefaultToken and blank values yield
// ErrTokenNotConfigured.
func Token(s Store) (string, error) {
	tok := strings.TrimSpace(os.Getenv(EnvToken))
	if tok == "" {
		tok = strings.TrimSpace(s.Get(KeyToken, DefaultToken))
	}
	if tok == "" || tok == DefaultToken {
		return "", ErrTokenNotConfigured
	}
	return tok, nil
}

// MaskToken shortens a token for display.
func MaskToken(tok string) string {
	if len(tok) > 10 {
		return tok[:10] + "..."
	}
	return tok
}

// Name returns the bot's display name.
func Name(s Store) string {
	if n := strings.TrimSpace(s.Get(KeyName, "")); n != "" {
		return n
	}
	return DefaultName
}

// Owners returns the user IDs listed under KeyOwners, or nil when none are.
func Owners(s Store) []string {
	var ids []string
	for _, id := range strings.Split(s.Get(KeyOwners, ""), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

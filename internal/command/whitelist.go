package command

import "slices"

// Whitelist decides which users may run a command.
type Whitelist struct {
	// Allow lists the users admitted; nil admits everyone.
	Allow []string
	// Deny lists users who are always refused.
	Deny []string
	// Exempt lists users admitted regardless of Allow.
	Exempt []string
	// ExemptBots admits bot accounts regardless of Allow.
	ExemptBots bool
	// ExemptSelf admits the bot itself regardless of Allow.
	ExemptSelf bool
}

// HasAccess reports whether userID may run the command. Deny always wins.
func (w *Whitelist) HasAccess(userID string, isBot bool, selfID string) bool {
	if w == nil {
		return true
	}
	if slices.Contains(w.Deny, userID) {
		return false
	}
	switch {
	case w.Allow == nil:
		return true
	case slices.Contains(w.Exempt, userID):
		return true
	case w.ExemptBots && isBot:
		return true
	case w.ExemptSelf && selfID != "" && userID == selfID:
		return true
	}
	return slices.Contains(w.Allow, userID)
}

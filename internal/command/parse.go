// Package command turns chat messages into commands and routes them to
// registered handlers.
package command

import (
	"strings"

	"botkit/internal/config"
)

// Parsed is a message recognised as a command invocation.
type Parsed struct {
	// Command is the first token after the prefix, as typed.
	Command string
	// Args are the remaining space-separated tokens. Runs of spaces yield
	// empty tokens.
	Args []string
	// Prefix is the prefix the message matched: the configured prefix or
	// the bot's mention.
	Prefix string
	// Raw is the original message.
	Raw string
}

// Body returns the message without its prefix, trimmed.
func (p *Parsed) Body() string {
	return strings.TrimSpace(strings.TrimPrefix(p.Raw, p.Prefix))
}

// PrefixSource supplies the configured command prefix. config.Store
// satisfies it.
type PrefixSource interface {
	GetOrInsertDefault(key, def string) string
}

// Parser recognises commands addressed to one bot.
type Parser struct {
	selfMention string
	store       PrefixSource
}

// NewParser returns a Parser for the bot whose mention is selfMention
// ("<@id>" or "<@!id>"; empty disables mention prefixes). A nil store
// means the default prefix.
func NewParser(selfMention string, store PrefixSource) *Parser {
	return &Parser{selfMention: selfMention, store: store}
}

// Parse is the free-function form of (*Parser).Parse.
func Parse(message, selfMention string, store PrefixSource) (*Parsed, bool) {
	return NewParser(selfMention, store).Parse(message)
}

// Parse returns the command in message, or false when the message is not
// addressed to the bot or carries nothing after the prefix. When no mention
// matches, the prefix is read with GetOrInsertDefault, so the default is
// inserted into the store on first use.
func (p *Parser) Parse(message string) (*Parsed, bool) {
	prefix := mentionPrefix(message, p.selfMention)
	if prefix == "" {
		prefix = p.prefix()
	}

	if len(message) <= len(prefix) || !strings.HasPrefix(message, prefix) {
		return nil, false
	}

	rest := strings.TrimSpace(message[len(prefix):])
	tokens := strings.Split(rest, " ")
	return &Parsed{
		Command: tokens[0],
		Args:    tokens[1:],
		Prefix:  prefix,
		Raw:     message,
	}, true
}

func (p *Parser) prefix() string {
	if p.store == nil {
		return config.DefaultPrefix
	}
	return p.store.GetOrInsertDefault(config.KeyPrefix, config.DefaultPrefix)
}

// mentionPrefix returns the form of the bot mention message starts with,
// preferring the nickname form.
func mentionPrefix(message, selfMention string) string {
	bare := BareMention(selfMention)
	if bare == "" {
		return ""
	}
	if nick := NicknameMention(bare); strings.HasPrefix(message, nick) {
		return nick
	}
	if strings.HasPrefix(message, bare) {
		return bare
	}
	return ""
}

package command

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// HandlerFunc runs a command.
type HandlerFunc func(ctx context.Context, inv Invocation) error

// ReplyFunc delivers an embed back to wherever the invocation came from.
type ReplyFunc func(ctx context.Context, e *discordgo.MessageEmbed) error

// Argument documents one positional argument.
type Argument struct {
	Name        string
	Description string
}

// Command is a registered chat command.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	Category    string
	Arguments   []Argument
	MinArgs     int
	// Access restricts who may run the command; nil admits everyone.
	Access  *Whitelist
	Handler HandlerFunc
}

// Usage renders "<prefix><name> <arg> <arg>".
func (c *Command) Usage(prefix string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	sb.WriteString(c.Name)
	for _, a := range c.Arguments {
		sb.WriteString(" <")
		sb.WriteString(a.Name)
		sb.WriteString(">")
	}
	return sb.String()
}

// Invocation is a parsed message plus who sent it.
type Invocation struct {
	*Parsed
	AuthorID    string
	AuthorIsBot bool
	SelfID      string
	// Resolved is set by Dispatch to the command that runs.
	Resolved *Command
	// Reply is optional; handlers that answer with an embed use it.
	Reply ReplyFunc
}

// Respond sends e through Reply, or does nothing when Reply is unset.
func (inv Invocation) Respond(ctx context.Context, e *discordgo.MessageEmbed) error {
	if inv.Reply == nil {
		return nil
	}
	return inv.Reply(ctx, e)
}

package command

import (
	"context"
	"fmt"
	"strings"

	"botkit/internal/embed"
)

// HelpEmbed describes one command: its description, aliases and arguments.
func (r *Router) HelpEmbed(botName, prefix string, cmd *Command, user *embed.User) *embed.Builder {
	args := make([]string, 0, len(cmd.Arguments))
	for _, a := range cmd.Arguments {
		args = append(args, fmt.Sprintf("%s - %s", a.Name, a.Description))
	}
	return embed.FirstPreset(embed.PresetOptions{
		Title:   fmt.Sprintf("%s Help: %s", botName, cmd.Name),
		Color:   embed.ColorBlue,
		Command: prefix + "help " + cmd.Name,
		User:    user,
	}).
		Field("Information:", cmd.Description+"\n**Usage: "+cmd.Usage(prefix)+"**", false).
		Fields(embed.Group("Aliases:", cmd.Aliases), embed.Group("Arguments:", args))
}

// CategoryHelpEmbed lists the commands in category.
func (r *Router) CategoryHelpEmbed(botName, prefix, category string, user *embed.User) *embed.Builder {
	cmds := r.InCategory(category)
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, fmt.Sprintf("%s - %s", c.Name, c.Description))
	}
	return embed.FirstPreset(embed.PresetOptions{
		Title:   fmt.Sprintf("%s Help: %s", botName, category),
		Color:   embed.ColorBlue,
		Command: prefix + "help " + category,
		User:    user,
	}).
		Field("TIP:", fmt.Sprintf("Use `%shelp <command>` for details on one command.", prefix), false).
		Field("Information:", fmt.Sprintf("**Prefix: %s**", prefix), false).
		Fields(embed.Group("Commands - "+category+":", lines))
}

// OverviewEmbed lists the categories.
func (r *Router) OverviewEmbed(botName, prefix string, user *embed.User) *embed.Builder {
	return embed.FirstPreset(embed.PresetOptions{
		Title:   botName + " Help",
		Color:   embed.ColorBlue,
		Command: prefix + "help",
		User:    user,
	}).
		Field("TIP:", fmt.Sprintf("Use `%shelp <category>` to list its commands.", prefix), false).
		Fields(embed.Group("Categories:", r.Categories()))
}

// NewHelpCommand returns a "help" command that answers through
// Invocation.Reply with the overview, a category listing, or one command's
// help, depending on its argument.
func NewHelpCommand(r *Router, botName string) *Command {
	return &Command{
		Name:        "help",
		Aliases:     []string{"h", "commands"},
		Description: "Shows the commands and how to use them.",
		Category:    "General",
		Arguments:   []Argument{{Name: "category|command", Description: "what to show help for"}},
		Handler: func(ctx context.Context, inv Invocation) error {
			topic := strings.TrimSpace(strings.Join(inv.Args, " "))
			var b *embed.Builder
			if topic == "" {
				b = r.OverviewEmbed(botName, inv.Prefix, nil)
			} else if cat, ok := r.Category(topic); ok {
				b = r.CategoryHelpEmbed(botName, inv.Prefix, cat, nil)
			} else if cmd, ok := r.Lookup(topic); ok {
				b = r.HelpEmbed(botName, inv.Prefix, cmd, nil)
			} else {
				return fmt.Errorf("help: %w: %q", ErrUnknownCommand, topic)
			}
			e, err := b.Build()
			if err != nil {
				return fmt.Errorf("help: %w", err)
			}
			return inv.Respond(ctx, e)
		},
	}
}

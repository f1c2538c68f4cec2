package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"botkit/internal/command"
	"botkit/internal/config"
	"botkit/internal/embed"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
)

// builtinRouter registers the commands every botkit bot answers.
func builtinRouter(app *App) (*command.Router, error) {
	store := app.ConfigStore
	r := command.NewRouter()

	cmds := []*command.Command{
		command.NewHelpCommand(r, config.Name(store)),
		{
			Name:        "ping",
			Description: "Checks that the bot is listening.",
			Category:    "General",
			Handler: func(ctx context.Context, inv command.Invocation) error {
				e, err := embed.FirstPreset(embed.PresetOptions{
					Title:   "Pong!",
					Color:   embed.ColorGreen,
					Command: inv.Prefix + inv.Command,
				}).Build()
				if err != nil {
					return err
				}
				return inv.Respond(ctx, e)
			},
		},
		{
			Name:        "echo",
			Aliases:     []string{"say"},
			Description: "Repeats the message back.",
			Category:    "General",
			Arguments:   []command.Argument{{Name: "text", Description: "what to repeat"}},
			MinArgs:     1,
			Handler: func(ctx context.Context, inv command.Invocation) error {
				text := strings.TrimSpace(strings.TrimPrefix(inv.Body(), inv.Command))
				e, err := embed.New().Description(text).Build()
				if err != nil {
					return err
				}
				return inv.Respond(ctx, e)
			},
		},
		{
			Name:        "prefix",
			Description: "Shows the prefix, or changes it.",
			Category:    "Settings",
			Arguments:   []command.Argument{{Name: "new-prefix", Description: "the prefix to use from now on"}},
			Access:      &command.Whitelist{Allow: config.Owners(store), ExemptSelf: true},
			Handler: func(ctx context.Context, inv command.Invocation) error {
				b := embed.FirstPreset(embed.PresetOptions{
					Title:   "Prefix",
					Color:   embed.ColorBlue,
					Command: inv.Prefix + inv.Command,
				})
				if len(inv.Args) == 0 {
					b.Description(fmt.Sprintf("The prefix is `%s`.", config.Prefix(store)))
				} else {
					if err := config.SetPrefix(store, inv.Args[0]); err != nil {
						return err
					}
					b.Description(fmt.Sprintf("The prefix is now `%s`.", inv.Args[0]))
				}
				e, err := b.Build()
				if err != nil {
					return err
				}
				return inv.Respond(ctx, e)
			},
		},
	}

	for _, c := range cmds {
		if err := r.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func newSimulateCmd(provider *AppProvider) *cobra.Command {
	var (
		selfID   string
		authorID string
		isBot    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate <message...>",
		Short: "Run a message through the built-in commands",
		Long: `Parse a message and dispatch it to the built-in commands (help, ping,
echo, prefix) as if a user had sent it. Replies are printed as the embed
JSON the chat platform would receive.

The prefix command only changes the prefix for users listed under the
"owners" key, or for anyone when no owners are set.

Messages from bot accounts (--bot) and from the bot itself (--author equal
to --self) are ignored.

Examples:
  botkit simulate "?help"
  botkit simulate --author 1234 "?prefix !"
  botkit simulate --self 42 "<@!42> echo hello"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			router, err := builtinRouter(app)
			if err != nil {
				return err
			}

			selfMention := ""
			if selfID != "" {
				selfMention = command.Mention(selfID)
			}
			parser := command.NewParser(selfMention, app.ConfigStore)

			replies := 0
			inv := command.Invocation{
				AuthorID:    authorID,
				AuthorIsBot: isBot,
				SelfID:      selfID,
				Reply: func(_ context.Context, e *discordgo.MessageEmbed) error {
					replies++
					enc := json.NewEncoder(app.Out)
					enc.SetIndent("", "  ")
					return enc.Encode(e)
				},
			}

			if router.Ignores(inv) {
				fmt.Fprintln(app.Out, "Ignored: messages from bots and from the bot itself are not commands.")
				return nil
			}

			handled, err := router.Handle(cmd.Context(), parser, strings.Join(args, " "), inv)
			var usage *command.UsageError
			switch {
			case errors.As(err, &usage):
				return fmt.Errorf("usage: %s", usage.Command.Usage(config.Prefix(app.ConfigStore)))
			case err != nil:
				return err
			case !handled:
				fmt.Fprintln(app.Out, "Not a command.")
			case replies == 0:
				fmt.Fprintln(app.Out, "No reply.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&selfID, "self", "", "Bot user ID; messages starting with its mention are commands")
	cmd.Flags().StringVar(&authorID, "author", "", "User ID of the simulated sender")
	cmd.Flags().BoolVar(&isBot, "bot", false, "Simulate a message from a bot account")
	return cmd
}

package cmd

import (
	"fmt"
	"strings"

	"botkit/internal/command"

	"github.com/spf13/cobra"
)

// parseResult is the JSON shape of a parsed message.
type parseResult struct {
	Matched bool     `json:"matched"`
	Command string   `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Prefix  string   `json:"prefix,omitempty"`
	Body    string   `json:"body,omitempty"`
}

func newParseCmd(provider *AppProvider) *cobra.Command {
	var selfID string

	cmd := &cobra.Command{
		Use:   "parse <message...>",
		Short: "Show how a chat message is parsed into a command",
		Long: `Parse a message the way the bot would and print the command, its
arguments and the prefix that matched.

Arguments are joined with single spaces; quote the message to keep runs
of spaces, which produce empty arguments.

Examples:
  botkit parse "?ban 123 456"
  botkit parse --self 12345 "<@!12345> help"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			selfMention := ""
			if selfID != "" {
				selfMention = command.Mention(selfID)
			}
			message := strings.Join(args, " ")

			parsed, ok := command.Parse(message, selfMention, app.ConfigStore)
			result := parseResult{Matched: ok}
			if ok {
				result.Command = parsed.Command
				result.Args = parsed.Args
				result.Prefix = parsed.Prefix
				result.Body = parsed.Body()
			}

			if app.JSON {
				return app.writeJSON(result)
			}

			if !ok {
				fmt.Fprintln(app.Out, "Not a command.")
				return nil
			}
			fmt.Fprintf(app.Out, "prefix:  %q\n", result.Prefix)
			fmt.Fprintf(app.Out, "command: %q\n", result.Command)
			fmt.Fprintf(app.Out, "args:    %q\n", result.Args)
			return nil
		},
	}

	cmd.Flags().StringVar(&selfID, "self", "", "Bot user ID; messages starting with its mention are commands")
	return cmd
}

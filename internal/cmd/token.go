package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"botkit/internal/config"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newTokenCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the bot token",
		Long: `Manage the token the bot logs in with.

$` + config.EnvToken + ` overrides the stored token and is never written
to the file.

Subcommands:
  set    Store a token
  check  Report whether a usable token is configured`,
	}
	cmd.AddCommand(newTokenSetCmd(provider))
	cmd.AddCommand(newTokenCheckCmd(provider))
	return cmd
}

// readSecret reads one line from in, without echo when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Token: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func newTokenSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set [token]",
		Short: "Store the bot token",
		Long: `Store the bot token and save the file.

When no token is given it is read from standard input, without echo on
a terminal, so it does not end up in shell history.

Examples:
  botkit token set
  echo "$TOKEN" | botkit token set`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			var tok string
			if len(args) == 1 {
				tok = strings.TrimSpace(args[0])
			} else if tok, err = readSecret(app.In, app.Err); err != nil {
				return fmt.Errorf("reading token: %w", err)
			}
			if tok == "" {
				return fmt.Errorf("token cannot be blank")
			}

			app.ConfigStore.Put(config.KeyToken, tok)
			if err := app.ConfigStore.Save(); err != nil {
				return fmt.Errorf("saving token: %w", err)
			}

			if app.JSON {
				return app.writeJSON(map[string]string{"token": config.MaskToken(tok)})
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Token saved:"), config.MaskToken(tok))
			return nil
		},
	}
	return cmd
}

func newTokenCheckCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether a usable token is configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			source := "config"
			if strings.TrimSpace(os.Getenv(config.EnvToken)) != "" {
				source = "env"
			}
			tok, tokErr := config.Token(app.ConfigStore)

			if app.JSON {
				result := map[string]interface{}{"configured": tokErr == nil}
				if tokErr == nil {
					result["token"] = config.MaskToken(tok)
					result["source"] = source
				}
				if err := app.writeJSON(result); err != nil {
					return err
				}
				return tokErr
			}

			if tokErr != nil {
				fmt.Fprintln(app.Out, app.WarnColor("No token configured."))
				return tokErr
			}
			fmt.Fprintf(app.Out, "%s %s (from %s)\n", app.SuccessColor("Token configured:"), config.MaskToken(tok), source)
			return nil
		},
	}
	return cmd
}

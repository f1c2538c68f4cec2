package cmd

import (
	"fmt"

	"botkit/internal/config"

	"github.com/spf13/cobra"
)

func newPrefixCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefix [new-prefix]",
		Short: "Show or change the command prefix",
		Long: `Without an argument, print the prefix messages must start with.
With one, store it as the new prefix and save the file.

Examples:
  botkit prefix
  botkit prefix !`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				prefix := config.Prefix(app.ConfigStore)
				if app.JSON {
					return app.writeJSON(map[string]string{"prefix": prefix})
				}
				fmt.Fprintln(app.Out, prefix)
				return nil
			}

			if err := config.SetPrefix(app.ConfigStore, args[0]); err != nil {
				return fmt.Errorf("setting prefix: %w", err)
			}
			log.WithField("new_prefix", args[0]).Info("Prefix changed")

			if app.JSON {
				return app.writeJSON(map[string]string{"prefix": args[0]})
			}
			fmt.Fprintf(app.Out, "%s %s\n", app.SuccessColor("Prefix set to"), args[0])
			return nil
		},
	}
	return cmd
}

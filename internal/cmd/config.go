package cmd

import (
	"fmt"
	"sort"

	"botkit/internal/config"

	"github.com/spf13/cobra"
)

// newConfigCmd creates the config command with subcommands.
func newConfigCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage the bot's properties file.

Configuration is stored as key=value lines. Known keys are prefix, token,
name and owners; any other key is kept as is.

Subcommands:
  get       Get a configuration value
  set       Set a configuration value
  list      List all configuration values
  unset     Remove a configuration value
  validate  Validate configuration`,
	}

	cmd.AddCommand(newConfigGetCmd(provider))
	cmd.AddCommand(newConfigSetCmd(provider))
	cmd.AddCommand(newConfigListCmd(provider))
	cmd.AddCommand(newConfigUnsetCmd(provider))
	cmd.AddCommand(newConfigValidateCmd(provider))

	return cmd
}

// displayValue masks the token so it is never printed in full.
func displayValue(key, value string) string {
	if key == config.KeyToken && value != config.DefaultToken {
		return config.MaskToken(value)
	}
	return value
}

// newConfigGetCmd creates the "config get" subcommand.
func newConfigGetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Long: `Get the value of a configuration key.

Prints the bare value if the key is set, or "key (not set)" if missing.
The token is shown masked.

Examples:
  botkit config get prefix
  botkit config get owners`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			value, ok := app.ConfigStore.Lookup(key)
			value = displayValue(key, value)

			if app.JSON {
				return app.writeJSON(map[string]interface{}{
					"key":   key,
					"value": value,
					"set":   ok,
				})
			}

			if ok {
				fmt.Fprintln(app.Out, value)
			} else {
				fmt.Fprintf(app.Out, "%s (not set)\n", key)
			}
			return nil
		},
	}

	return cmd
}

// newConfigSetCmd creates the "config set" subcommand.
func newConfigSetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration key to a value and save the file.

Examples:
  botkit config set prefix !
  botkit config set owners 1234,5678`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			app.ConfigStore.Put(key, value)
			if err := app.ConfigStore.Save(); err != nil {
				return fmt.Errorf("setting config: %w", err)
			}
			log.WithField("key", key).Info("Config updated")

			if app.JSON {
				return app.writeJSON(map[string]string{
					"key":   key,
					"value": displayValue(key, value),
				})
			}

			fmt.Fprintf(app.Out, "Set %s = %s\n", key, displayValue(key, value))
			return nil
		},
	}

	return cmd
}

// newConfigListCmd creates the "config list" subcommand.
func newConfigListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all configuration values",
		Long: `List all configuration key-value pairs, sorted by key.

Examples:
  botkit config list
  botkit config list --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			all := app.ConfigStore.All()
			for k, v := range all {
				all[k] = displayValue(k, v)
			}

			if app.JSON {
				return app.writeJSON(all)
			}

			if len(all) == 0 {
				fmt.Fprintln(app.Out, "No configuration set")
				return nil
			}

			fmt.Fprintf(app.Out, "Configuration (%s):\n", app.ConfigStore.Path())
			for _, k := range sortedKeys(all) {
				fmt.Fprintf(app.Out, "  %s = %s\n", k, all[k])
			}
			return nil
		},
	}

	return cmd
}

// newConfigUnsetCmd creates the "config unset" subcommand.
func newConfigUnsetCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a configuration value",
		Long: `Remove a configuration key and save the file.

The key is removed regardless of whether it was set.

Examples:
  botkit config unset owners`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			key := args[0]
			app.ConfigStore.Remove(key)
			if err := app.ConfigStore.Save(); err != nil {
				return fmt.Errorf("unsetting config: %w", err)
			}

			if app.JSON {
				return app.writeJSON(map[string]string{"key": key})
			}

			fmt.Fprintf(app.Out, "Unset %s\n", key)
			return nil
		},
	}

	return cmd
}

// newConfigValidateCmd creates the "config validate" subcommand.
func newConfigValidateCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration",
		Long: `Validate the current configuration.

Checks that known keys have usable values. Unknown keys are always
accepted.

Examples:
  botkit config validate
  botkit config validate --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			problems := config.Problems(app.ConfigStore)
			sort.Strings(problems)

			if app.JSON {
				if problems == nil {
					problems = []string{}
				}
				return app.writeJSON(map[string]interface{}{
					"valid":  len(problems) == 0,
					"issues": problems,
				})
			}

			if len(problems) == 0 {
				fmt.Fprintln(app.Out, app.SuccessColor("Configuration is valid."))
				return nil
			}

			fmt.Fprintln(app.Out, app.WarnColor("Configuration errors:"))
			for _, p := range problems {
				fmt.Fprintf(app.Out, "  %s\n", p)
			}
			return fmt.Errorf("configuration has %d error(s)", len(problems))
		},
	}

	return cmd
}

// sortedKeys returns the sorted keys of a map.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

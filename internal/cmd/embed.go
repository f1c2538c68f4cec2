package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"botkit/internal/config"
	"botkit/internal/embed"

	"github.com/spf13/cobra"
)

func newEmbedCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Work with embed templates",
		Long: `Embed templates describe a rich message in JSON, TOML or YAML, stored as
<name>.embed.json, <name>.embed.toml or <name>.embed.yaml in an embeds/
directory next to the properties file or in ~/.botkit/embeds/.

Subcommands:
  render  Render a template to the platform's embed JSON
  list    List available templates`,
	}
	cmd.AddCommand(newEmbedRenderCmd(provider))
	cmd.AddCommand(newEmbedListCmd(provider))
	return cmd
}

// loadTemplate treats ref as a file path when it names an existing file,
// and as a template name otherwise.
func loadTemplate(app *App, ref string) (*embed.Template, error) {
	if filepath.Ext(ref) != "" {
		if _, err := os.Stat(ref); err == nil {
			return embed.LoadTemplateFile(ref)
		}
	}
	return embed.LoadTemplate(ref, app.EmbedPath)
}

func newEmbedRenderCmd(provider *AppProvider) *cobra.Command {
	var vars []string

	cmd := &cobra.Command{
		Use:   "render <name|file>",
		Short: "Render a template to the platform's embed JSON",
		Long: `Render an embed template. Text may contain {placeholders}; {prefix}
and {name} are filled from the configuration and --var adds more.

Examples:
  botkit embed render welcome
  botkit embed render ./rules.embed.yaml --var guild=Gophers`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			tpl, err := loadTemplate(app, args[0])
			if err != nil {
				return err
			}

			values := map[string]string{
				"prefix": config.Prefix(app.ConfigStore),
				"name":   config.Name(app.ConfigStore),
			}
			for _, v := range vars {
				k, val, ok := strings.Cut(v, "=")
				if !ok || k == "" {
					return fmt.Errorf("invalid --var %q: want key=value", v)
				}
				values[k] = val
			}

			expanded := tpl.Expand(values)
			e, err := expanded.Builder().Build()
			if err != nil {
				return fmt.Errorf("rendering %s: %w", args[0], err)
			}

			enc := json.NewEncoder(app.Out)
			if !app.JSON {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(e)
		},
	}

	cmd.Flags().StringArrayVar(&vars, "var", nil, "Placeholder value as key=value (repeatable)")
	return cmd
}

func newEmbedListCmd(provider *AppProvider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := provider.Get()
			if err != nil {
				return err
			}

			names, err := embed.ListTemplates(app.EmbedPath)
			if err != nil {
				return err
			}

			if app.JSON {
				if names == nil {
					names = []string{}
				}
				return app.writeJSON(map[string]interface{}{
					"templates":   names,
					"search_path": app.EmbedPath,
				})
			}

			if len(names) == 0 {
				fmt.Fprintf(app.Out, "No templates found in %s\n", strings.Join(app.EmbedPath, ", "))
				return nil
			}
			for _, n := range names {
				fmt.Fprintln(app.Out, n)
			}
			return nil
		},
	}
	return cmd
}

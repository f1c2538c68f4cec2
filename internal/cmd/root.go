package cmd

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"botkit/internal/cmd/defaults"
	"botkit/internal/config"
	"botkit/internal/config/propstore"
	"botkit/internal/embed"
	"botkit/internal/logutil"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// AppProvider lazily initializes the App on first use.
type AppProvider struct {
	once    sync.Once
	app     *App
	err     error
	logFile io.Closer

	// Config captured from flags before Execute()
	ConfigPath string
	JSONOutput bool
	LogLevel   string
	LogFormat  string
	LogFile    string
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
}

// Get returns the App, initializing it on first call.
func (p *AppProvider) Get() (*App, error) {
	p.once.Do(func() {
		if p.app == nil {
			p.app, p.err = p.init()
		}
	})
	return p.app, p.err
}

// NewTestProvider creates a provider pre-initialized with the given App.
// Used for testing commands with a mock/test App.
func NewTestProvider(app *App) *AppProvider {
	return &AppProvider{
		app:        app,
		JSONOutput: app.JSON,
		In:         app.In,
		Out:        app.Out,
		Err:        app.Err,
	}
}

func (p *AppProvider) init() (*App, error) {
	in := p.In
	if in == nil {
		in = os.Stdin
	}
	out := p.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := p.Err
	if errOut == nil {
		errOut = os.Stderr
	}

	level, format := p.LogLevel, p.LogFormat
	if level == "" {
		level = "warn"
	}
	if format == "" {
		format = "text"
	}
	if err := logutil.Configure(errOut, level, format); err != nil {
		return nil, err
	}
	if p.LogFile != "" {
		closer, err := logutil.ConfigurePersistentLogging(p.LogFile, format)
		if err != nil {
			log.WithError(err).Error("Failed to configure logging to disk")
		}
		p.logFile = closer
	}

	path := config.ResolvePath(p.ConfigPath)
	store, source, err := propstore.Open(path, propstore.WithBundled(defaults.FS))
	if err != nil {
		return nil, err
	}

	entry := log.WithField("path", path).WithField("source", source.String())
	switch source {
	case config.SourceEmpty:
		config.ApplyDefaults(store)
		entry.Info("No config file found, starting from defaults")
	case config.SourceBundled:
		entry.Info("No config file found, using bundled defaults")
	default:
		entry.Debug("Loaded config")
	}
	if n := store.Skipped(); n > 0 {
		entry.WithField("lines", n).Warn("Skipped malformed config lines")
	}

	return &App{
		ConfigStore: config.Locked(store),
		Source:      source,
		EmbedPath:   embed.DefaultSearchPath(filepath.Dir(path)),
		In:          in,
		Out:         out,
		Err:         errOut,
		JSON:        p.JSONOutput,
	}, nil
}

// Close releases the log file opened for --log-file, if any.
func (p *AppProvider) Close() error {
	if p.logFile == nil {
		return nil
	}
	err := p.logFile.Close()
	p.logFile = nil
	return err
}

// Execute runs the CLI.
func Execute() error {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	provider := &AppProvider{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}

	defer provider.Close()

	rootCmd := newRootCmd(provider)
	return rootCmd.Execute()
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd(provider *AppProvider) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "botkit",
		Short: "Manage a chat bot's configuration and try out its commands",
		Long: `botkit manages the properties file a chat bot reads its prefix and
token from, shows how messages are parsed into commands, and renders
embed templates to the JSON the chat platform accepts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags - these populate the provider config
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&provider.ConfigPath, "config", "", "Path to the properties file (default $"+config.EnvConfig+" or "+config.DefaultPath+")")
	flags.BoolVar(&provider.JSONOutput, "json", false, "Output in JSON format")
	flags.StringVar(&provider.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&provider.LogFormat, "log-format", "text", "Log format: text or json")
	flags.StringVar(&provider.LogFile, "log-file", "", "Also append logs to this file")

	rootCmd.AddCommand(newConfigCmd(provider))
	rootCmd.AddCommand(newPrefixCmd(provider))
	rootCmd.AddCommand(newTokenCmd(provider))
	rootCmd.AddCommand(newParseCmd(provider))
	rootCmd.AddCommand(newSimulateCmd(provider))
	rootCmd.AddCommand(newEmbedCmd(provider))
	rootCmd.AddCommand(newVersionCmd(provider))

	return rootCmd
}

// Package cmd implements the botkit command-line interface.
package cmd

import (
	"encoding/json"
	"io"
	"os"

	"botkit/internal/config"
	"botkit/internal/embed"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var log = logrus.WithField("prefix", "cmd")

// App holds application state shared across commands.
type App struct {
	ConfigStore config.Store
	Source      config.Source   // where ConfigStore's entries came from
	EmbedPath   embed.SearchPath // directories searched for embed templates
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
	JSON        bool // output in JSON format
}

func (a *App) writeJSON(v any) error {
	return json.NewEncoder(a.Out).Encode(v)
}

func (a *App) isTerminal() bool {
	f, ok := a.Out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SuccessColor returns the string wrapped in green ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) SuccessColor(s string) string {
	if a.isTerminal() {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// WarnColor returns the string wrapped in orange ANSI codes if stdout is a terminal,
// otherwise returns the string unchanged.
func (a *App) WarnColor(s string) string {
	if a.isTerminal() {
		return "\033[38;5;214m" + s + "\033[0m"
	}
	return s
}

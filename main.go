// botkit is the CLI for managing a chat bot's configuration, previewing
// command parsing and rendering embed templates.
package main

import (
	"fmt"
	"os"

	"botkit/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

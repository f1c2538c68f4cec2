package command

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrAccessDenied     = errors.New("access denied")
	ErrDuplicateCommand = errors.New("command name already registered")
	ErrIgnoredAuthor    = errors.New("message author is ignored")
)

// UsageError is returned by Dispatch when a command receives fewer
// arguments than it requires.
type UsageError struct {
	Command *Command
	Got     int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s needs at least %d argument(s), got %d; usage: %s",
		e.Command.Name, e.Command.MinArgs, e.Got, e.Command.Usage(""))
}

package config

import (
	"errors"
	"fmt"
)

// ErrTokenNotConfigured is returned by Token when no usable token is set.
var ErrTokenNotConfigured = errors.New("bot token not configured")

// IOError reports a failure to read or write a configuration file.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s config %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

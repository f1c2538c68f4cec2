// Package logutil configures the process-wide logrus logger.
package logutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

// Formats accepted by Configure.
var Formats = []string{"text", "json"}

// Formatter returns the logrus formatter for format. Colours are only used
// for text written to a terminal.
func Formatter(format string, colors bool) (logrus.Formatter, error) {
	switch format {
	case "text", "":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = timestampFormat
		formatter.FullTimestamp = true
		formatter.DisableColors = !colors
		return formatter, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %s, want one of %s", format, strings.Join(Formats, ", "))
	}
}

// Configure points the standard logger at out with the given level and
// format.
func Configure(out io.Writer, level, format string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	formatter, err := Formatter(format, false)
	if err != nil {
		return err
	}
	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(formatter)
	return nil
}

var _ = logrus.Hook(&WriterHook{})

// WriterHook copies entries of the given levels to Logger.
type WriterHook struct {
	LogLevels []logrus.Level
	Logger    *logrus.Logger
}

// Fire formats the entry with the hook's logger and writes it.
func (hook *WriterHook) Fire(entry *logrus.Entry) error {
	line, err := hook.Logger.Formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = hook.Logger.Out.Write(line)
	return err
}

// Levels defines on which log levels this hook would trigger.
func (hook *WriterHook) Levels() []logrus.Level {
	return hook.LogLevels
}

// ConfigurePersistentLogging appends every log entry to fileName in the
// given format, in addition to the normal output. The returned closer
// releases the file.
func ConfigurePersistentLogging(fileName, format string) (io.Closer, error) {
	formatter, err := Formatter(format, false)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, err
	}
	fileLogger := &logrus.Logger{
		Out:       f,
		Formatter: formatter,
		Level:     logrus.TraceLevel,
	}
	logrus.AddHook(&WriterHook{LogLevels: logrus.AllLevels, Logger: fileLogger})
	logrus.WithField("logFileName", fileName).Debug("Logs will be made persistent")
	return f, nil
}

// Package log builds the structured logger used by the setupver CLI.
package log

import (
	"errors"
	"fmt"
	"io"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"
)

// Accepted values for the log format.
const (
	JSONFormat   = "json"
	LogfmtFormat = "logfmt"
	TextFormat   = "text"
)

// Sentinel errors for package log.
var (
	// ErrUnknownLevel is returned for a level name GetLevel does not know.
	ErrUnknownLevel = errors.New("unknown log level")

	// ErrUnknownFormat is returned for a format name GetFormatter does not know.
	ErrUnknownFormat = errors.New("unknown log format")
)

// New parses level and format and creates a logger writing to w. Both values
// are checked; the returned error carries every failure.
func New(w io.Writer, level, format string) (*charmlog.Logger, error) {
	var merr error

	lvl, err := GetLevel(level)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	f, err := GetFormatter(format)
	if err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return nil, merr
	}

	return NewWithOptions(w, lvl, f), nil
}

// NewWithOptions creates a logger writing to w from parsed values. The logger
// also satisfies [slog.Handler].
func NewWithOptions(w io.Writer, level charmlog.Level, f charmlog.Formatter) *charmlog.Logger {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:     level,
		Formatter: f,
		Prefix:    "setupver",
	})
}

// GetLevel parses a level name. Empty means warn.
func GetLevel(level string) (charmlog.Level, error) {
	switch strings.ToLower(level) {
	case "error":
		return charmlog.ErrorLevel, nil
	case "warn", "warning", "":
		return charmlog.WarnLevel, nil
	case "info":
		return charmlog.InfoLevel, nil
	case "debug":
		return charmlog.DebugLevel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// GetFormatter parses a format name. Empty means text.
func GetFormatter(format string) (charmlog.Formatter, error) {
	switch strings.ToLower(format) {
	case JSONFormat:
		return charmlog.JSONFormatter, nil
	case LogfmtFormat:
		return charmlog.LogfmtFormatter, nil
	case TextFormat, "":
		return charmlog.TextFormatter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Package cli holds the flag plumbing shared by the mazegen commands.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Usagef builds an ExitError with exit code 2.
func Usagef(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse runs fs over args. It reports help=true when -h was requested; any
// other parse failure becomes an ExitError with code 2.
func Parse(fs *flag.FlagSet, args []string) (help bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, nil
		}
		return false, &ExitError{Code: 2, Message: err.Error()}
	}
	return false, nil
}

// LogFlags selects the slog handler for a command.
type LogFlags struct {
	Format string
	Level  string
}

// Bind attaches -log-format and -log-level to fs.
func (l *LogFlags) Bind(fs *flag.FlagSet) {
	if l.Format == "" {
		l.Format = "text"
	}
	if l.Level == "" {
		l.Level = "info"
	}
	fs.StringVar(&l.Format, "log-format", l.Format, "log output format: 'text' or 'json'")
	fs.StringVar(&l.Level, "log-level", l.Level, "logging level: 'debug', 'info', 'warn' or 'error'")
}

// Logger validates the flags and builds a logger writing to w. It does not
// touch the global logger.
func (l *LogFlags) Logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(l.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, Usagef("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", l.Level)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(l.Format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, Usagef("invalid log-format %q: must be 'text' or 'json'", l.Format)
}

// Vars collects repeated -var key=value flags.
type Vars map[string]string

// String implements flag.Value.
func (v Vars) String() string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + v[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (v Vars) Set(s string) error {
	k, val, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("want key=value, got %q", s)
	}
	v[k] = val
	return nil
}

// Package report carries the per-entry event stream of a reconciliation run.
//
// A Reporter prints one styled line per event at or above its threshold and
// counts every warning it receives, whether printed or not. The controller
// builds a fresh Reporter for each phase and reads WarningCount after the
// planning pass to decide whether to commit.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/style"
	"github.com/rs/zerolog"
)

// Options configures a Reporter
type Options struct {
	// Verbosity is the -v count: 0 shows warnings, 1 info, 2 or more debug
	Verbosity int

	// Color enables styled output
	Color bool

	// Phase names the run in diagnostic log fields ("plan" or "commit")
	Phase string
}

// Reporter prints events and counts warnings
type Reporter struct {
	out       io.Writer
	styles    *style.Styles
	threshold zerolog.Level
	phase     string
	warnings  int
	logger    zerolog.Logger
}

// New creates a Reporter writing to out
func New(out io.Writer, opts Options) *Reporter {
	return &Reporter{
		out:       out,
		styles:    style.New(out, opts.Color),
		threshold: LevelForVerbosity(opts.Verbosity),
		phase:     opts.Phase,
		logger:    logging.GetLogger("report"),
	}
}

// Discard returns a Reporter that prints nothing but still counts warnings
func Discard() *Reporter {
	return New(io.Discard, Options{})
}

// LevelForVerbosity maps the -v count to the lowest printed level
func LevelForVerbosity(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Emit records an event. Warnings are counted even when filtered out.
func (r *Reporter) Emit(level zerolog.Level, msg string) {
	if level == zerolog.WarnLevel {
		r.warnings++
	}
	r.print(level, msg)
}

// Advise prints a warning that does not count toward the conflict gate
func (r *Reporter) Advise(msg string) {
	r.print(zerolog.WarnLevel, msg)
}

// WarningCount returns the number of counted warnings emitted so far
func (r *Reporter) WarningCount() int {
	return r.warnings
}

// Debugf emits a formatted debug event
func (r *Reporter) Debugf(format string, args ...interface{}) {
	r.Emit(zerolog.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof emits a formatted info event
func (r *Reporter) Infof(format string, args ...interface{}) {
	r.Emit(zerolog.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf emits a formatted, counted warning
func (r *Reporter) Warnf(format string, args ...interface{}) {
	r.Emit(zerolog.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf emits a formatted error event
func (r *Reporter) Errorf(format string, args ...interface{}) {
	r.Emit(zerolog.ErrorLevel, fmt.Sprintf(format, args...))
}

func (r *Reporter) print(level zerolog.Level, msg string) {
	msg = Standardize(msg)

	r.logger.Debug().
		Str("phase", r.phase).
		Str("level", level.String()).
		Msg(msg)

	if level < r.threshold {
		return
	}
	_, _ = fmt.Fprintln(r.out, r.styles.ForLevel(level).Render(msg))
}

// Standardize capitalizes the first letter of every line of msg
func Standardize(msg string) string {
	lines := strings.Split(msg, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = strings.ToUpper(line[:1]) + line[1:]
	}
	return strings.Join(lines, "\n")
}

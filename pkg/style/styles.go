// Package style defines the visual styling for dot's terminal output.
//
// Styles are built from a lipgloss.Renderer bound to the output stream, so
// color support is decided per stream (stderr may be a terminal while
// stdout is piped).
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Styles holds one style per event level plus a few accents
type Styles struct {
	Debug   lipgloss.Style
	Info    lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Fatal   lipgloss.Style
	Path    lipgloss.Style
}

// New returns styles rendering to w. When color is false every style
// renders plain text.
func New(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	switch {
	case !color:
		r.SetColorProfile(termenv.Ascii)
	case r.ColorProfile() == termenv.Ascii:
		// Forced color on a stream that does not look like a terminal
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Styles{
		Debug:   r.NewStyle().Foreground(DebugColor),
		Info:    r.NewStyle().Foreground(InfoColor),
		Warning: r.NewStyle().Foreground(WarningColor),
		Error:   r.NewStyle().Foreground(ErrorColor),
		Fatal:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Path:    r.NewStyle().Foreground(PathColor).Italic(true),
	}
}

// ForLevel returns the style used for events of the given level
func (s *Styles) ForLevel(level zerolog.Level) lipgloss.Style {
	switch level {
	case zerolog.TraceLevel, zerolog.DebugLevel:
		return s.Debug
	case zerolog.InfoLevel:
		return s.Info
	case zerolog.WarnLevel:
		return s.Warning
	case zerolog.ErrorLevel:
		return s.Error
	default:
		return s.Fatal
	}
}

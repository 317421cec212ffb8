package reconcile

import (
	"io"
	"os"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/operations"
	"github.com/arthur-debert/dot/pkg/render"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/arthur-debert/dot/pkg/walker"
	"github.com/rs/zerolog"
)

// ConflictSummary is reported when the plan pass finds conflicts
const ConflictSummary = "Error: There were conflicts. Exiting without changing dotfiles."

// Status is the outcome of a run
type Status int

const (
	// Ok means the plan was clean (and committed unless dry run)
	Ok Status = iota
	// Aborted means the plan found conflicts and nothing was changed
	Aborted
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case Ok:
		return "ok"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result describes a completed run
type Result struct {
	Status Status
	// Conflicts is the number of counted warnings from the plan pass
	Conflicts int
	// Committed reports whether the commit pass ran
	Committed bool
}

// Options configures a run
type Options struct {
	Operation operations.Operation
	Home      string
	Profiles  []string
	DryRun    bool

	// Verbosity sets the plan pass threshold; the commit pass only shows warnings
	Verbosity int
	Color     bool
	// Output receives reporter events (default os.Stderr)
	Output io.Writer

	Config     *config.Config
	FileSystem filesystem.FS
	Lookup     render.LookupFunc
}

// Run plans the operation and commits it when the plan is clean.
// Conflicts are a Result, not an error; errors are filesystem or
// configuration failures.
func Run(opts Options) (*Result, error) {
	logger := logging.GetLogger("reconcile")

	if len(opts.Profiles) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "at least one profile is required")
	}
	if opts.Config == nil {
		opts.Config = config.Default()
	}
	if opts.FileSystem == nil {
		opts.FileSystem = filesystem.NewOS()
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	logger.Info().
		Str("operation", opts.Operation.String()).
		Str("home", opts.Home).
		Strs("profiles", opts.Profiles).
		Bool("dryRun", opts.DryRun).
		Msg("Starting reconciliation")

	w := walker.New(opts.FileSystem, opts.Config, opts.Lookup)

	done := logging.LogOperationStart(logger, "plan")
	plan := report.New(opts.Output, report.Options{
		Verbosity: opts.Verbosity,
		Color:     opts.Color,
		Phase:     "plan",
	})
	err := w.Walk(walker.Options{
		Operation: opts.Operation,
		Home:      opts.Home,
		Profiles:  opts.Profiles,
		DryRun:    true,
		Reporter:  plan,
	})
	done()
	if err != nil {
		return nil, err
	}

	if n := plan.WarningCount(); n > 0 {
		plan.Emit(zerolog.ErrorLevel, ConflictSummary)
		logger.Info().Int("conflicts", n).Msg("Plan has conflicts, aborting")
		return &Result{Status: Aborted, Conflicts: n}, nil
	}

	if opts.DryRun {
		logger.Info().Msg("Dry run requested, skipping commit")
		return &Result{Status: Ok}, nil
	}

	done = logging.LogOperationStart(logger, "commit")
	commit := report.New(opts.Output, report.Options{
		Color: opts.Color,
		Phase: "commit",
	})
	err = w.Walk(walker.Options{
		Operation: opts.Operation,
		Home:      opts.Home,
		Profiles:  opts.Profiles,
		DryRun:    false,
		Reporter:  commit,
	})
	done()
	if err != nil {
		return nil, err
	}

	return &Result{Status: Ok, Committed: true}, nil
}

// Package walker enumerates the candidate entries of profile directories
// and applies an operation to each of them.
//
// Profiles are visited in the order given and their direct children in
// name order, so a run is reproducible for a fixed filesystem state. Hidden
// entries, rendered artifacts and entries matching the profile's ignore
// patterns are skipped.
package walker

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/names"
	"github.com/arthur-debert/dot/pkg/operations"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/profile"
	"github.com/arthur-debert/dot/pkg/render"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/rs/zerolog"
)

// Options describes one pass over the profiles
type Options struct {
	Operation operations.Operation
	Home      string
	Profiles  []string
	DryRun    bool
	Reporter  *report.Reporter
}

// Walker dispatches operations over profile entries
type Walker struct {
	fs           filesystem.FS
	naming       config.Naming
	profileFiles []string
	executor     *operations.Executor
	logger       zerolog.Logger
}

// New creates a Walker. A nil lookup renders templates from the environment.
func New(fsys filesystem.FS, cfg *config.Config, lookup render.LookupFunc) *Walker {
	return &Walker{
		fs:           fsys,
		naming:       cfg.Naming,
		profileFiles: cfg.Profile.ConfigFiles,
		executor:     operations.NewExecutor(fsys, cfg.Naming, lookup),
		logger:       logging.GetLogger("walker"),
	}
}

// Walk applies opts.Operation to every candidate entry of every profile.
//
// A missing home is a counted warning and ends the pass. A missing profile
// is reported without being counted and skipped. Filesystem failures abort
// the pass and are returned.
func (w *Walker) Walk(opts Options) error {
	home, err := paths.CanonicalizeWith(w.fs, opts.Home)
	if err != nil {
		return err
	}
	isDir, err := w.isDir(home)
	if err != nil {
		return err
	}
	if !isDir {
		opts.Reporter.Warnf("folder %s does not exist", home)
		return nil
	}

	for _, p := range opts.Profiles {
		dir, err := paths.CanonicalizeWith(w.fs, p)
		if err != nil {
			return err
		}
		isDir, err := w.isDir(dir)
		if err != nil {
			return err
		}
		if !isDir {
			opts.Reporter.Advise("profile " + dir + " does not exist")
			continue
		}
		if err := w.walkProfile(dir, home, opts); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkProfile(dir, home string, opts Options) error {
	settings, err := profile.Load(w.fs, dir, w.profileFiles)
	if err != nil {
		return err
	}

	entries, err := w.fs.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot list profile %s", dir).
			WithDetail("path", dir)
	}

	w.logger.Debug().
		Str("profile", dir).
		Int("entries", len(entries)).
		Str("operation", opts.Operation.String()).
		Bool("dryRun", opts.DryRun).
		Msg("walking profile")

	for _, entry := range entries {
		name := entry.Name()
		candidate := filepath.Join(dir, name)

		// Follows symlinks so a linked directory is treated as a directory
		isDir, isFile := false, false
		info, err := w.fs.Stat(candidate)
		switch {
		case err == nil:
			isDir = info.IsDir()
			isFile = info.Mode().IsRegular()
		case !filesystem.IsUnreachable(err):
			return accessError(err, candidate)
		}

		if strings.HasPrefix(name, ".") || (isFile && names.IsRendered(name, w.naming)) {
			opts.Reporter.Debugf("file %s ignored.", candidate)
			continue
		}
		if pattern := settings.Ignored(name); pattern != "" {
			w.logger.Trace().Str("entry", name).Str("pattern", pattern).Msg("entry matches ignore pattern")
			opts.Reporter.Debugf("file %s ignored.", candidate)
			continue
		}

		rendered, dotfile := names.Transform(name, isDir, w.naming)
		ctx := operations.Context{
			Candidate: candidate,
			Rendered:  filepath.Join(dir, rendered),
			Dotfile:   names.DotfilePath(home, dotfile, w.naming),
			IsDir:     isDir,
			DryRun:    opts.DryRun,
			Reporter:  opts.Reporter,
		}
		if err := w.executor.Apply(opts.Operation, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) isDir(path string) (bool, error) {
	isDir, err := filesystem.IsDir(w.fs, path)
	if err != nil {
		return false, accessError(err, path)
	}
	return isDir, nil
}

func accessError(err error, path string) error {
	return errors.Wrapf(err, errors.ErrFileAccess, "cannot access %s", path).
		WithDetail("path", path)
}

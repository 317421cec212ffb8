package links

import (
	"os"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/paths"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/rs/zerolog"
)

// Linker performs link and unlink steps against a filesystem
type Linker struct {
	fs     filesystem.FS
	logger zerolog.Logger
}

// New creates a Linker
func New(fsys filesystem.FS) *Linker {
	return &Linker{
		fs:     fsys,
		logger: logging.GetLogger("links"),
	}
}

// state is what currently sits at a dotfile path
type state struct {
	exists    bool
	isSymlink bool
	// actual is the canonical link target when isSymlink is set
	actual string
	// matches reports whether actual equals the canonical rendered path
	matches bool
}

func (l *Linker) inspect(rendered, dotfile string) (state, error) {
	info, err := l.fs.Lstat(dotfile)
	if err != nil {
		if os.IsNotExist(err) {
			return state{}, nil
		}
		return state{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", dotfile).
			WithDetail("path", dotfile)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return state{exists: true}, nil
	}

	raw, err := l.fs.Readlink(dotfile)
	if err != nil {
		return state{}, errors.Wrapf(err, errors.ErrSymlinkRead, "cannot read link %s", dotfile).
			WithDetail("path", dotfile)
	}

	actual, err := paths.ResolveLinkTargetWith(l.fs, dotfile, raw)
	if err != nil {
		return state{}, err
	}
	expected, err := paths.CanonicalizeWith(l.fs, rendered)
	if err != nil {
		return state{}, err
	}

	l.logger.Trace().
		Str("dotfile", dotfile).
		Str("raw", raw).
		Str("actual", actual).
		Str("expected", expected).
		Msg("compared link target")

	return state{exists: true, isSymlink: true, actual: actual, matches: actual == expected}, nil
}

// Link makes dotfile a symbolic link to rendered when nothing exists there.
// Existing paths are verified, never replaced.
func (l *Linker) Link(rendered, dotfile string, dryRun bool, rep *report.Reporter) (Outcome, error) {
	st, err := l.inspect(rendered, dotfile)
	if err != nil {
		return 0, err
	}

	switch {
	case !st.exists:
		if !dryRun {
			if err := l.fs.Symlink(rendered, dotfile); err != nil {
				return 0, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s to %s", dotfile, rendered).
					WithDetail("path", dotfile).
					WithDetail("target", rendered)
			}
		}
		rep.Infof("file %s created and linked to %s", dotfile, rendered)
		return Created, nil

	case !st.isSymlink:
		rep.Warnf("file %s exists but is not a link", dotfile)
		return ConflictNotSymlink, nil

	case !st.matches:
		rep.Warnf("file %s exists and points to %s instead of %s", dotfile, st.actual, rendered)
		return ConflictWrongTarget, nil

	default:
		rep.Infof("file %s links to %s as expected", dotfile, rendered)
		return LinksAsExpected, nil
	}
}

// Unlink removes dotfile when it is a symbolic link to rendered. A missing
// dotfile is reported as a warning.
func (l *Linker) Unlink(rendered, dotfile string, dryRun bool, rep *report.Reporter) (Outcome, error) {
	st, err := l.inspect(rendered, dotfile)
	if err != nil {
		return 0, err
	}

	switch {
	case !st.exists:
		rep.Warnf("file %s does not exist", dotfile)
		return NotExists, nil

	case !st.isSymlink:
		rep.Warnf("file %s exists but is not a link", dotfile)
		return ConflictNotSymlink, nil

	case !st.matches:
		rep.Warnf("file %s exists and points to %s instead of %s", dotfile, st.actual, rendered)
		return ConflictWrongTarget, nil
	}

	if !dryRun {
		if err := l.fs.Remove(dotfile); err != nil {
			return 0, errors.Wrapf(err, errors.ErrSymlinkRemove, "cannot remove link %s", dotfile).
				WithDetail("path", dotfile)
		}
	}
	rep.Infof("file %s unlinked from %s", dotfile, rendered)
	return Unlinked, nil
}

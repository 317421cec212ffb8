package render

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/report"
	"github.com/rs/zerolog"
)

// Renderer writes rendered artifacts for template files
type Renderer struct {
	fs     filesystem.FS
	lookup LookupFunc
	logger zerolog.Logger
}

// New creates a Renderer. A nil lookup resolves from the environment.
func New(fsys filesystem.FS, lookup LookupFunc) *Renderer {
	if lookup == nil {
		lookup = EnvLookup
	}
	return &Renderer{
		fs:     fsys,
		lookup: lookup,
		logger: logging.GetLogger("render"),
	}
}

// Render substitutes src into dst, creating or overwriting dst with the
// permission bits of src. It does nothing when src and dst are the same
// path. Under dry run nothing is read or written but the event is still
// reported.
func (r *Renderer) Render(src, dst string, dryRun bool, rep *report.Reporter) error {
	if src == dst {
		return nil
	}

	if !dryRun {
		info, err := r.fs.Stat(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot stat template %s", src).
				WithDetail("path", src)
		}

		content, err := r.fs.ReadFile(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "cannot read template %s", src).
				WithDetail("path", src)
		}

		rendered := Substitute(string(content), r.lookup)
		if err := r.fs.WriteFile(dst, []byte(rendered), info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst).
				WithDetail("path", dst)
		}

		r.logger.Debug().
			Str("source", src).
			Str("target", dst).
			Int("bytes", len(rendered)).
			Msg("rendered template")
	}

	rep.Infof("file %s created.", dst)
	return nil
}

// DiscoverTemplates lists every regular file under dir, at any depth and
// including hidden paths, whose name ends with suffix. Results are ordered
// by path components. Symlinked directories are not followed.
func DiscoverTemplates(fsys filesystem.FS, dir, suffix string) ([]string, error) {
	var found []string
	if err := discover(fsys, dir, suffix, &found); err != nil {
		return nil, err
	}
	return found, nil
}

func discover(fsys filesystem.FS, dir, suffix string, found *[]string) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot list %s", dir).
			WithDetail("path", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if err := discover(fsys, path, suffix, found); err != nil {
				return err
			}
		case entry.Type()&fs.ModeType == 0:
			name := entry.Name()
			if strings.HasSuffix(name, suffix) && len(name) > len(suffix) {
				*found = append(*found, path)
			}
		}
	}
	return nil
}

package operations

import (
	"path/filepath"

	"github.com/arthur-debert/dot/pkg/config"
	"github.com/arthur-debert/dot/pkg/filesystem"
	"github.com/arthur-debert/dot/pkg/links"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/names"
	"github.com/arthur-debert/dot/pkg/render"
	"github.com/rs/zerolog"
)

// Executor binds the steps to a filesystem and naming convention
type Executor struct {
	fs       filesystem.FS
	naming   config.Naming
	renderer *render.Renderer
	linker   *links.Linker
	logger   zerolog.Logger
}

// NewExecutor creates an Executor. A nil lookup renders from the environment.
func NewExecutor(fsys filesystem.FS, naming config.Naming, lookup render.LookupFunc) *Executor {
	return &Executor{
		fs:       fsys,
		naming:   naming,
		renderer: render.New(fsys, lookup),
		linker:   links.New(fsys),
		logger:   logging.GetLogger("operations"),
	}
}

// Steps returns the step sequence for op
func (e *Executor) Steps(op Operation) []Step {
	switch op {
	case Link:
		return []Step{e.RenderLinkRecurse, e.RenderSingle, e.Link}
	case Unlink:
		return []Step{e.Unlink}
	default:
		return nil
	}
}

// Apply runs every step of op on ctx, stopping at the first error
func (e *Executor) Apply(op Operation, ctx Context) error {
	e.logger.Trace().
		Str("operation", op.String()).
		Str("candidate", ctx.Candidate).
		Bool("dryRun", ctx.DryRun).
		Msg("applying operation")

	for _, step := range e.Steps(op) {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// RenderLinkRecurse renders and links every template nested under a
// directory entry. Each template links, inside its own directory, from its
// bare stem to its rendered file. Files are ignored.
func (e *Executor) RenderLinkRecurse(ctx Context) error {
	if !ctx.IsDir {
		return nil
	}

	templates, err := render.DiscoverTemplates(e.fs, ctx.Candidate, e.naming.TemplateSuffix)
	if err != nil {
		return err
	}

	for _, tmpl := range templates {
		dir, name := filepath.Split(tmpl)
		rendered, dotfile := names.Transform(name, false, e.naming)

		sub := ctx
		sub.Candidate = tmpl
		sub.Rendered = filepath.Join(dir, rendered)
		sub.Dotfile = filepath.Join(dir, dotfile)
		sub.IsDir = false

		if err := e.RenderSingle(sub); err != nil {
			return err
		}
		if err := e.Link(sub); err != nil {
			return err
		}
	}
	return nil
}

// RenderSingle renders the entry itself when it is a template
func (e *Executor) RenderSingle(ctx Context) error {
	if ctx.IsDir {
		return nil
	}
	return e.renderer.Render(ctx.Candidate, ctx.Rendered, ctx.DryRun, ctx.Reporter)
}

// Link links the dotfile to the rendered path
func (e *Executor) Link(ctx Context) error {
	_, err := e.linker.Link(ctx.Rendered, ctx.Dotfile, ctx.DryRun, ctx.Reporter)
	return err
}

// Unlink removes the dotfile link to the rendered path
func (e *Executor) Unlink(ctx Context) error {
	_, err := e.linker.Unlink(ctx.Rendered, ctx.Dotfile, ctx.DryRun, ctx.Reporter)
	return err
}

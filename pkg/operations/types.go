package operations

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/report"
)

// Operation is a command applied to every candidate entry
type Operation int

const (
	// Link renders templates and links dotfiles into place
	Link Operation = iota
	// Unlink removes links created by Link
	Unlink
)

// String returns the command name of the operation
func (o Operation) String() string {
	switch o {
	case Link:
		return "link"
	case Unlink:
		return "unlink"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// ParseOperation maps a command name to its Operation
func ParseOperation(name string) (Operation, error) {
	switch strings.ToLower(name) {
	case "link":
		return Link, nil
	case "unlink":
		return Unlink, nil
	default:
		return 0, errors.Newf(errors.ErrInvalidInput, "unknown operation %q", name).
			WithDetail("operation", name)
	}
}

// Context is everything a step may need about one entry
type Context struct {
	// Candidate is the absolute path of the profile entry
	Candidate string
	// Rendered is the path the dotfile should link to
	Rendered string
	// Dotfile is the destination path under home
	Dotfile string
	IsDir   bool
	DryRun  bool

	Reporter *report.Reporter
}

// Step is one stage of an operation
type Step func(ctx Context) error

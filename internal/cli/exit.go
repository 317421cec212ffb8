package cli

import (
	stderrors "errors"
)

// Process exit statuses
const (
	ExitOK        = 0
	ExitConflicts = 1
	ExitUsage     = 2
	ExitFatal     = 3
)

// errConflicts is returned by a command whose plan found conflicts. The
// summary has already been reported.
var errConflicts = stderrors.New("conflicts found")

// fatalError marks a failure of the run itself rather than of the command line
type fatalError struct {
	err error
}

func (e *fatalError) Error() string { return e.err.Error() }
func (e *fatalError) Unwrap() error { return e.err }

func fatal(err error) error {
	if err == nil {
		return nil
	}
	return &fatalError{err: err}
}

// exitCode classifies an error returned from command execution. Errors that
// are neither conflicts nor fatal come from parsing the command line.
func exitCode(err error) int {
	var fe *fatalError
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, errConflicts):
		return ExitConflicts
	case stderrors.As(err, &fe):
		return ExitFatal
	default:
		return ExitUsage
	}
}

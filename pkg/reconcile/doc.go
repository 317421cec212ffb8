// Package reconcile runs a link or unlink command as a plan followed by an
// optional commit.
//
// The plan pass walks every profile with dry run forced on and counts the
// warnings it produces. Any warning aborts the run before the filesystem is
// touched. Otherwise, unless the caller asked for a dry run, the same walk is
// repeated for real with a fresh reporter. Either every entry applies or
// nothing changes, within a single invocation and barring external edits
// between the two passes.
package reconcile

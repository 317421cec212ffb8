// Package paths provides path handling for dot: home directory discovery,
// "~" expansion, canonicalization for symlink comparison, and the XDG
// locations of dot's own configuration and log files.
//
// # Canonical paths
//
// Two spellings of the same location must compare equal before a link is
// judged to point somewhere else. Canonicalize expands a leading "~", makes
// the path absolute, and resolves symbolic links for as much of the path as
// exists. Components that do not exist yet are appended lexically, so a
// rendered file that a dry run has not written still has a stable canonical
// form.
//
// # Environment Variables
//
//   - HOME: fallback when the OS cannot report the user's home directory
//   - XDG_CONFIG_HOME: parent of the dot configuration directory
//   - XDG_STATE_HOME: parent of the dot log directory
package paths

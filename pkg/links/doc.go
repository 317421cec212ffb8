// Package links creates, verifies and removes the symbolic links that put
// rendered profile entries in place under the home directory.
//
// Neither operation ever overwrites or deletes anything but a link that
// already points at the expected rendered path. Every other existing state
// is classified and reported as a counted warning so the planning pass can
// stop the run before anything changes.
//
// Link targets are compared in canonical form (see paths.Canonicalize), so a
// relative or "~" spelling of the right target is accepted.
package links

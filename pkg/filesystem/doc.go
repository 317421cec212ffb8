// Package filesystem provides the filesystem abstraction used by every
// reconciliation step.
//
// All reads, writes, and symlink mutations go through the FS interface so
// tests can observe or fail individual calls. Production code uses NewOS.
package filesystem

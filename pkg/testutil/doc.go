// Package testutil provides fixtures shared by dot's package tests: isolated
// home and profile directories on the real filesystem, and a filesystem
// wrapper that injects failures.
package testutil

// Package render turns template files into rendered artifacts.
//
// Templates use shell-style placeholders, $NAME or ${NAME}, resolved against
// a lookup function (the process environment by default). Substitution is
// safe: a placeholder with no value is copied to the output unchanged, and
// $$ produces a literal dollar sign. There are no conditionals, loops or
// filters.
//
// Rendering is deterministic, so re-rendering with an unchanged environment
// rewrites byte-identical content.
package render

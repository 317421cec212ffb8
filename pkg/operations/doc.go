// Package operations defines the commands dot can run over profile entries.
//
// An Operation is an ordered list of steps. Each step receives the same
// Context for an entry and reads only the fields it needs, so steps can be
// added to a sequence without changing the others:
//
//	Link   = RenderLinkRecurse, RenderSingle, Link
//	Unlink = Unlink
package operations

package links

// Outcome classifies what a link or unlink step found or did
type Outcome int

const (
	// Created means the dotfile was absent and a link was (or would be) made
	Created Outcome = iota
	// LinksAsExpected means the dotfile already links to the rendered path
	LinksAsExpected
	// Unlinked means the expected link was (or would be) removed
	Unlinked
	// NotExists means there was no dotfile to unlink
	NotExists
	// ConflictNotSymlink means the dotfile exists but is not a symbolic link
	ConflictNotSymlink
	// ConflictWrongTarget means the dotfile links somewhere else
	ConflictWrongTarget
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case LinksAsExpected:
		return "links-as-expected"
	case Unlinked:
		return "unlinked"
	case NotExists:
		return "not-exists"
	case ConflictNotSymlink:
		return "conflict-not-symlink"
	case ConflictWrongTarget:
		return "conflict-wrong-target"
	default:
		return "unknown"
	}
}

// IsConflict reports whether the outcome is counted against the run
func (o Outcome) IsConflict() bool {
	switch o {
	case NotExists, ConflictNotSymlink, ConflictWrongTarget:
		return true
	default:
		return false
	}
}

// Package names maps profile entry names to rendered artifact names and
// dotfile names.
package names

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dot/pkg/config"
)

// Transform returns the rendered and dotfile names for a profile entry.
//
// Directories map to themselves. A file ending in the template suffix
// renders to the same stem plus the rendered suffix and installs as the bare
// stem; any other file is used as is.
func Transform(name string, isDir bool, naming config.Naming) (rendered, dotfile string) {
	if isDir {
		return name, name
	}

	stem, ok := TemplateStem(name, naming)
	if !ok {
		return name, name
	}
	return stem + naming.RenderedSuffix, stem
}

// TemplateStem strips the template suffix from name. It reports false when
// name is not a template or is nothing but the suffix.
func TemplateStem(name string, naming config.Naming) (string, bool) {
	stem := strings.TrimSuffix(name, naming.TemplateSuffix)
	if stem == name || stem == "" {
		return name, false
	}
	return stem, true
}

// IsRendered reports whether name carries the rendered artifact suffix
func IsRendered(name string, naming config.Naming) bool {
	return len(name) > len(naming.RenderedSuffix) && strings.HasSuffix(name, naming.RenderedSuffix)
}

// DotfilePath returns where the dotfile for dotfileName lives under home
func DotfilePath(home, dotfileName string, naming config.Naming) string {
	return filepath.Join(home, naming.DotfilePrefix+dotfileName)
}

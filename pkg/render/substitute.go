package render

import (
	"os"
	"regexp"
	"strings"
)

// LookupFunc resolves a placeholder name to a value
type LookupFunc func(name string) (string, bool)

// EnvLookup resolves placeholders from the process environment
var EnvLookup LookupFunc = os.LookupEnv

// Groups: 1 escaped "$", 2 bare name, 3 braced name.
var placeholder = regexp.MustCompile(`\$(?:(\$)|([_a-zA-Z][_a-zA-Z0-9]*)|\{([_a-zA-Z][_a-zA-Z0-9]*)\})`)

// Substitute replaces placeholders in text with their looked up values.
// Unknown placeholders and stray dollar signs are kept verbatim.
func Substitute(text string, lookup LookupFunc) string {
	matches := placeholder.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m[0]])
		last = m[1]

		switch {
		case m[2] >= 0:
			b.WriteByte('$')
		case m[4] >= 0:
			b.WriteString(resolve(text[m[4]:m[5]], text[m[0]:m[1]], lookup))
		default:
			b.WriteString(resolve(text[m[6]:m[7]], text[m[0]:m[1]], lookup))
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

func resolve(name, original string, lookup LookupFunc) string {
	if value, ok := lookup(name); ok {
		return value
	}
	return original
}

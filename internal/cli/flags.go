package cli

import (
	"strconv"

	"github.com/arthur-debert/dot/pkg/style"
	"github.com/spf13/pflag"
)

// negatedBool is a boolean flag that stores the inverse of its value into
// another flag's variable, so "--dry-run --no-dry-run" resolves to whichever
// comes last.
type negatedBool struct {
	target *bool
}

func (n *negatedBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*n.target = !v
	return nil
}

func (n *negatedBool) String() string {
	if n.target == nil {
		return "false"
	}
	return strconv.FormatBool(!*n.target)
}

func (n *negatedBool) Type() string {
	return "bool"
}

// addNegatedBool registers --name as the negation of target
func addNegatedBool(fs *pflag.FlagSet, target *bool, name, usage string) {
	fs.Var(&negatedBool{target: target}, name, usage)
	fs.Lookup(name).NoOptDefVal = "true"
	fs.Lookup(name).DefValue = "false"
}

// colorValue is a pflag.Value accepting auto, always or never
type colorValue struct {
	mode style.ColorMode
}

func (c *colorValue) Set(s string) error {
	mode, err := style.ParseColorMode(s)
	if err != nil {
		return err
	}
	c.mode = mode
	return nil
}

func (c *colorValue) String() string {
	return c.mode.String()
}

func (c *colorValue) Type() string {
	return "mode"
}

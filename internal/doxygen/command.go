package doxygen

import (
	"strings"

	"git.home.luguber.info/inful/doxyrun/internal/filter"
)

// Command is a fully synthesized generator invocation.
type Command struct {
	Program   string
	Args      []string
	Doxyfile  string
	Overrides []Override
	// Stdin is the base Doxyfile followed by the override lines.
	Stdin []byte
}

// String renders a POSIX shell equivalent of the invocation for display.
// It is never executed.
func (c *Command) String() string {
	return c.StringFor(filter.DialectPOSIX)
}

// StringFor renders the shell equivalent in the given dialect:
// `( cat f; echo K=V ) | prog -` for POSIX, `( type f & echo K=V ) | prog -`
// for batch. It is never executed.
func (c *Command) StringFor(d filter.Dialect) string {
	cat, sep := "cat ", "; echo "
	if d == filter.DialectBatch {
		cat, sep = "type ", " & echo "
	}

	var b strings.Builder
	b.WriteString("( ")
	b.WriteString(cat)
	b.WriteString(c.Doxyfile)
	for _, o := range c.Overrides {
		b.WriteString(sep)
		b.WriteString(o.Line())
	}
	b.WriteString(" ) | ")
	b.WriteString(c.Program)
	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(a)
	}
	return b.String()
}

package base

import (
	"flag"
	"fmt"
	"strings"
)

// FlagSet wraps flag.FlagSet with help text generation.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps f. Usage output is suppressed; commands print Help.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.Usage = func() {}
	return &FlagSet{FlagSet: f}
}

// Help returns the options section of a command's help text.
func (f *FlagSet) Help() string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n", fl.Name)
		fmt.Fprintf(&b, "      %s", fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return strings.TrimRight(b.String(), "\n")
}

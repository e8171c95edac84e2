package vocab

import (
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/internal/render"
	"github.com/jonesej/gedcomx-java/pkg/vocab"

	// Register the GEDCOM X and FamilySearch vocabularies.
	_ "github.com/jonesej/gedcomx-java/pkg/familysearch"
	_ "github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

type Command struct {
	*base.Command

	flagLookup   string
	flagValidate bool
	flagOutput   string
}

func (c *Command) Synopsis() string {
	return "Inspect the controlled vocabularies"
}

func (c *Command) Help() string {
	return `Usage: gedcomx vocab [options] [name]

  Without arguments list the known vocabularies. With a vocabulary name
  print its members and the URI each one is bound to.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("vocab", flag.ContinueOnError))
	f.StringVar(&c.flagLookup, "lookup", "", "Print the members bound to this URI.")
	f.BoolVar(&c.flagValidate, "validate", false, "Check that every vocabulary is a bijection.")
	f.StringVar(&c.flagOutput, "output", "json", "Output format: json, xml or yaml.")
	return f
}

type member struct {
	Symbol  string `json:"symbol" xml:"symbol,attr"`
	URI     string `json:"uri" xml:"uri,attr"`
	Unknown bool   `json:"unknown,omitempty" xml:"unknown,attr,omitempty"`
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	output, err := render.ParseFormat(c.flagOutput)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	switch {
	case c.flagValidate:
		if err := vocab.Validate(); err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		c.UI.Info(fmt.Sprintf("%d vocabularies are valid", len(vocab.Names())))
		return 0

	case c.flagLookup != "":
		matches := vocab.Lookup(c.flagLookup)
		if len(matches) == 0 {
			c.UI.Error(fmt.Sprintf("no vocabulary member is bound to %s", c.flagLookup))
			return 1
		}
		return c.write(output, matches)

	case f.NArg() == 0:
		return c.write(output, vocab.Names())
	}

	e, ok := vocab.Get(f.Arg(0))
	if !ok {
		c.UI.Error(fmt.Sprintf("unknown vocabulary %q", f.Arg(0)))
		return 1
	}
	unknown, _ := e.UnknownSymbol()
	var members []member
	for _, symbol := range e.Symbols() {
		uri, _ := e.SymbolURI(symbol)
		members = append(members, member{Symbol: symbol, URI: uri, Unknown: symbol == unknown})
	}
	return c.write(output, members)
}

func (c *Command) write(format render.Format, v any) int {
	if err := c.Output(format, v); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering output: %v", err))
		return 1
	}
	return 0
}

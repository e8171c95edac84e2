package person

import (
	"context"
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
)

type Command struct {
	*base.Command

	api base.APIFlags
}

func (c *Command) Synopsis() string {
	return "Read a person from the family tree"
}

func (c *Command) Help() string {
	return `Usage: gedcomx person [options] [person-id | url]

  Read a person and print the person document. Without an argument the
  person of the authenticated user is read.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("person", flag.ContinueOnError))
	c.api.Register(f)
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() > 1 {
		c.UI.Error("expected at most one person")
		return 1
	}

	session, err := c.Open(&c.api)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	defer session.Close()

	ctx := context.Background()
	person, err := c.ReadPerson(ctx, session, f.Arg(0))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if err := c.Render(session, person.Entity()); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering person: %v", err))
		return 1
	}
	return 0
}

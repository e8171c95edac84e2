package ancestry

import (
	"context"
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

type Command struct {
	*base.Command

	api base.APIFlags
}

func (c *Command) Synopsis() string {
	return "Print the ancestry of a person"
}

func (c *Command) Help() string {
	return `Usage: gedcomx ancestry [options] [person-id | url]

  Read the ancestry of a person and print it in ahnentafel order: the
  person is 1, and the father and mother of n are 2n and 2n+1.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("ancestry", flag.ContinueOnError))
	c.api.Register(f)
	return f
}

type ancestor struct {
	Number   int    `json:"number" xml:"number,attr"`
	ID       string `json:"id" xml:"id,attr"`
	Name     string `json:"name,omitempty" xml:"name,omitempty"`
	Lifespan string `json:"lifespan,omitempty" xml:"lifespan,omitempty"`
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
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

	results, ok, err := person.ReadAncestry(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading ancestry: %v", err))
		return 1
	}
	if !ok {
		c.UI.Warn("person has no ancestry link")
		return 0
	}
	if _, err := results.IfSuccessful(); err != nil {
		c.UI.Error(fmt.Sprintf("error reading ancestry: %v", err))
		return 1
	}

	var out []ancestor
	tree := results.Tree()
	if tree != nil {
		for _, n := range tree.Nodes() {
			out = append(out, ancestor{
				Number:   n.Number,
				ID:       n.Person.ID,
				Name:     n.Person.Name(),
				Lifespan: lifespan(n.Person),
			})
		}
	}

	if err := c.Render(session, out); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering ancestry: %v", err))
		return 1
	}
	return 0
}

func lifespan(p *gedcomx.Person) string {
	if p.Display == nil {
		return ""
	}
	return p.Display.Lifespan
}

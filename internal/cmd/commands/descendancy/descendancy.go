package descendancy

import (
	"context"
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/pkg/rs"
)

type Command struct {
	*base.Command

	api base.APIFlags
}

func (c *Command) Synopsis() string {
	return "Print the descendancy of a person"
}

func (c *Command) Help() string {
	return `Usage: gedcomx descendancy [options] [person-id | url]

  Read the descendancy of a person and print it as a tree of descendants,
  each with the spouse the result lists for it.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("descendancy", flag.ContinueOnError))
	c.api.Register(f)
	return f
}

type descendant struct {
	Number   string        `json:"number" xml:"number,attr"`
	ID       string        `json:"id" xml:"id,attr"`
	Name     string        `json:"name,omitempty" xml:"name,omitempty"`
	Spouse   string        `json:"spouse,omitempty" xml:"spouse,omitempty"`
	Children []*descendant `json:"children,omitempty" xml:"descendant,omitempty"`
}

func convert(n *rs.DescendancyNode) *descendant {
	d := &descendant{Number: n.Number, ID: n.Person.ID, Name: n.Person.Name()}
	if n.Spouse != nil {
		d.Spouse = n.Spouse.Name()
	}
	for _, child := range n.Children {
		d.Children = append(d.Children, convert(child))
	}
	return d
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

	results, ok, err := person.ReadDescendancy(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading descendancy: %v", err))
		return 1
	}
	if !ok {
		c.UI.Warn("person has no descendancy link")
		return 0
	}
	if _, err := results.IfSuccessful(); err != nil {
		c.UI.Error(fmt.Sprintf("error reading descendancy: %v", err))
		return 1
	}

	tree := results.Tree()
	if tree == nil || tree.Root() == nil {
		c.UI.Warn("descendancy result has no root person")
		return 0
	}

	if err := c.Render(session, convert(tree.Root())); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering descendancy: %v", err))
		return 1
	}
	return 0
}

package spouses

import (
	"context"
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
)

type Command struct {
	*base.Command

	api    base.APIFlags
	remove string
}

func (c *Command) Synopsis() string {
	return "List the spouses of a person"
}

func (c *Command) Help() string {
	return `Usage: gedcomx spouses [options] [person-id | url]

  List the spouses of a person together with the couple relationship that
  links each of them to the person. With -remove the relationship to the
  given spouse is deleted instead.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("spouses", flag.ContinueOnError))
	c.api.Register(f)
	f.StringVar(&c.remove, "remove", "",
		"Id of a spouse whose couple relationship is deleted.")
	return f
}

type spouse struct {
	ID           string `json:"id" xml:"id,attr"`
	Name         string `json:"name,omitempty" xml:"name,omitempty"`
	Relationship string `json:"relationship,omitempty" xml:"relationship,omitempty"`
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

	spouses, ok, err := person.ReadSpouses(ctx)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading spouses: %v", err))
		return 1
	}
	if !ok {
		c.UI.Warn("person has no spouses link")
		return 0
	}
	if _, err := spouses.IfSuccessful(); err != nil {
		c.UI.Error(fmt.Sprintf("error reading spouses: %v", err))
		return 1
	}

	if c.remove != "" {
		target := spouses.Entity().FindPerson(c.remove)
		if target == nil {
			c.UI.Error(fmt.Sprintf("%q is not a spouse of the person", c.remove))
			return 1
		}
		removed, err := spouses.RemoveRelationshipTo(ctx, target)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		if _, err := removed.IfSuccessful(); err != nil {
			c.UI.Error(fmt.Sprintf("error removing relationship: %v", err))
			return 1
		}
		c.UI.Info(fmt.Sprintf("Removed relationship to %s", c.remove))
		return 0
	}

	var self string
	if p := person.Person(); p != nil {
		self = p.ID
	}

	var out []spouse
	for i := range spouses.Persons() {
		p := &spouses.Persons()[i]
		if p.ID == self {
			continue
		}
		s := spouse{ID: p.ID, Name: p.Name()}
		if r := spouses.FindRelationshipTo(p); r != nil {
			s.Relationship = r.ID
		}
		out = append(out, s)
	}

	if err := c.Render(session, out); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering spouses: %v", err))
		return 1
	}
	return 0
}

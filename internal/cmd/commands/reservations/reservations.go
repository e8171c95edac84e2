package reservations

import (
	"context"
	"flag"
	"fmt"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/pkg/familysearch"
	"github.com/jonesej/gedcomx-java/pkg/rs/ordinances"
)

type Command struct {
	*base.Command

	api        base.APIFlags
	flagCancel string
	flagAll    bool
}

func (c *Command) Synopsis() string {
	return "List or cancel temple ordinance reservations"
}

func (c *Command) Help() string {
	return `Usage: gedcomx reservations [options]

  List the ordinances reserved by the authenticated user. With -cancel the
  reservation of the ordinance with the given id is released instead.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("reservations", flag.ContinueOnError))
	c.api.Register(f)
	f.StringVar(&c.flagCancel, "cancel", "", "Cancel the reservation of the ordinance with this id.")
	f.BoolVar(&c.flagAll, "all", false, "List every ordinance, not only reserved ones.")
	return f
}

type reservation struct {
	ID     string `json:"id,omitempty" xml:"id,attr,omitempty"`
	Type   string `json:"type,omitempty" xml:"type,omitempty"`
	Status string `json:"status,omitempty" xml:"status,omitempty"`
	Person string `json:"person,omitempty" xml:"person,omitempty"`
	Temple string `json:"temple,omitempty" xml:"temple,omitempty"`
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() > 0 {
		c.UI.Error("unexpected arguments")
		return 1
	}

	session, err := c.Open(&c.api)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	defer session.Close()

	ctx := context.Background()
	state, err := ordinances.ReadReservations(ctx, session.Client, session.BaseURL()+base.ReservationsPath)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading reservations: %v", err))
		return 1
	}
	if _, err := state.IfSuccessful(); err != nil {
		c.UI.Error(fmt.Sprintf("error reading reservations: %v", err))
		return 1
	}
	if err := state.DecodeErr(); err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	if c.flagCancel != "" {
		return c.cancel(ctx, state)
	}

	list := state.Reserved()
	if c.flagAll {
		list = state.Ordinances()
	}
	out := make([]reservation, 0, len(list))
	for _, o := range list {
		r := reservation{
			ID:     o.ID,
			Type:   string(o.KnownType()),
			Status: string(o.KnownStatus()),
			Temple: o.TempleCode,
		}
		if o.Person != nil {
			r.Person = string(o.Person.Resource)
		}
		out = append(out, r)
	}

	if err := c.Render(session, out); err != nil {
		c.UI.Error(fmt.Sprintf("error rendering reservations: %v", err))
		return 1
	}
	return 0
}

func (c *Command) cancel(ctx context.Context, state *ordinances.ReservationsState) int {
	var target *familysearch.Ordinance
	for i, o := range state.Ordinances() {
		if o.ID == c.flagCancel {
			target = &state.Ordinances()[i]
			break
		}
	}
	if target == nil {
		c.UI.Error(fmt.Sprintf("no ordinance with id %q", c.flagCancel))
		return 1
	}

	result, err := state.CancelReservation(ctx, target)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if _, err := result.IfSuccessful(); err != nil {
		c.UI.Error(fmt.Sprintf("error cancelling reservation: %v", err))
		return 1
	}

	c.UI.Info(fmt.Sprintf("Cancelled reservation of ordinance %s", c.flagCancel))
	return 0
}

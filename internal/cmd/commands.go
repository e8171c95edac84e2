package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/ancestry"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/descendancy"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/login"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/person"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/reservations"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/spouses"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/version"
	"github.com/jonesej/gedcomx-java/internal/cmd/commands/vocab"
)

// Commands is the mapping of all available commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.New(log, ui)

	Commands = map[string]cli.CommandFactory{
		"ancestry": func() (cli.Command, error) {
			return &ancestry.Command{Command: b}, nil
		},
		"descendancy": func() (cli.Command, error) {
			return &descendancy.Command{Command: b}, nil
		},
		"login": func() (cli.Command, error) {
			return &login.Command{Command: b}, nil
		},
		"person": func() (cli.Command, error) {
			return &person.Command{Command: b}, nil
		},
		"reservations": func() (cli.Command, error) {
			return &reservations.Command{Command: b}, nil
		},
		"spouses": func() (cli.Command, error) {
			return &spouses.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
		"vocab": func() (cli.Command, error) {
			return &vocab.Command{Command: b}, nil
		},
	}
}

package version

import (
	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of the client"
}

func (c *Command) Help() string {
	return "Usage: gedcomx version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.String())
	return 0
}

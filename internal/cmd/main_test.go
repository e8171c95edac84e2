package cmd

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/internal/version"
)

func TestRun_Version(t *testing.T) {
	ui := cli.NewMockUi()

	code := run("gedcomx", []string{"version"}, hclog.NewNullLogger(), ui)
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), version.Version)
}

func TestCommands(t *testing.T) {
	initCommands(hclog.NewNullLogger(), cli.NewMockUi())

	for _, name := range []string{
		"ancestry", "descendancy", "login", "person",
		"reservations", "spouses", "version", "vocab",
	} {
		t.Run(name, func(t *testing.T) {
			factory, ok := Commands[name]
			require.True(t, ok)

			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.Contains(t, c.Help(), "Usage: gedcomx "+name)
		})
	}
}

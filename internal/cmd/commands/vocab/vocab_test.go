package vocab

import (
	"encoding/json"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/pkg/vocab"
)

func newCommand(t *testing.T) (*Command, *cli.MockUi) {
	b, ui := base.TestCommand(t, "https://api.example.org")
	return &Command{Command: b}, ui
}

func TestRun_Names(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run(nil)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var names []string
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &names))
	assert.Subset(t, names, []string{
		"ChangeObjectModifier", "ChangeOperation", "ConfidenceLevel", "FactType",
		"GenderType", "NameType", "OrdinanceStatus", "OrdinanceType", "RelationshipType",
	})
}

func TestRun_Members(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"RelationshipType"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var members []member
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &members))
	assert.Contains(t, members, member{Symbol: "Couple", URI: "http://gedcomx.org/Couple"})

	var unknown []string
	for _, m := range members {
		if m.Unknown {
			unknown = append(unknown, m.Symbol)
		}
	}
	assert.Len(t, unknown, 1)
}

func TestRun_UnknownVocabulary(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"Nope"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), `unknown vocabulary "Nope"`)
}

func TestRun_Lookup(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"-lookup", "http://gedcomx.org/Couple"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var matches []vocab.Match
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &matches))
	assert.Equal(t, []vocab.Match{
		{Vocabulary: "ChangeObjectModifier", Symbol: "Couple", URI: "http://gedcomx.org/Couple"},
		{Vocabulary: "RelationshipType", Symbol: "Couple", URI: "http://gedcomx.org/Couple"},
	}, matches)
}

func TestRun_LookupMiss(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"-lookup", "http://example.org/Nothing"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "no vocabulary member")
}

func TestRun_Validate(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"-validate"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "vocabularies are valid")
}

func TestRun_YAML(t *testing.T) {
	c, ui := newCommand(t)

	code := c.Run([]string{"-output", "yaml", "GenderType"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "symbol: Male")
	assert.Contains(t, ui.OutputWriter.String(), "uri: http://gedcomx.org/Male")
}

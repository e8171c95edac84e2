package reservations

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
)

const reservationsDoc = `{
  "ordinances": [
    {
      "id": "O-1",
      "type": "http://familysearch.org/v1/Baptism",
      "status": "http://familysearch.org/v1/Reserved",
      "templeCode": "SLAKE",
      "person": {"resource": "{{base}}/platform/tree/persons/P-1"},
      "links": {"reservation": {"href": "{{base}}/platform/ordinances/reservations/O-1"}}
    },
    {
      "id": "O-2",
      "type": "http://familysearch.org/v1/Endowment",
      "status": "http://familysearch.org/v1/Completed"
    }
  ]
}`

func TestRun_List(t *testing.T) {
	api := base.NewTestAPI(t)
	api.Handle(http.MethodGet, base.ReservationsPath, reservationsDoc)

	b, ui := base.TestCommand(t, api.URL)
	c := &Command{Command: b}

	code := c.Run([]string{"-config", base.TestConfigPath})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var got []reservation
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &got))
	assert.Equal(t, []reservation{{
		ID:     "O-1",
		Type:   "Baptism",
		Status: "Reserved",
		Person: api.URL + "/platform/tree/persons/P-1",
		Temple: "SLAKE",
	}}, got)
}

func TestRun_ListAll(t *testing.T) {
	api := base.NewTestAPI(t)
	api.Handle(http.MethodGet, base.ReservationsPath, reservationsDoc)

	b, ui := base.TestCommand(t, api.URL)
	c := &Command{Command: b}

	code := c.Run([]string{"-config", base.TestConfigPath, "-all"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var got []reservation
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Completed", got[1].Status)
}

func TestRun_Cancel(t *testing.T) {
	api := base.NewTestAPI(t)
	api.Handle(http.MethodGet, base.ReservationsPath, reservationsDoc)
	api.Handle(http.MethodDelete, base.ReservationsPath+"/O-1", "")

	b, ui := base.TestCommand(t, api.URL)
	c := &Command{Command: b}

	code := c.Run([]string{"-config", base.TestConfigPath, "-cancel", "O-1"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "Cancelled reservation of ordinance O-1")
	assert.Equal(t, []string{
		"GET " + base.ReservationsPath,
		"DELETE " + base.ReservationsPath + "/O-1",
	}, api.Requests())
}

func TestRun_CancelWithoutLink(t *testing.T) {
	api := base.NewTestAPI(t)
	api.Handle(http.MethodGet, base.ReservationsPath, reservationsDoc)

	b, ui := base.TestCommand(t, api.URL)
	c := &Command{Command: b}

	code := c.Run([]string{"-config", base.TestConfigPath, "-cancel", "O-2"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), `unable to cancel reservation of ordinance "O-2"`)
	assert.Len(t, api.Requests(), 1)
}

func TestRun_CancelUnknown(t *testing.T) {
	api := base.NewTestAPI(t)
	api.Handle(http.MethodGet, base.ReservationsPath, reservationsDoc)

	b, ui := base.TestCommand(t, api.URL)
	c := &Command{Command: b}

	code := c.Run([]string{"-config", base.TestConfigPath, "-cancel", "O-9"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), `no ordinance with id "O-9"`)
}

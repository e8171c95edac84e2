package base

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// TestConfigPath is where TestCommand writes the configuration file.
const TestConfigPath = "/etc/gedcomx.hcl"

// TestAPI serves canned GEDCOM X documents keyed by "METHOD /path".
// Occurrences of {{base}} in a body are replaced with the server URL. An
// empty body is answered with 204 No Content.
type TestAPI struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]string
	requests []string
}

// NewTestAPI starts a TestAPI that is closed when the test ends.
func NewTestAPI(t testing.TB) *TestAPI {
	t.Helper()
	a := &TestAPI{routes: make(map[string]string)}
	a.Server = httptest.NewServer(http.HandlerFunc(a.serve))
	t.Cleanup(a.Close)
	return a
}

func (a *TestAPI) serve(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path

	a.mu.Lock()
	a.requests = append(a.requests, key)
	body, ok := a.routes[key]
	a.mu.Unlock()

	if !ok {
		http.Error(w, "no route", http.StatusNotFound)
		return
	}
	if body == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", gedcomx.JSONMediaType)
	io.WriteString(w, strings.ReplaceAll(body, "{{base}}", a.URL))
}

// Handle registers the body served for method and path.
func (a *TestAPI) Handle(method, path, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routes[method+" "+path] = body
}

// Requests returns the "METHOD /path" of every request received so far.
func (a *TestAPI) Requests() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.requests...)
}

// TestCommand returns a command base backed by an in-memory filesystem and
// a mock UI. A configuration file pointing at baseURL is written to
// TestConfigPath. The environment is empty.
func TestCommand(t testing.TB, baseURL string) (*Command, *cli.MockUi) {
	t.Helper()

	ui := cli.NewMockUi()
	c := New(hclog.NewNullLogger(), ui)
	c.FS = afero.NewMemMapFs()
	c.Getenv = func(string) string { return "" }

	src := fmt.Sprintf("api {\n  base_url     = %q\n  access_token = \"test-token\"\n}\n", baseURL)
	require.NoError(t, afero.WriteFile(c.FS, TestConfigPath, []byte(src), 0o644))
	return c, ui
}

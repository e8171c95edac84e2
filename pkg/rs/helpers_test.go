package rs

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

type recordedRequest struct {
	Method        string
	Path          string
	Accept        string
	ContentType   string
	Authorization string
	UserAgent     string
	Body          string
}

type cannedResponse struct {
	status      int
	contentType string
	body        string
}

// fakeAPI serves canned responses keyed by "METHOD /path". Occurrences of
// {{base}} in a body are replaced with the server URL.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]cannedResponse
	requests []recordedRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{routes: make(map[string]cannedResponse)}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Accept:        r.Header.Get("Accept"),
		ContentType:   r.Header.Get("Content-Type"),
		Authorization: r.Header.Get("Authorization"),
		UserAgent:     r.Header.Get("User-Agent"),
		Body:          string(body),
	})
	resp, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		http.Error(w, "no route", http.StatusNotFound)
		return
	}
	if resp.contentType != "" {
		w.Header().Set("Content-Type", resp.contentType)
	}
	w.WriteHeader(resp.status)
	io.WriteString(w, strings.ReplaceAll(resp.body, "{{base}}", f.URL))
}

func (f *fakeAPI) handle(method, path string, status int, body string) {
	f.handleType(method, path, status, gedcomx.JSONMediaType, body)
}

func (f *fakeAPI) handleType(method, path string, status int, contentType, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = cannedResponse{status: status, contentType: contentType, body: body}
}

func (f *fakeAPI) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeAPI) last() recordedRequest {
	reqs := f.recorded()
	if len(reqs) == 0 {
		return recordedRequest{}
	}
	return reqs[len(reqs)-1]
}

func (f *fakeAPI) client(opts ...Option) *Client {
	return New(f.Server.Client(), opts...)
}

type doerFunc func(*http.Request) (*http.Response, error)

func (fn doerFunc) Do(req *http.Request) (*http.Response, error) {
	return fn(req)
}

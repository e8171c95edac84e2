package ordinances

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/pkg/familysearch"
	"github.com/jonesej/gedcomx-java/pkg/rs"
)

const reservationsDoc = `{
  "persons": [{"id": "P-1", "links": {"self": {"href": "{{base}}/persons/P-1"}}}],
  "ordinances": [
    {
      "id": "O-1",
      "type": "http://familysearch.org/v1/Baptism",
      "status": "http://familysearch.org/v1/Reserved",
      "person": {"resource": "#P-1"},
      "links": {
        "reservation": {"href": "{{base}}/reservations/O-1"},
        "self": {"href": "{{base}}/ordinances/O-1"}
      }
    },
    {
      "id": "O-2",
      "type": "http://familysearch.org/v1/Endowment",
      "status": "http://familysearch.org/v1/Completed",
      "person": {"resource": "{{base}}/persons/P-2"},
      "links": {"self": {"href": "{{base}}/ordinances/O-2"}}
    },
    {
      "id": "O-3",
      "type": "http://familysearch.org/v1/Confirmation",
      "status": "http://familysearch.org/v1/ReservedShared",
      "links": {"person": {"href": "{{base}}/persons/P-3"}}
    }
  ],
  "reservations": [{"id": "RSV-1"}],
  "links": {"self": {"href": "{{base}}/reservations"}}
}`

type request struct {
	method string
	path   string
	accept string
	auth   string
}

type fakeTree struct {
	*httptest.Server

	mu       sync.Mutex
	requests []request
}

func newFakeTree(t *testing.T) *fakeTree {
	t.Helper()
	f := &fakeTree{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, request{
			method: r.Method,
			path:   r.URL.Path,
			accept: r.Header.Get("Accept"),
			auth:   r.Header.Get("Authorization"),
		})
		f.mu.Unlock()

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/reservations":
			w.Header().Set("Content-Type", familysearch.JSONMediaType)
			io.WriteString(w, strings.ReplaceAll(reservationsDoc, "{{base}}", f.URL))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/persons/"):
			w.Header().Set("Content-Type", familysearch.JSONMediaType)
			io.WriteString(w, `{"persons": [{"id": "`+strings.TrimPrefix(r.URL.Path, "/persons/")+`"}]}`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeTree) last() request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeTree) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func readReservations(t *testing.T, f *fakeTree) *ReservationsState {
	t.Helper()
	client := rs.New(f.Client(), rs.WithAccessToken("tok"))
	s, err := ReadReservations(context.Background(), client, f.URL+"/reservations")
	require.NoError(t, err)
	require.NotNil(t, s.Entity(), "decode error: %v", s.DecodeErr())
	return s
}

func TestReadReservations(t *testing.T) {
	f := newFakeTree(t)
	s := readReservations(t, f)

	assert.Equal(t, familysearch.JSONMediaType, f.last().accept)
	assert.Equal(t, "Bearer tok", f.last().auth)

	require.Len(t, s.Ordinances(), 3)
	reserved := s.Reserved()
	require.Len(t, reserved, 2)
	assert.Equal(t, "O-1", reserved[0].ID)
	assert.Equal(t, "O-3", reserved[1].ID)

	require.Len(t, s.Reservations(), 1)
	assert.Equal(t, "RSV-1", s.Reservations()[0].ID)
}

func TestReadPerson(t *testing.T) {
	f := newFakeTree(t)
	s := readReservations(t, f)
	ctx := context.Background()
	ordinances := s.Ordinances()

	tests := []struct {
		name string
		o    *familysearch.Ordinance
		path string
	}{
		{name: "local reference", o: &ordinances[0], path: "/persons/P-1"},
		{name: "absolute reference", o: &ordinances[1], path: "/persons/P-2"},
		{name: "person link", o: &ordinances[2], path: "/persons/P-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok, err := s.ReadPerson(ctx, tt.o)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.path, f.last().path)
			assert.Equal(t, "Bearer tok", f.last().auth)
			assert.Equal(t, strings.TrimPrefix(tt.path, "/persons/"), p.Person().ID)
		})
	}

	_, ok, err := s.ReadPerson(ctx, &familysearch.Ordinance{})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelReservation(t *testing.T) {
	f := newFakeTree(t)
	s := readReservations(t, f)
	ctx := context.Background()
	ordinances := s.Ordinances()

	cancelled, err := s.CancelReservation(ctx, &ordinances[0])
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, cancelled.Response().StatusCode)
	assert.Equal(t, http.MethodDelete, f.last().method)
	assert.Equal(t, "/reservations/O-1", f.last().path, "reservation link is preferred")

	_, err = s.CancelReservation(ctx, &ordinances[1])
	require.NoError(t, err)
	assert.Equal(t, "/ordinances/O-2", f.last().path, "self link is the fallback")
}

func TestCancelReservation_FailsLoudly(t *testing.T) {
	f := newFakeTree(t)
	s := readReservations(t, f)
	ordinances := s.Ordinances()
	sent := f.count()

	_, err := s.CancelReservation(context.Background(), &ordinances[2])
	require.Error(t, err)
	assert.ErrorIs(t, err, rs.ErrLinkNotFound)
	assert.Contains(t, err.Error(), `unable to cancel reservation of ordinance "O-3"`)

	_, err = s.CancelReservation(context.Background(), nil)
	assert.Error(t, err)
	assert.Equal(t, sent, f.count())
}

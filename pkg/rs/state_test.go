package rs

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

const personDoc = `{
  "persons": [{
    "id": "P-1",
    "names": [{"nameForms": [{"fullText": "John Smith"}]}],
    "links": {
      "self": {"href": "{{base}}/persons/P-1"},
      "ancestry": {"href": "{{base}}/persons/P-1/ancestry"},
      "spouses": {"href": "{{base}}/persons/P-1/spouses"}
    }
  }]
}`

func TestIssue_DecodesSuccessfulResponse(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)

	s, err := ReadPerson(context.Background(), api.client(WithLogger(hclog.NewNullLogger())), api.URL+"/persons/P-1")
	require.NoError(t, err)

	require.NotNil(t, s.Entity())
	assert.Equal(t, "John Smith", s.Person().Name())
	assert.NoError(t, s.DecodeErr())
	assert.True(t, s.IsSuccess())
	assert.Equal(t, "200 OK", s.Status())

	req := api.last()
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, gedcomx.JSONMediaType, req.Accept)
	assert.Empty(t, req.Authorization)
	assert.Empty(t, req.ContentType)
}

func TestIssue_NonSuccessKeepsResponse(t *testing.T) {
	api := newFakeAPI(t)
	api.handleType(http.MethodGet, "/persons/P-404", http.StatusNotFound, "text/plain", "person not found")

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-404")
	require.NoError(t, err)

	assert.Nil(t, s.Entity())
	assert.NoError(t, s.DecodeErr())
	require.NotNil(t, s.Response())
	assert.Equal(t, http.StatusNotFound, s.Response().StatusCode)
	assert.Equal(t, "person not found", string(s.Response().Body))
	assert.False(t, s.IsSuccess())

	_, err = s.IfSuccessful()
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, http.MethodGet, statusErr.Method)
	assert.Equal(t, "person not found", string(statusErr.Body))
}

func TestIssue_SuccessPredicate(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/created", http.StatusCreated, personDoc)

	byDefault, err := Read(context.Background(), api.client(), PersonResource, api.URL+"/created")
	require.NoError(t, err)
	assert.Nil(t, byDefault.Entity(), "only 200 decodes by default")

	accepting := &Resource[gedcomx.Gedcomx]{
		Name:       "created",
		MediaTypes: GedcomxMediaTypes,
		Success:    func(status int) bool { return status == http.StatusCreated },
	}
	s, err := Read(context.Background(), api.client(), accepting, api.URL+"/created")
	require.NoError(t, err)
	assert.NotNil(t, s.Entity())
}

func TestIssue_DecodeFailureOnRead(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/broken", http.StatusOK, `{"persons": [`)

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/broken")
	require.NoError(t, err)

	assert.Nil(t, s.Entity())
	var decodeErr *DecodeError
	require.ErrorAs(t, s.DecodeErr(), &decodeErr)
	assert.Equal(t, "person", decodeErr.Resource)
	assert.Equal(t, gedcomx.JSONMediaType, decodeErr.ContentType)
	assert.Equal(t, `{"persons": [`, string(s.Response().Body))
}

func TestIssue_TransportError(t *testing.T) {
	boom := errors.New("connection refused")
	client := New(doerFunc(func(*http.Request) (*http.Response, error) {
		return nil, boom
	}))

	_, err := ReadPerson(context.Background(), client, "https://api.example.org/persons/P-1")

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, "https://api.example.org/persons/P-1", transportErr.URL)
	assert.ErrorIs(t, err, boom)
}

func TestIssue_XMLNegotiation(t *testing.T) {
	api := newFakeAPI(t)
	api.handleType(http.MethodGet, "/persons/P-1", http.StatusOK, gedcomx.XMLMediaType, `<?xml version="1.0" encoding="UTF-8"?>
<gedcomx xmlns="http://gedcomx.org/v1/">
  <person id="P-1">
    <link rel="self" href="{{base}}/persons/P-1"/>
    <display><name>Jane Doe</name></display>
  </person>
</gedcomx>`)

	s, err := ReadPerson(context.Background(), api.client(WithFormat(FormatXML)), api.URL+"/persons/P-1")
	require.NoError(t, err)

	assert.Equal(t, gedcomx.XMLMediaType, api.last().Accept)
	require.NotNil(t, s.Entity(), "decode error: %v", s.DecodeErr())
	assert.Equal(t, "Jane Doe", s.Person().Name())
	assert.Equal(t, api.URL+"/persons/P-1", s.SelfURI())
}

func TestIssue_ContentTypeWinsOverClientFormat(t *testing.T) {
	api := newFakeAPI(t)
	api.handleType(http.MethodGet, "/persons/P-1", http.StatusOK, "application/json; charset=utf-8", personDoc)

	s, err := ReadPerson(context.Background(), api.client(WithFormat(FormatXML)), api.URL+"/persons/P-1")
	require.NoError(t, err)
	require.NotNil(t, s.Entity())
	assert.Equal(t, "P-1", s.Person().ID)
}

func TestIssue_UserAgent(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)

	_, err := ReadPerson(context.Background(), api.client(WithUserAgent("gedcomx-test")), api.URL+"/persons/P-1")
	require.NoError(t, err)
	assert.Equal(t, "gedcomx-test", api.last().UserAgent)
}

func TestWithCredential(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	ctx := context.Background()

	anonymous, err := ReadPerson(ctx, api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)
	assert.Empty(t, api.last().Authorization)

	authed := anonymous.WithCredential("s3cr3t")
	assert.Empty(t, anonymous.Credential(), "original state is unchanged")
	assert.Equal(t, "s3cr3t", authed.Credential())
	assert.Same(t, anonymous.Entity(), authed.Entity())

	refreshed, err := authed.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer s3cr3t", api.last().Authorization)
	assert.Equal(t, "s3cr3t", refreshed.Credential())

	_, err = anonymous.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, api.last().Authorization)
}

func TestClientAccessToken_SeedsEntryState(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	api.handle(http.MethodGet, "/persons/P-1/ancestry", http.StatusOK, `{}`)

	s, err := ReadPerson(context.Background(), api.client(WithAccessToken("tok")), api.URL+"/persons/P-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", api.last().Authorization)

	_, ok, err := s.ReadAncestry(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Bearer tok", api.last().Authorization, "credential is carried over")
}

func TestFollow_MissingLinkSendsNothing(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)
	before := len(api.recorded())

	_, err = Follow(context.Background(), s.State, RelDescendancy, http.MethodGet, DescendancyResource)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLinkNotFound)

	var notFound *LinkNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "person", notFound.Resource)
	assert.Equal(t, []string{RelDescendancy}, notFound.Rels)
	assert.Equal(t, `person: no "descendancy" link`, err.Error())

	assert.Len(t, api.recorded(), before)
}

func TestFollow_FirstMatchWins(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/start", http.StatusOK, `{
  "links": {
    "person": [
      {"href": "{{base}}/persons/FIRST"},
      {"href": "{{base}}/persons/SECOND"}
    ],
    "Person": {"href": "{{base}}/persons/CASE"}
  }
}`)
	api.handle(http.MethodGet, "/persons/FIRST", http.StatusOK, `{}`)

	s, err := Read(context.Background(), api.client(), CollectionResource, api.URL+"/start")
	require.NoError(t, err)

	next, err := Follow(context.Background(), s, RelPerson, http.MethodGet, PersonResource)
	require.NoError(t, err)
	assert.Equal(t, "/persons/FIRST", api.last().Path)
	assert.Equal(t, "person", next.Resource().Name)
}

func TestFollow_RelativeHref(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/platform/tree/persons/P-1", http.StatusOK, `{
  "persons": [{"id": "P-1", "links": {"spouses": {"href": "P-1/spouses"}, "ancestry": {"href": "../ancestry?person=P-1"}}}]
}`)
	api.handle(http.MethodGet, "/platform/tree/persons/P-1/spouses", http.StatusOK, `{}`)
	api.handle(http.MethodGet, "/platform/tree/ancestry", http.StatusOK, `{}`)
	ctx := context.Background()

	s, err := ReadPerson(ctx, api.client(), api.URL+"/platform/tree/persons/P-1")
	require.NoError(t, err)

	_, ok, err := s.ReadSpouses(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/platform/tree/persons/P-1/spouses", api.last().Path)

	ancestry, ok, err := s.ReadAncestry(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "/platform/tree/ancestry", api.last().Path)
	assert.Equal(t, "person=P-1", ancestry.Request().URL.RawQuery)
}

func TestFollow_EmptyHrefIsAbsent(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, `{
  "persons": [{"id": "P-1", "links": {"ancestry": {"template": "{{base}}/ancestry{?generations}"}}}]
}`)

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)

	_, ok := s.Link(RelAncestry)
	assert.False(t, ok)

	_, ok, err = s.ReadAncestry(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Len(t, api.recorded(), 1)
}

func TestHead(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	api.handle(http.MethodHead, "/persons/P-1", http.StatusOK, "")

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)

	head, err := s.Head(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodHead, api.last().Method)
	assert.True(t, head.IsSuccess())
	assert.Nil(t, head.Entity())
}

func TestPut(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	api.handle(http.MethodPut, "/persons/P-1", http.StatusNoContent, "")

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)

	updated, err := s.Put(context.Background(), &gedcomx.Gedcomx{Persons: []gedcomx.Person{{Conclusion: gedcomx.Conclusion{ID: "P-1"}}}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, updated.Response().StatusCode)
	assert.Nil(t, updated.Entity())

	req := api.last()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, gedcomx.JSONMediaType, req.ContentType)
	assert.JSONEq(t, `{"persons": [{"id": "P-1"}]}`, req.Body)
}

func TestPut_XMLBody(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	api.handle(http.MethodPut, "/persons/P-1", http.StatusNoContent, "")

	s, err := ReadPerson(context.Background(), api.client(WithFormat(FormatXML)), api.URL+"/persons/P-1")
	require.NoError(t, err)

	_, err = s.Put(context.Background(), &gedcomx.Gedcomx{Persons: []gedcomx.Person{{Conclusion: gedcomx.Conclusion{ID: "P-1"}}}})
	require.NoError(t, err)

	req := api.last()
	assert.Equal(t, gedcomx.XMLMediaType, req.ContentType)
	assert.True(t, strings.HasPrefix(req.Body, "<?xml"))
	assert.Contains(t, req.Body, `<person id="P-1">`)
}

func TestPutAndDelete_DecodeFailureIsReturned(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)
	api.handle(http.MethodPut, "/persons/P-1", http.StatusOK, "<<garbage")
	api.handle(http.MethodDelete, "/persons/P-1", http.StatusOK, "<<garbage")
	ctx := context.Background()

	s, err := ReadPerson(ctx, api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)

	_, err = s.Put(ctx, s.Entity())
	var decodeErr *DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, err = s.Delete(ctx)
	assert.ErrorAs(t, err, &decodeErr)
}

func TestSelfURI_FallsBackToRequestURL(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-9", http.StatusOK, `{"persons": [{"id": "P-9"}]}`)

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-9")
	require.NoError(t, err)
	assert.Equal(t, api.URL+"/persons/P-9", s.SelfURI())
}

func TestAvailable(t *testing.T) {
	api := newFakeAPI(t)
	api.handle(http.MethodGet, "/persons/P-1", http.StatusOK, personDoc)

	s, err := ReadPerson(context.Background(), api.client(), api.URL+"/persons/P-1")
	require.NoError(t, err)
	assert.Equal(t, []string{RelSelf, RelAncestry, RelSpouses}, s.Available())
}

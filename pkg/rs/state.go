package rs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/jonesej/gedcomx-java/pkg/gedcomx"
)

// Response is the retained part of an HTTP response. The body is kept so
// that callers can inspect responses that were not decoded.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// State is one position in the API graph: the last request, its response
// and the decoded entity. A State is never modified after Issue returns;
// every transition yields a new one, so states may be shared freely.
type State[T any] struct {
	client     *Client
	resource   *Resource[T]
	request    *http.Request
	response   *Response
	entity     *T
	decodeErr  error
	credential string
}

// Issue sends req and wraps the outcome. The body is decoded into T only
// when the resource accepts the response status. A body that fails to
// decode leaves the entity nil; the failure is reported by DecodeErr.
// Failures to send the request or read the response are returned as a
// *TransportError and are never retried.
func Issue[T any](ctx context.Context, client *Client, resource *Resource[T], req *http.Request, credential string) (*State[T], error) {
	if client == nil || resource == nil || req == nil {
		return nil, errors.New("rs: Issue requires a client, a resource and a request")
	}
	if ctx == nil {
		ctx = req.Context()
	}
	req = req.Clone(ctx)

	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", resource.MediaTypes.For(client.format))
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}
	if client.userAgent != "" {
		req.Header.Set("User-Agent", client.userAgent)
	}

	client.logger.Debug("issuing request",
		"resource", resource.Name,
		"method", req.Method,
		"url", req.URL.String())

	resp, err := client.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: fmt.Errorf("failed to read response: %w", err)}
	}

	client.logger.Trace("received response",
		"resource", resource.Name,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(body))

	s := &State[T]{
		client:   client,
		resource: resource,
		request:  req,
		response: &Response{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Header:     resp.Header,
			Body:       body,
		},
		credential: credential,
	}

	if resource.success(resp.StatusCode) && len(bytes.TrimSpace(body)) > 0 {
		contentType := resp.Header.Get("Content-Type")
		entity := new(T)
		if err := decode(formatOf(contentType, client.format), body, entity); err != nil {
			s.decodeErr = &DecodeError{Resource: resource.Name, ContentType: contentType, Err: err}
		} else {
			s.entity = entity
		}
	}

	return s, nil
}

// Read issues a GET for uri with the client's access token.
func Read[T any](ctx context.Context, client *Client, resource *Resource[T], uri string) (*State[T], error) {
	if client == nil || resource == nil {
		return nil, errors.New("rs: Read requires a client and a resource")
	}
	return transition(ctx, client, resource, http.MethodGet, uri, nil, client.accessToken)
}

// Follow resolves rel on the current entity and issues method against its
// target, yielding a state of the target resource. When rel is absent no
// request is sent and a *LinkNotFoundError is returned.
func Follow[U, T any](ctx context.Context, from *State[T], rel, method string, to *Resource[U]) (*State[U], error) {
	return FollowFrom(ctx, from, from.scope(), method, to, rel)
}

// FollowFrom is Follow with an explicit link scope, such as one person of
// a multi-person document. The first of rels present on scope is used; a
// link that is present but has no href is treated as absent without
// trying the remaining relations.
func FollowFrom[U, T any](ctx context.Context, from *State[T], scope gedcomx.Linker, method string, to *Resource[U], rels ...string) (*State[U], error) {
	link, ok := lookup(scope, rels...)
	if !ok {
		return nil, &LinkNotFoundError{Resource: from.resource.Name, Rels: rels}
	}
	return FollowHref(ctx, from, link.Href, method, to)
}

// FollowHref issues method against href, resolved against the URL of the
// current request, carrying the current credential.
func FollowHref[U, T any](ctx context.Context, from *State[T], href gedcomx.URI, method string, to *Resource[U]) (*State[U], error) {
	target, err := from.resolve(href)
	if err != nil {
		return nil, err
	}
	return transition(ctx, from.client, to, method, target, nil, from.credential)
}

func transition[U any](ctx context.Context, client *Client, to *Resource[U], method, target string, body []byte, credential string) (*State[U], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	mediaType := to.MediaTypes.For(client.format)
	req.Header.Set("Accept", mediaType)
	if body != nil {
		req.Header.Set("Content-Type", mediaType)
	}

	return Issue(ctx, client, to, req, credential)
}

func lookup(scope gedcomx.Linker, rels ...string) (gedcomx.Link, bool) {
	if scope == nil {
		return gedcomx.Link{}, false
	}
	for _, rel := range rels {
		if link, ok := scope.Link(rel); ok {
			return link, link.Href != ""
		}
	}
	return gedcomx.Link{}, false
}

// optional turns a missing link into ok == false for read-only navigations.
func optional[U any](s *State[U], err error) (*State[U], bool, error) {
	if errors.Is(err, ErrLinkNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

func (s *State[T]) scope() gedcomx.Linker {
	return s.resource.scope(s.entity)
}

func (s *State[T]) resolve(href gedcomx.URI) (string, error) {
	ref, err := url.Parse(string(href))
	if err != nil {
		return "", fmt.Errorf("invalid link href %q: %w", href, err)
	}
	if ref.IsAbs() || s.request == nil || s.request.URL == nil {
		return ref.String(), nil
	}
	return s.request.URL.ResolveReference(ref).String(), nil
}

// WithCredential returns a copy of the state that attaches
// "Authorization: Bearer <token>" to every request issued from it.
func (s *State[T]) WithCredential(token string) *State[T] {
	c := *s
	c.credential = token
	return &c
}

// Link returns the first link with relation rel in the state's scope.
// A link without an href is reported as absent.
func (s *State[T]) Link(rel string) (gedcomx.Link, bool) {
	return lookup(s.scope(), rel)
}

// Available returns the resource relations present on the current entity.
func (s *State[T]) Available() []string {
	var out []string
	for _, rel := range s.resource.Rels {
		if _, ok := s.Link(rel); ok {
			out = append(out, rel)
		}
	}
	return out
}

// SelfURI returns the URI of the current resource: its self link when
// present, otherwise the URL of the last request.
func (s *State[T]) SelfURI() string {
	if link, ok := s.Link(RelSelf); ok {
		if target, err := s.resolve(link.Href); err == nil {
			return target
		}
	}
	if s.request != nil && s.request.URL != nil {
		return s.request.URL.String()
	}
	return ""
}

// Get re-reads the current resource.
func (s *State[T]) Get(ctx context.Context) (*State[T], error) {
	return s.reissue(ctx, http.MethodGet, nil)
}

// Head issues a HEAD request against the current resource.
func (s *State[T]) Head(ctx context.Context) (*State[T], error) {
	return s.reissue(ctx, http.MethodHead, nil)
}

// Delete removes the current resource. A response body that fails to
// decode is returned as a *DecodeError.
func (s *State[T]) Delete(ctx context.Context) (*State[T], error) {
	next, err := s.reissue(ctx, http.MethodDelete, nil)
	if err != nil {
		return nil, err
	}
	if next.decodeErr != nil {
		return nil, next.decodeErr
	}
	return next, nil
}

// Put replaces the current resource with entity. A response body that
// fails to decode is returned as a *DecodeError.
func (s *State[T]) Put(ctx context.Context, entity *T) (*State[T], error) {
	body, err := encode(s.client.format, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", s.resource.Name, err)
	}
	next, err := s.reissue(ctx, http.MethodPut, body)
	if err != nil {
		return nil, err
	}
	if next.decodeErr != nil {
		return nil, next.decodeErr
	}
	return next, nil
}

func (s *State[T]) reissue(ctx context.Context, method string, body []byte) (*State[T], error) {
	target := s.SelfURI()
	if target == "" {
		return nil, &LinkNotFoundError{Resource: s.resource.Name, Rels: []string{RelSelf}}
	}
	return transition(ctx, s.client, s.resource, method, target, body, s.credential)
}

// IfSuccessful returns the state when its response status is 2xx and a
// *StatusError otherwise.
func (s *State[T]) IfSuccessful() (*State[T], error) {
	if s.IsSuccess() {
		return s, nil
	}
	err := &StatusError{Status: s.Status()}
	if s.request != nil {
		err.Method = s.request.Method
		err.URL = s.request.URL.String()
	}
	if s.response != nil {
		err.StatusCode = s.response.StatusCode
		err.Body = s.response.Body
	}
	return nil, err
}

// IsSuccess reports whether the response status is 2xx.
func (s *State[T]) IsSuccess() bool {
	return s.response != nil && s.response.StatusCode >= 200 && s.response.StatusCode < 300
}

// Entity returns the decoded entity, or nil when the response carried none.
// Callers must not modify it.
func (s *State[T]) Entity() *T {
	return s.entity
}

// DecodeErr returns the error that prevented the entity from decoding.
func (s *State[T]) DecodeErr() error {
	return s.decodeErr
}

// Request returns the request that produced the state. Its body has been
// consumed.
func (s *State[T]) Request() *http.Request {
	return s.request
}

// Response returns the retained response.
func (s *State[T]) Response() *Response {
	return s.response
}

// Status returns the response status text, e.g. "200 OK".
func (s *State[T]) Status() string {
	if s.response == nil {
		return ""
	}
	return s.response.Status
}

// Credential returns the bearer token attached to subsequent requests.
func (s *State[T]) Credential() string {
	return s.credential
}

// Resource returns the resource description of the state.
func (s *State[T]) Resource() *Resource[T] {
	return s.resource
}

// Client returns the client the state issues requests with.
func (s *State[T]) Client() *Client {
	return s.client
}

package rs

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Format selects the wire format used for request bodies and, absent a
// usable Content-Type, for decoding responses.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Client carries the transport and the settings shared by every state of
// a traversal. It holds no per-request state and is safe for concurrent use.
type Client struct {
	doer        Doer
	logger      hclog.Logger
	format      Format
	accessToken string
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Requests are logged at debug level and
// responses at trace level; credentials are never logged.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.Named("rs")
		}
	}
}

// WithFormat sets the wire format. The default is FormatJSON.
func WithFormat(format Format) Option {
	return func(c *Client) {
		if format != "" {
			c.format = format
		}
	}
}

// WithAccessToken sets the bearer token attached to states created from
// the entry points.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a client sending requests through doer.
func New(doer Doer, opts ...Option) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	c := &Client{
		doer:   doer,
		logger: hclog.NewNullLogger(),
		format: FormatJSON,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Format returns the client's wire format.
func (c *Client) Format() Format {
	return c.format
}

// AccessToken returns the token entry-point states start with.
func (c *Client) AccessToken() string {
	return c.accessToken
}

package rs

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	httptrace "gopkg.in/DataDog/dd-trace-go.v1/contrib/net/http"
)

// Config contains the settings of an API client.
//
// Example configuration (HCL):
//
//	api {
//	  base_url     = "https://api.familysearch.org"
//	  access_token = env("GEDCOMX_ACCESS_TOKEN")
//	  format       = "json"
//	  timeout      = "30s"
//	}
type Config struct {
	// BaseURL is the root the CLI resolves relative paths against.
	BaseURL string `json:"baseUrl"`

	// AccessToken is the bearer token. It is optional; the collection
	// entry point of most deployments can be read anonymously.
	AccessToken string `json:"-"`

	// Format is "json" or "xml". Default: "json".
	Format Format `json:"format,omitempty"`

	// Timeout bounds every round trip. Default: 30 seconds.
	Timeout time.Duration `json:"timeout,omitempty"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development against self-signed certificates.
	TLSVerify *bool `json:"tlsVerify,omitempty"`

	// UserAgent is sent with every request.
	UserAgent string `json:"userAgent,omitempty"`

	// Trace wraps the HTTP client with Datadog APM tracing.
	Trace bool `json:"trace,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		Format:    FormatJSON,
		Timeout:   30 * time.Second,
		TLSVerify: &tlsVerify,
		UserAgent: "gedcomx-go",
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Format, validation.In(FormatJSON, FormatXML)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(1))),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	return nil
}

// NewHTTPClient creates the HTTP client described by the configuration.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	client := &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
	if c.Trace {
		client = httptrace.WrapClient(client,
			httptrace.RTWithResourceNamer(func(req *http.Request) string {
				return req.Method + " " + req.URL.Path
			}),
		)
	}
	return client
}

// NewFromConfig validates cfg and creates a client from it. Options are
// applied after the configured settings.
func NewFromConfig(cfg *Config, logger hclog.Logger, opts ...Option) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	if cfg.TLSVerify == nil {
		cfg.TLSVerify = DefaultConfig().TLSVerify
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid API client config: %w", err)
	}

	base := []Option{
		WithLogger(logger),
		WithFormat(cfg.Format),
		WithAccessToken(cfg.AccessToken),
		WithUserAgent(cfg.UserAgent),
	}
	return New(cfg.NewHTTPClient(), append(base, opts...)...), nil
}

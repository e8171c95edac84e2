// Package auth acquires the bearer tokens the API client sends.
//
// Token acquisition is kept out of package rs: a token obtained here is
// passed to rs.WithAccessToken or State.WithCredential.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// Config contains the OAuth2 client registration.
type Config struct {
	ClientID     string   `json:"clientId"`
	ClientSecret string   `json:"-"`
	AuthURL      string   `json:"authUrl,omitempty"`
	TokenURL     string   `json:"tokenUrl"`
	RedirectURL  string   `json:"redirectUrl,omitempty"`
	Scopes       []string `json:"scopes,omitempty"`
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ClientID, validation.Required),
		validation.Field(&c.TokenURL, validation.Required, validation.By(absoluteURL)),
		validation.Field(&c.AuthURL, validation.By(absoluteURL)),
		validation.Field(&c.RedirectURL, validation.By(absoluteURL)),
	)
}

func absoluteURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if !u.IsAbs() {
		return errors.New("must be an absolute URL")
	}
	return nil
}

// Authenticator obtains tokens from the configured authorization server.
type Authenticator struct {
	oauth      oauth2.Config
	httpClient *http.Client
	logger     hclog.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithHTTPClient sets the client used to reach the token endpoint.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Authenticator) {
		a.httpClient = c
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger.Named("auth")
		}
	}
}

// New creates an Authenticator.
func New(cfg *Config, opts ...Option) (*Authenticator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid OAuth config: %w", err)
	}

	a := &Authenticator{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Authenticator) context(ctx context.Context) context.Context {
	if a.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	}
	return ctx
}

// NewState returns a random value for the state parameter of the
// authorization-code flow.
func NewState() string {
	return uuid.NewString()
}

// AuthCodeURL returns the URL the user visits to authorize the client.
func (a *Authenticator) AuthCodeURL(state string) (string, error) {
	if a.oauth.Endpoint.AuthURL == "" {
		return "", errors.New("auth_url is required for the authorization-code flow")
	}
	if a.oauth.RedirectURL == "" {
		return "", errors.New("redirect_url is required for the authorization-code flow")
	}
	return a.oauth.AuthCodeURL(state), nil
}

// Exchange trades an authorization code for a token.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	a.logger.Debug("exchanging authorization code", "token_url", a.oauth.Endpoint.TokenURL)
	token, err := a.oauth.Exchange(a.context(ctx), code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// PasswordCredentials obtains a token with the resource owner password
// grant.
func (a *Authenticator) PasswordCredentials(ctx context.Context, username, password string) (*oauth2.Token, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	a.logger.Debug("requesting token", "grant", "password", "username", username)
	token, err := a.oauth.PasswordCredentialsToken(a.context(ctx), username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}
	return token, nil
}

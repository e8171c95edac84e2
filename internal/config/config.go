// Package config loads the gedcomx CLI configuration file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/jonesej/gedcomx-java/pkg/auth"
	"github.com/jonesej/gedcomx-java/pkg/rs"
)

// EnvAccessToken overrides the access token of the configuration file.
const EnvAccessToken = "GEDCOMX_ACCESS_TOKEN"

// Config is the root of the configuration file.
//
// Example configuration (HCL):
//
//	log_level = "info"
//
//	api {
//	  base_url     = "https://api.familysearch.org"
//	  access_token = env("GEDCOMX_ACCESS_TOKEN")
//	  format       = "json"
//	  timeout      = "30s"
//	}
//
//	oauth {
//	  client_id    = "a02j000000XXXXXXXXXX"
//	  auth_url     = "https://ident.familysearch.org/cis-web/oauth2/v3/authorization"
//	  token_url    = "https://ident.familysearch.org/cis-web/oauth2/v3/token"
//	  redirect_url = "https://localhost:5000/callback"
//	}
type Config struct {
	LogLevel string `hcl:"log_level,optional"`
	API      *API   `hcl:"api,block"`
	OAuth    *OAuth `hcl:"oauth,block"`
}

// API configures the REST client.
type API struct {
	BaseURL     string `hcl:"base_url"`
	AccessToken string `hcl:"access_token,optional"`
	Format      string `hcl:"format,optional"`
	Timeout     string `hcl:"timeout,optional"`
	TLSVerify   *bool  `hcl:"tls_verify,optional"`
	UserAgent   string `hcl:"user_agent,optional"`
	Trace       bool   `hcl:"trace,optional"`
}

// OAuth configures token acquisition.
type OAuth struct {
	ClientID     string   `hcl:"client_id"`
	ClientSecret string   `hcl:"client_secret,optional"`
	AuthURL      string   `hcl:"auth_url,optional"`
	TokenURL     string   `hcl:"token_url"`
	RedirectURL  string   `hcl:"redirect_url,optional"`
	Scopes       []string `hcl:"scopes,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		API: &API{
			BaseURL: "https://api.familysearch.org",
			Format:  string(rs.FormatJSON),
			Timeout: "30s",
		},
	}
}

// Loader reads configuration files.
type Loader struct {
	// FS is the filesystem files are read from.
	FS afero.Fs

	// Getenv looks up environment variables, for env() and overrides.
	// Default: os.Getenv.
	Getenv func(string) string
}

// NewLoader returns a loader reading from the OS filesystem.
func NewLoader() *Loader {
	return &Loader{FS: afero.NewOsFs(), Getenv: os.Getenv}
}

func (l *Loader) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

// Load reads the configuration at path. An empty path yields Default.
// The access token environment override is applied in both cases.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		exists, err := afero.Exists(l.FS, path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat configuration file: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("configuration file not found: %s", path)
		}

		src, err := afero.ReadFile(l.FS, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}

		cfg = &Config{}
		if err := hclsimple.Decode(path, src, l.evalContext(), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse configuration file: %w", err)
		}
		if cfg.API == nil {
			cfg.API = Default().API
		}
	}

	if token := l.getenv(EnvAccessToken); token != "" {
		cfg.API.AccessToken = token
	}
	return cfg, nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": function.New(&function.Spec{
				Params: []function.Parameter{
					{Name: "name", Type: cty.String},
				},
				Type: function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					return cty.StringVal(l.getenv(args[0].AsString())), nil
				},
			}),
		},
	}
}

// Level returns the configured log level, info when unset or unknown.
func (c *Config) Level() hclog.Level {
	level := hclog.LevelFromString(strings.TrimSpace(c.LogLevel))
	if level == hclog.NoLevel {
		return hclog.Info
	}
	return level
}

// ClientConfig converts the api block into a REST client configuration.
func (c *Config) ClientConfig() (*rs.Config, error) {
	if c.API == nil {
		return nil, fmt.Errorf("api configuration is missing")
	}

	cfg := rs.DefaultConfig()
	cfg.BaseURL = c.API.BaseURL
	cfg.AccessToken = c.API.AccessToken
	cfg.Trace = c.API.Trace
	if c.API.Format != "" {
		cfg.Format = rs.Format(strings.ToLower(c.API.Format))
	}
	if c.API.TLSVerify != nil {
		cfg.TLSVerify = c.API.TLSVerify
	}
	if c.API.UserAgent != "" {
		cfg.UserAgent = c.API.UserAgent
	}
	if c.API.Timeout != "" {
		timeout, err := time.ParseDuration(c.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", c.API.Timeout, err)
		}
		cfg.Timeout = timeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid api configuration: %w", err)
	}
	return cfg, nil
}

// AuthConfig converts the oauth block into an authenticator configuration.
func (c *Config) AuthConfig() (*auth.Config, error) {
	if c.OAuth == nil {
		return nil, fmt.Errorf("oauth configuration is missing")
	}

	cfg := &auth.Config{
		ClientID:     c.OAuth.ClientID,
		ClientSecret: c.OAuth.ClientSecret,
		AuthURL:      c.OAuth.AuthURL,
		TokenURL:     c.OAuth.TokenURL,
		RedirectURL:  c.OAuth.RedirectURL,
		Scopes:       c.OAuth.Scopes,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid oauth configuration: %w", err)
	}
	return cfg, nil
}

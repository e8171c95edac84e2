package login

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/browser"

	"github.com/jonesej/gedcomx-java/internal/cmd/base"
	"github.com/jonesej/gedcomx-java/internal/config"
	"github.com/jonesej/gedcomx-java/pkg/auth"
)

type Command struct {
	*base.Command

	// OpenURL opens a URL in a browser. Default: browser.OpenURL.
	OpenURL func(string) error

	flagConfig   string
	flagUsername string
	flagPassword string
	flagBrowser  bool
}

func (c *Command) Synopsis() string {
	return "Obtain an access token"
}

func (c *Command) Help() string {
	return `Usage: gedcomx login [options]

  Obtain an access token using the oauth block of the configuration file.
  With -username and -password the password grant is used. Otherwise the
  authorization URL is printed (and opened with -browser) and the code
  returned to the redirect URL is exchanged for a token.

  The token is printed so it can be exported as $` + config.EnvAccessToken + `.` + c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("login", flag.ContinueOnError))
	f.StringVar(&c.flagConfig, "config", "", "Path to the HCL configuration file.")
	f.StringVar(&c.flagUsername, "username", "", "Username for the password grant.")
	f.StringVar(&c.flagPassword, "password", "", "Password for the password grant.")
	f.BoolVar(&c.flagBrowser, "browser", false, "Open the authorization URL in a browser.")
	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	loader := &config.Loader{FS: c.FS, Getenv: c.Getenv}
	cfg, err := loader.Load(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading configuration: %v", err))
		return 1
	}
	c.Log.SetLevel(cfg.Level())

	authCfg, err := cfg.AuthConfig()
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	authenticator, err := auth.New(authCfg, auth.WithLogger(c.Log))
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx := context.Background()
	var token string
	if c.flagUsername != "" || c.flagPassword != "" {
		t, err := authenticator.PasswordCredentials(ctx, c.flagUsername, c.flagPassword)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
		token = t.AccessToken
	} else {
		token, err = c.authorize(ctx, authenticator)
		if err != nil {
			c.UI.Error(err.Error())
			return 1
		}
	}

	c.UI.Output(token)
	return 0
}

func (c *Command) authorize(ctx context.Context, a *auth.Authenticator) (string, error) {
	state := auth.NewState()
	u, err := a.AuthCodeURL(state)
	if err != nil {
		return "", err
	}

	c.UI.Info(fmt.Sprintf("Visit this URL to authorize the client:\n\n  %s\n", u))
	if c.flagBrowser {
		open := c.OpenURL
		if open == nil {
			open = browser.OpenURL
		}
		if err := open(u); err != nil {
			c.UI.Warn(fmt.Sprintf("unable to open browser: %v", err))
		}
	}

	code, err := c.UI.Ask("Authorization code:")
	if err != nil {
		return "", fmt.Errorf("error reading authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("no authorization code given")
	}

	t, err := a.Exchange(ctx, code)
	if err != nil {
		return "", err
	}
	return t.AccessToken, nil
}

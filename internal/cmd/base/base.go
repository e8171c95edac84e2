package base

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"

	"github.com/jonesej/gedcomx-java/internal/config"
	"github.com/jonesej/gedcomx-java/internal/render"
	"github.com/jonesej/gedcomx-java/pkg/rs"
)

// API paths relative to the configured base URL.
const (
	CollectionPath   = "/platform/collections/tree"
	PersonsPath      = "/platform/tree/persons/"
	ReservationsPath = "/platform/ordinances/reservations"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
	FS  afero.Fs

	// Getenv looks up environment variables. Default: os.Getenv.
	Getenv func(string) string
}

// New creates the shared command base.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:    log,
		UI:     ui,
		FS:     afero.NewOsFs(),
		Getenv: os.Getenv,
	}
}

// APIFlags are the flags of commands that talk to the API.
type APIFlags struct {
	Config   string
	Token    string
	Output   string
	LogLevel string
}

// Register adds the API flags to f.
func (a *APIFlags) Register(f *FlagSet) {
	f.StringVar(&a.Config, "config", "", "Path to the HCL configuration file.")
	f.StringVar(&a.Token, "token", "",
		"Access token. Overrides the configuration file and $"+config.EnvAccessToken+".")
	f.StringVar(&a.Output, "output", "json", "Output format: json, xml or yaml.")
	f.StringVar(&a.LogLevel, "log-level", "", "Log level: trace, debug, info, warn or error.")
}

// Session is an API client together with the configuration it was built
// from.
type Session struct {
	Config *config.Config
	Client *rs.Client
	Output render.Format

	stopTracer bool
}

// Close releases the resources of the session.
func (s *Session) Close() {
	if s.stopTracer {
		tracer.Stop()
	}
}

// BaseURL returns the configured API root without a trailing slash.
func (s *Session) BaseURL() string {
	return strings.TrimRight(s.Config.API.BaseURL, "/")
}

// Open loads the configuration and creates an API client.
func (c *Command) Open(flags *APIFlags) (*Session, error) {
	output, err := render.ParseFormat(flags.Output)
	if err != nil {
		return nil, err
	}

	loader := &config.Loader{FS: c.FS, Getenv: c.Getenv}
	cfg, err := loader.Load(flags.Config)
	if err != nil {
		return nil, err
	}
	if flags.Token != "" {
		cfg.API.AccessToken = flags.Token
	}

	level := cfg.Level()
	if flags.LogLevel != "" {
		level = hclog.LevelFromString(flags.LogLevel)
		if level == hclog.NoLevel {
			return nil, fmt.Errorf("unknown log level %q", flags.LogLevel)
		}
	}
	c.Log.SetLevel(level)

	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}

	s := &Session{Config: cfg, Output: output}
	if clientCfg.Trace {
		tracer.Start(tracer.WithService("gedcomx"), tracer.WithLogStartup(false))
		s.stopTracer = true
	}

	s.Client, err = rs.NewFromConfig(clientCfg, c.Log)
	if err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// ReadPerson reads the person named by arg: a URL, a person id, or, when
// arg is empty, the current user.
func (c *Command) ReadPerson(ctx context.Context, s *Session, arg string) (*rs.PersonState, error) {
	var (
		person *rs.PersonState
		err    error
	)
	switch {
	case arg == "":
		collection, err := rs.ReadCollection(ctx, s.Client, s.BaseURL()+CollectionPath)
		if err != nil {
			return nil, err
		}
		if _, err := collection.IfSuccessful(); err != nil {
			return nil, fmt.Errorf("error reading collection: %w", err)
		}
		var ok bool
		person, ok, err = collection.ReadCurrentUserPerson(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("collection has no current user person; pass a person id")
		}
	case strings.Contains(arg, "://"):
		person, err = rs.ReadPerson(ctx, s.Client, arg)
	default:
		person, err = rs.ReadPerson(ctx, s.Client, s.BaseURL()+PersonsPath+url.PathEscape(arg))
	}
	if err != nil {
		return nil, err
	}

	if _, err := person.IfSuccessful(); err != nil {
		return nil, fmt.Errorf("error reading person: %w", err)
	}
	if err := person.DecodeErr(); err != nil {
		return nil, err
	}
	return person, nil
}

// Render writes v to the UI in the session's output format.
func (c *Command) Render(s *Session, v any) error {
	return c.Output(s.Output, v)
}

// Output writes v to the UI in the given format.
func (c *Command) Output(format render.Format, v any) error {
	var buf bytes.Buffer
	if err := render.Write(&buf, format, v); err != nil {
		return err
	}
	c.UI.Output(strings.TrimRight(buf.String(), "\n"))
	return nil
}
